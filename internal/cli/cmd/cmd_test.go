package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ops-status-dashboard/pkg/version"
)

func TestVersionCommand(t *testing.T) {
	version.Set("1.4.2", "0f3c9a1", "2024-05-01")
	t.Cleanup(func() { version.Set("dev", "unknown", "unknown") })

	var buf bytes.Buffer
	c := NewVersionCommand()
	c.SetOut(&buf)
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())

	out := buf.String()
	assert.Contains(t, out, "ops-status-dashboard 1.4.2")
	assert.Contains(t, out, "0f3c9a1")
	assert.Contains(t, out, "2024-05-01")

	buf.Reset()
	c = NewVersionCommand()
	c.SetOut(&buf)
	c.SetArgs([]string{"--short"})
	require.NoError(t, c.Execute())
	assert.Equal(t, "1.4.2\n", buf.String())
}

func statusServer(t *testing.T, health string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status":"` + health + `"}`))
		case "/version":
			_, _ = w.Write([]byte(`{"app":"ops-status-dashboard","version":"dev","commit":"unknown","built_at":"unknown"}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name    string
		health  string
		wantErr error
	}{
		{"healthy", "ok", nil},
		{"unhealthy", "down", ErrUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := statusServer(t, tt.health)

			var buf bytes.Buffer
			c := NewCheckCommand()
			c.SetOut(&buf)
			c.SetErr(&buf)
			c.SetArgs([]string{"--url", srv.URL})

			err := c.Execute()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), "/docker")
		})
	}
}

func TestCheckCommand_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewCheckCommand()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--url", url, "--timeout", "500ms"})

	assert.Error(t, c.Execute())
}

func TestNewServerFromOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("Http:\n  port: \"9000\"\n"), 0o600))

	a, err := NewServerFromOptions(&ServeOptions{ConfigPath: path, Port: "9100"})
	require.NoError(t, err)
	assert.Equal(t, "9100", a.Config.Http.Port)

	_, err = NewServerFromOptions(&ServeOptions{ConfigPath: path, Port: "http"})
	assert.Error(t, err)

	_, err = NewServerFromOptions(&ServeOptions{ConfigPath: filepath.Join(dir, "missing.yml")})
	assert.Error(t, err)
}
