package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ops-status-dashboard/internal/boundaries/in/mocks"
	"github.com/bnema/ops-status-dashboard/internal/domain"
)

func serve(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStatusHandler_Health(t *testing.T) {
	facts := mocks.NewMockFactsService(t)
	facts.EXPECT().Health(mock.Anything).Return(domain.HealthStatus{Status: domain.HealthStatusOK})

	rec := serve(t, NewStatusHandler(facts, nil).Health)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatusHandler_Version(t *testing.T) {
	facts := mocks.NewMockFactsService(t)
	facts.EXPECT().Version(mock.Anything).Return(domain.VersionInfo{
		App:     domain.AppName,
		Version: "1.4.2",
		Commit:  "0f3c9a1",
		BuiltAt: "unknown",
	})

	rec := serve(t, NewStatusHandler(facts, nil).Version)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"app":"ops-status-dashboard","version":"1.4.2","commit":"0f3c9a1","built_at":"unknown"}`, rec.Body.String())
}

func TestStatusHandler_System(t *testing.T) {
	facts := mocks.NewMockFactsService(t)
	facts.EXPECT().System(mock.Anything).Return(domain.SystemInfo{
		Hostname:        "web01",
		FQDN:            "web01.prod.example.com",
		Time:            time.Date(2024, 5, 1, 14, 3, 7, 123456000, time.FixedZone("CEST", 2*3600)),
		UptimeSeconds:   4521,
		OS:              "Linux-6.1.0-x86_64",
		RuntimeVersion:  "go1.24.1",
		CPUArchitecture: "x86_64",
	})

	rec := serve(t, NewStatusHandler(facts, nil).System)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"hostname": "web01",
		"fqdn": "web01.prod.example.com",
		"time_utc": "2024-05-01T12:03:07.123456+00:00",
		"uptime_seconds": 4521,
		"os": "Linux-6.1.0-x86_64",
		"runtime_version": "go1.24.1",
		"cpu_architecture": "x86_64"
	}`, rec.Body.String())
}

func TestStatusHandler_Docker(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.DockerStatus
		expected string
	}{
		{
			name: "available",
			status: domain.DockerAvailable([]domain.ContainerSummary{
				{Name: "web", Image: "nginx:1.25", Status: "Up 2 hours"},
			}),
			expected: `{"available":true,"containers":[{"name":"web","image":"nginx:1.25","status":"Up 2 hours"}]}`,
		},
		{
			name:     "available without containers",
			status:   domain.DockerStatus{Available: true},
			expected: `{"available":true,"containers":[]}`,
		},
		{
			name:     "unavailable",
			status:   domain.DockerUnavailable(""),
			expected: `{"available":false,"containers":[],"error":"docker not available (expected unless mounted)"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			containers := mocks.NewMockContainerStatusService(t)
			containers.EXPECT().Status(mock.Anything).Return(tt.status)

			rec := serve(t, NewStatusHandler(nil, containers).Docker)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}

func TestStatusHandler_SystemTimeIsUTC(t *testing.T) {
	facts := mocks.NewMockFactsService(t)
	facts.EXPECT().System(mock.Anything).Return(domain.SystemInfo{Time: time.Now()})

	rec := serve(t, NewStatusHandler(facts, nil).System)

	ts, ok := decode(t, rec)["time_utc"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}\+00:00$`, ts)
}
