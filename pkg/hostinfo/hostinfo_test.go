package hostinfo

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	hosts map[string][]string
	addrs map[string][]string
	block bool
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if addrs, ok := f.hosts[host]; ok {
		return addrs, nil
	}
	return nil, errors.New("no such host")
}

func (f *fakeResolver) LookupAddr(_ context.Context, addr string) ([]string, error) {
	if names, ok := f.addrs[addr]; ok {
		return names, nil
	}
	return nil, errors.New("no PTR record")
}

// stubbornResolver ignores ctx entirely.
type stubbornResolver struct{}

func (stubbornResolver) LookupHost(context.Context, string) ([]string, error) {
	time.Sleep(5 * time.Second)
	return nil, errors.New("too late")
}

func (stubbornResolver) LookupAddr(context.Context, string) ([]string, error) {
	return nil, errors.New("too late")
}

func TestProbe_FQDN(t *testing.T) {
	resolver := &fakeResolver{
		hosts: map[string][]string{
			"web01":   {"10.0.0.5", "10.0.0.6"},
			"lonely":  {"10.0.0.9"},
			"dotless": {"10.0.0.7"},
		},
		addrs: map[string][]string{
			"10.0.0.6": {"web01.prod.example.com."},
			"10.0.0.7": {"dotless"},
		},
	}
	probe := NewProbe(WithResolver(resolver))

	tests := []struct {
		name     string
		hostname string
		expected string
	}{
		{"reverse lookup on second address", "web01", "web01.prod.example.com"},
		{"no PTR record", "lonely", "lonely"},
		{"PTR without domain", "dotless", "dotless"},
		{"unknown host", "ghost", "ghost"},
		{"empty hostname", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, probe.FQDN(context.Background(), tt.hostname))
		})
	}
}

func TestProbe_FQDN_BoundedByTimeout(t *testing.T) {
	tests := []struct {
		name     string
		resolver Resolver
	}{
		{"resolver honouring ctx", &fakeResolver{block: true}},
		{"resolver ignoring ctx", stubbornResolver{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := NewProbe(WithResolver(tt.resolver), WithFQDNTimeout(100*time.Millisecond))

			start := time.Now()
			fqdn := probe.FQDN(context.Background(), "slowhost")

			assert.Equal(t, "slowhost", fqdn)
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestProbe_Hostname(t *testing.T) {
	probe := NewProbe(WithHostname(func() (string, error) { return "box", nil }))
	assert.Equal(t, "box", probe.Hostname())

	failing := NewProbe(WithHostname(func() (string, error) { return "", errors.New("denied") }))
	assert.Empty(t, failing.Hostname())
}

func TestPlatform_String(t *testing.T) {
	assert.Equal(t, "Linux-6.1.0-x86_64", Platform{System: "Linux", Release: "6.1.0", Machine: "x86_64"}.String())
	assert.Equal(t, "windows-amd64", Platform{System: "windows", Machine: "amd64"}.String())
	assert.Empty(t, Platform{}.String())
}

func TestCurrentPlatform(t *testing.T) {
	p := CurrentPlatform()
	assert.NotEmpty(t, p.System)
	assert.NotEmpty(t, p.Machine)
}

func TestRuntimeVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), RuntimeVersion())
}

func TestWithFQDNTimeout_IgnoresNonPositive(t *testing.T) {
	probe := NewProbe(WithFQDNTimeout(0))
	assert.Equal(t, DefaultFQDNTimeout, probe.fqdnTimeout)
}
