// Package hostinfo reads host identity and platform facts.
package hostinfo

import (
	"context"
	"net"
	"os"
	"runtime"
	"strings"
	"time"
)

// DefaultFQDNTimeout bounds name resolution when no timeout is configured.
const DefaultFQDNTimeout = time.Second

// Resolver is the subset of *net.Resolver used for FQDN resolution.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Platform describes the operating system and hardware of the host.
type Platform struct {
	System  string
	Release string
	Machine string
}

// String renders the platform as System-Release-Machine, skipping empty parts.
func (p Platform) String() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.System, p.Release, p.Machine} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}

// Probe collects host facts. The zero value is not usable; call NewProbe.
type Probe struct {
	resolver    Resolver
	fqdnTimeout time.Duration
	hostname    func() (string, error)
	platform    func() Platform
}

// Option configures a Probe.
type Option func(*Probe)

// WithResolver replaces the DNS resolver.
func WithResolver(r Resolver) Option {
	return func(p *Probe) { p.resolver = r }
}

// WithFQDNTimeout sets the bound on FQDN resolution.
func WithFQDNTimeout(d time.Duration) Option {
	return func(p *Probe) {
		if d > 0 {
			p.fqdnTimeout = d
		}
	}
}

// WithHostname replaces the hostname source.
func WithHostname(fn func() (string, error)) Option {
	return func(p *Probe) { p.hostname = fn }
}

// WithPlatform replaces the platform source.
func WithPlatform(fn func() Platform) Option {
	return func(p *Probe) { p.platform = fn }
}

// NewProbe returns a Probe backed by the OS and the default resolver.
func NewProbe(opts ...Option) *Probe {
	p := &Probe{
		resolver:    net.DefaultResolver,
		fqdnTimeout: DefaultFQDNTimeout,
		hostname:    os.Hostname,
		platform:    CurrentPlatform,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Hostname returns the kernel host name, or an empty string if it cannot be read.
func (p *Probe) Hostname() string {
	name, err := p.hostname()
	if err != nil {
		return ""
	}
	return name
}

// FQDN resolves the fully qualified name of hostname. Resolution is bounded
// by the probe's timeout; on any failure the hostname itself is returned.
func (p *Probe) FQDN(ctx context.Context, hostname string) string {
	if hostname == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, p.fqdnTimeout)
	defer cancel()

	type answer struct{ name string }
	done := make(chan answer, 1)
	go func() {
		done <- answer{name: p.resolveFQDN(ctx, hostname)}
	}()

	// A resolver that ignores ctx must not hold the caller past the bound.
	select {
	case a := <-done:
		return a.name
	case <-ctx.Done():
		return hostname
	}
}

func (p *Probe) resolveFQDN(ctx context.Context, hostname string) string {
	addrs, err := p.resolver.LookupHost(ctx, hostname)
	if err == nil {
		for _, addr := range addrs {
			names, err := p.resolver.LookupAddr(ctx, addr)
			if err != nil {
				continue
			}
			for _, name := range names {
				name = strings.TrimSuffix(name, ".")
				if strings.Contains(name, ".") {
					return name
				}
			}
		}
	}
	return hostname
}

// Platform returns the host platform facts.
func (p *Probe) Platform() Platform {
	return p.platform()
}

// RuntimeVersion returns the version of the Go runtime the binary was built with.
func RuntimeVersion() string {
	return runtime.Version()
}

func fallbackPlatform() Platform {
	return Platform{
		System:  runtime.GOOS,
		Machine: runtime.GOARCH,
	}
}
