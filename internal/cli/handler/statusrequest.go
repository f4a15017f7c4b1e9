package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/ops-status-dashboard/internal/cli"
	"github.com/bnema/ops-status-dashboard/internal/domain"
)

// Endpoints fetched by CheckServer, in display order.
var Endpoints = []string{"/health", "/version", "/system", "/docker"}

type Response struct {
	StatusCode int
	Body       []byte
}

// Section is the outcome of fetching one endpoint.
type Section struct {
	Path       string
	StatusCode int
	Body       string // indented JSON, or the raw body when it is not JSON
	Err        error
}

// Report is the outcome of CheckServer.
type Report struct {
	Sections      []Section
	Healthy       bool
	ServerVersion string
}

// HealthResponse matches GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse matches GET /version.
type VersionResponse struct {
	App     string `json:"app"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	BuiltAt string `json:"built_at"`
}

// SendHTTPRequest performs a GET on the server and reads the whole body.
func SendHTTPRequest(ctx context.Context, a *cli.App, endpoint string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// CheckServer fetches every status endpoint. It only fails when the health
// endpoint is unreachable; other failures are recorded in their section.
func CheckServer(ctx context.Context, a *cli.App) (*Report, error) {
	report := &Report{}

	for _, path := range Endpoints {
		section := Section{Path: path}

		resp, err := SendHTTPRequest(ctx, a, path)
		if err != nil {
			section.Err = err
			report.Sections = append(report.Sections, section)
			if path == "/health" {
				return report, fmt.Errorf("server unreachable at %s: %w", a.BaseURL, err)
			}
			continue
		}

		section.StatusCode = resp.StatusCode
		section.Body = PrettyJSON(resp.Body)
		if resp.StatusCode != http.StatusOK {
			section.Err = fmt.Errorf("expected status code 200, got %d", resp.StatusCode)
		}
		report.Sections = append(report.Sections, section)

		switch path {
		case "/health":
			var health HealthResponse
			if err := json.Unmarshal(resp.Body, &health); err == nil {
				report.Healthy = resp.StatusCode == http.StatusOK && health.Status == domain.HealthStatusOK
			}
		case "/version":
			var v VersionResponse
			if err := json.Unmarshal(resp.Body, &v); err == nil {
				report.ServerVersion = v.Version
			}
		}
	}

	return report, nil
}

// PrettyJSON indents body by two spaces. Non-JSON bodies are returned as is.
func PrettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(body), "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
