package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	healthCheckTimeout = 5 * time.Second
	slowResponse       = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check a running service's readiness endpoint"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := defaultBaseURL
	if len(args) > 0 {
		baseURL = strings.TrimRight(args[0], "/")
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	start := time.Now()
	if err := checkHealth(context.Background(), baseURL); err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	duration := time.Since(start)

	if duration > slowResponse {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}

func checkHealth(ctx context.Context, baseURL string) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/readyz", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("readyz returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
