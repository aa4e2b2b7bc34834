package otel

import (
	"context"
	"testing"
)

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	t.Setenv("AUTHGATE_OTEL_ENDPOINT", "")
	t.Setenv("AUTHGATE_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "authgate")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupDisabledByFlag(t *testing.T) {
	t.Setenv("AUTHGATE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("AUTHGATE_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "authgate")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupWithEndpoint(t *testing.T) {
	t.Setenv("AUTHGATE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("AUTHGATE_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "authgate")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
