package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/carve/internal/adapters/logger"
	"go.trai.ch/carve/internal/app"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// TestRun_Version verifies that the run function returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetOutput(gomock.Any())
	mockLogger.EXPECT().SetJSON(false)
	mockLogger.EXPECT().SetVerbose(false)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{Logger: mockLogger}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "carve version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error chain and returns 1.
func TestRun_ExecutionError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	tracer := mocks.NewMockTracer(ctrl)

	log := logger.New()
	application := app.New(loader, nil, nil, nil, nil, tracer, log).WithoutTracing()

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: log}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"extract"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "✗ Error: "+domain.ErrNoPackagesSpecified.Error()+"\n", stderr.String())
}
