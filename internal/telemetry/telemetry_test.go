package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/beadslogic/prove/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNilWriterIsNoOpShutdown(t *testing.T) {
	shutdown, err := telemetry.Init(nil)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitInstallsWorkingProviders(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := telemetry.Init(&buf)
	require.NoError(t, err)
	defer shutdown(context.Background())

	tracer := telemetry.Tracer("test")
	_, span := tracer.Start(context.Background(), "unit-test-span")
	span.End()

	meter := telemetry.Meter("test")
	counter, err := meter.Int64Counter("unit.test.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "unit-test-span")
}

func TestTracerAndMeterNeverPanicBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		telemetry.Tracer("pkg").Start(context.Background(), "span")
	})
	assert.NotPanics(t, func() {
		_, _ = telemetry.Meter("pkg").Int64Counter("counter")
	})
}
