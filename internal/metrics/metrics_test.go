package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nais/jaws-deploy/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_WriteTextfile(t *testing.T) {
	ctx := context.Background()

	p, err := metrics.NewProvider()
	require.NoError(t, err)

	m, err := metrics.New(p.Meter())
	require.NoError(t, err)

	m.Poll(ctx, "Running")
	m.Poll(ctx, "Completed")
	m.LogEntry(ctx, "Warning")
	m.Finished(ctx, "Completed", 1500*time.Millisecond)
	m.Errors.Add(ctx, 1)

	path := filepath.Join(t.TempDir(), "jaws.prom")
	require.NoError(t, p.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `deployment_polls_total{`)
	assert.Contains(t, out, `status="Completed"`)
	assert.Contains(t, out, `deployment_log_entries_total{`)
	assert.Contains(t, out, `level="Warning"`)
	assert.Contains(t, out, "deployment_duration")
	assert.Contains(t, out, "errors_total")
}

func TestMetrics_nil(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.Poll(context.Background(), "Running")
		m.LogEntry(context.Background(), "Error")
		m.Finished(context.Background(), "Failed", time.Second)
	})
}
