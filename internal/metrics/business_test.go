package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a sample for
// name with the given partial label pattern and value. The regex tolerates
// extra OTel scope labels injected by the exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, bm)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)
	assert.NotPanics(t, func() {
		ctx := context.Background()
		noOp.RecordOperation(ctx, "crypto", "encrypt", StatusSuccess)
		noOp.RecordDuration(ctx, "crypto", "encrypt", 30*time.Millisecond, StatusSuccess)
		noOp.RecordPayloadSize(ctx, "crypto", "encrypt", 128)
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "crypto", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "crypto", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "crypto", "decrypt", StatusError)

	bm.RecordDuration(ctx, "crypto", "encrypt", 20*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "crypto", "encrypt", 40*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "crypto", "decrypt", 25*time.Millisecond, StatusError)

	bm.RecordPayloadSize(ctx, "crypto", "encrypt", 14)
	bm.RecordPayloadSize(ctx, "crypto", "decrypt", 72)

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	output := buf.String()

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="crypto".*operation="encrypt".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="crypto".*operation="decrypt".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="crypto".*operation="encrypt".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_payload_bytes\w*_count`,
		`domain="crypto".*operation="encrypt"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_payload_bytes\w*_sum`,
		`domain="crypto".*operation="decrypt"`,
		`72`,
	)
}
