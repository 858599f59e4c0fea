package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/marmos91/ringoctl/pkg/config"
)

// recordSpans installs an in-memory tracer provider for the test.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	install(tp)

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		enabled = false
		tracer = nil
	})
	return sr
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "ringoctl", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.ServiceVersion)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.SampleRate)
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.TelemetryConfig{
		Enabled:    true,
		Endpoint:   "otel:4317",
		SampleRate: 0.5,
	}, "v1.2.3")

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "otel:4317", cfg.Endpoint)
	assert.False(t, cfg.Insecure)
	assert.Equal(t, 0.5, cfg.SampleRate)
	assert.Equal(t, "v1.2.3", cfg.ServiceVersion)

	cfg = FromConfig(config.TelemetryConfig{}, "")
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.Equal(t, "dev", cfg.ServiceVersion)
}

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()

	shutdown, err := Init(ctx, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(ctx))
	assert.False(t, IsEnabled())
}

func TestTracerReturnsNoOp(t *testing.T) {
	tracer = nil
	enabled = false

	require.NotNil(t, Tracer())
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1.0).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), sampler(0.25).Description())
}

func TestNoActiveSpan(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "", TraceID(ctx))
	assert.Equal(t, "", SpanID(ctx))
	require.NotPanics(t, func() {
		RecordError(ctx, nil)
		RecordError(ctx, errors.New("test error"))
		SetAttributes(ctx, Service("users"))
	})
}

func TestStartCommandSpan(t *testing.T) {
	sr := recordSpans(t)

	ctx, span := StartCommandSpan(context.Background(), "users", "create", ItemTotal(2))
	assert.NotEmpty(t, TraceID(ctx))
	assert.NotEmpty(t, SpanID(ctx))
	RecordError(ctx, errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, SpanCommand, spans[0].Name())

	attrs := map[string]any{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, "users", attrs[AttrService])
	assert.Equal(t, "create", attrs[AttrVerb])
	assert.Equal(t, int64(2), attrs[AttrItemTotal])
	assert.Len(t, spans[0].Events(), 1)
}

func TestTransport(t *testing.T) {
	t.Run("disabled returns next", func(t *testing.T) {
		enabled = false
		assert.Equal(t, http.DefaultTransport, Transport(http.DefaultTransport))
	})

	t.Run("enabled traces requests", func(t *testing.T) {
		sr := recordSpans(t)

		var traceparent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceparent = r.Header.Get("traceparent")
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		ctx, root := StartCommandSpan(context.Background(), "users", "create")
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/users", nil)
		require.NoError(t, err)

		resp, err := (&http.Client{Transport: Transport(nil)}).Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		root.End()

		assert.Contains(t, traceparent, TraceID(ctx))

		spans := sr.Ended()
		require.Len(t, spans, 2)
		assert.Equal(t, "POST /users", spans[0].Name())
		assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	})
}

func TestAttributeHelpers(t *testing.T) {
	assert.Equal(t, AttrItemTotal, string(ItemTotal(3).Key))
	assert.Equal(t, int64(3), ItemTotal(3).Value.AsInt64())
	assert.Equal(t, "7", ItemID("7").Value.AsString())
	assert.Equal(t, "search", Verb("search").Value.AsString())
}
