package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	router "focuspad/internal/http"
	"focuspad/internal/http/handlers"
	"focuspad/internal/service"
	"focuspad/internal/store/memory"
)

func newTracedApp(t *testing.T, logs io.Writer) (http.Handler, *tracetest.SpanRecorder) {
	t.Helper()

	svc, err := service.New(memory.NewTaskStore(), memory.NewSessionStore())
	if err != nil {
		t.Fatalf("service.New err=%v", err)
	}

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	logger := slog.New(slog.NewJSONHandler(logs, nil))
	app := router.New(handlers.New(svc, logger), router.Options{Logger: logger, TracerProvider: tp})

	return app, recorder
}

func TestRouter_RecordsServerSpan(t *testing.T) {
	var logs bytes.Buffer
	app, recorder := newTracedApp(t, &logs)

	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", rr.Code, http.StatusOK)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans=%d, want 1", len(spans))
	}
	if spans[0].Name() != "focuspad" {
		t.Fatalf("span name=%q, want %q", spans[0].Name(), "focuspad")
	}

	var entry map[string]any
	if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, logs.String())
	}
	if entry["trace_id"] != spans[0].SpanContext().TraceID().String() {
		t.Fatalf("logged trace_id=%v, want %s", entry["trace_id"], spans[0].SpanContext().TraceID())
	}
}

func TestRouter_ContinuesIncomingTrace(t *testing.T) {
	app, recorder := newTracedApp(t, io.Discard)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	app.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans=%d, want 1", len(spans))
	}
	if got := spans[0].SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("trace id=%s, want the incoming one", got)
	}
	if got := spans[0].Parent().SpanID().String(); got != "00f067aa0ba902b7" {
		t.Fatalf("parent span id=%s, want 00f067aa0ba902b7", got)
	}
}
