package router

import (
	"focuspad/internal/http/handlers"
	"focuspad/internal/http/middleware"
	"focuspad/internal/tracing"
	"log/slog"
	"net/http"
	"regexp"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

type Options struct {
	Logger         *slog.Logger
	AllowedOrigins *regexp.Regexp
	// TracerProvider defaults to the global provider when nil.
	TracerProvider trace.TracerProvider
}

func New(handler *handlers.Handler, opts Options) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", handler.Ping)

	mux.HandleFunc("GET /tasks", handler.ListTasks)
	mux.HandleFunc("POST /tasks", handler.CreateTask)
	mux.HandleFunc("GET /tasks/{id}", handler.GetTask)
	mux.HandleFunc("PATCH /tasks/{id}", handler.UpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", handler.DeleteTask)

	mux.HandleFunc("GET /sessions", handler.ListSessions)
	mux.HandleFunc("POST /sessions", handler.CreateSession)

	mux.HandleFunc("GET /stats", handler.Stats)

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var h http.Handler = mux
	h = middleware.CORS(opts.AllowedOrigins)(h)
	h = middleware.Logging(logger)(h)

	otelOpts := []otelhttp.Option{otelhttp.WithPropagators(tracing.Propagator)}
	if opts.TracerProvider != nil {
		otelOpts = append(otelOpts, otelhttp.WithTracerProvider(opts.TracerProvider))
	}

	return otelhttp.NewHandler(h, "focuspad", otelOpts...)
}
