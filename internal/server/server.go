// Package server exposes the translation contract over HTTP:
// POST /analyze (alias /analizar) with {"code": "..."}.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"javapy/internal/driver"
	"javapy/internal/trace"
)

// DefaultMaxBody limits request bodies.
const DefaultMaxBody = 1 << 20

type Options struct {
	Driver driver.Options
	// MaxBody is the request size limit in bytes (0 → DefaultMaxBody).
	MaxBody int64
	// Tracer receives one span per request; nil disables tracing.
	Tracer trace.Tracer
}

type Server struct {
	opts Options
	mux  *http.ServeMux
}

type analyzeRequest struct {
	Code *string `json:"code"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(opts Options) *Server {
	if opts.MaxBody <= 0 {
		opts.MaxBody = DefaultMaxBody
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	s := &Server{opts: opts, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("POST /analizar", s.handleAnalyze)
	s.mux.HandleFunc("OPTIONS /", s.handlePreflight)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

// Handler returns the routing handler with CORS headers applied.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		s.mux.ServeHTTP(w, r)
	})
}

func (s *Server) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := trace.WithTracer(r.Context(), s.opts.Tracer)
	ctx, span := trace.Child(ctx, trace.ScopeDriver, "http:"+r.URL.Path)
	status := http.StatusOK
	defer func() { span.WithExtra("status", strconv.Itoa(status)).End("") }()

	var req analyzeRequest
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
			writeJSON(w, status, errorResponse{Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)})
			return
		}
		status = http.StatusBadRequest
		writeJSON(w, status, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if req.Code == nil || *req.Code == "" {
		status = http.StatusBadRequest
		writeJSON(w, status, errorResponse{Error: "no code provided"})
		return
	}

	res, err := driver.Analyze(ctx, "request.java", *req.Code, s.opts.Driver)
	if err != nil {
		// клиент отключился
		status = http.StatusServiceUnavailable
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, status, res.View())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. ready, when non-nil, receives the bound address.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	if ready != nil {
		ready(ln.Addr())
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
