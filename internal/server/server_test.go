package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"javapy/internal/driver"
)

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	h := New(Options{}).Handler()
	for _, path := range []string{"/analyze", "/analizar"} {
		rec := post(t, h, path, `{"code": "int x = 5;\nboolean b = true;"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d: %s", path, rec.Code, rec.Body.String())
		}
		var got driver.ResultView
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if got.PythonCode != "x = 5\nb = True\n" || len(got.Tokens) != 10 {
			t.Fatalf("%s: unexpected result %+v", path, got)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("%s: missing CORS header", path)
		}
	}
}

func TestAnalyzeReportsDiagnostics(t *testing.T) {
	rec := post(t, New(Options{}).Handler(), "/analyze", `{"code": "int x = 5\n# y = 1;"}`)
	var got driver.ResultView
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.LexicalErrors) != 1 || len(got.SyntaxErrors) != 1 {
		t.Fatalf("unexpected diagnostics %+v", got)
	}
}

func TestAnalyzeBadRequests(t *testing.T) {
	h := New(Options{MaxBody: 64}).Handler()
	cases := []struct {
		name   string
		body   string
		status int
		errSub string
	}{
		{"missing code", `{}`, http.StatusBadRequest, "no code"},
		{"empty code", `{"code": ""}`, http.StatusBadRequest, "no code"},
		{"not json", `code=1`, http.StatusBadRequest, "invalid JSON"},
		{"too large", `{"code": "` + strings.Repeat("x", 100) + `"}`, http.StatusRequestEntityTooLarge, "exceeds 64"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, "/analyze", tc.body)
			if rec.Code != tc.status {
				t.Fatalf("status %d, want %d", rec.Code, tc.status)
			}
			var e errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil || !strings.Contains(e.Error, tc.errSub) {
				t.Fatalf("error body %q (%v)", rec.Body.String(), err)
			}
		})
	}
}

func TestMethodAndPreflight(t *testing.T) {
	h := New(Options{}).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /analyze = %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/analyze", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("OPTIONS = %d", rec.Code)
	}
}

func TestListenAndServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- New(Options{}).ListenAndServe(ctx, "127.0.0.1:0", func(a net.Addr) { addrCh <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-errCh:
		t.Fatalf("server failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Post(fmt.Sprintf("http://%s/analyze", addr), "application/json",
		bytes.NewBufferString(`{"code": "int x = 1;"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("shutdown error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
