package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beautix-tech/admin-panel/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nopLogger{})
}

func TestClient_RequestSetsHeaders(t *testing.T) {
	var gotContentType, gotRequestID string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"data": []}`))
	})

	if _, err := client.Request(context.Background(), http.MethodGet, "/products", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestClient_RequestErrorCarriesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "Produit déjà existant"}`))
	})

	_, err := client.Request(context.Background(), http.MethodPost, "/products", map[string]string{"name": "x"})
	if err == nil {
		t.Fatal("expected error on 409")
	}

	var reqErr *e.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T: %v", err, err)
	}
	if reqErr.Status != http.StatusConflict {
		t.Errorf("expected status 409, got %d", reqErr.Status)
	}
	if reqErr.Message != "Produit déjà existant" {
		t.Errorf("expected backend message to surface verbatim, got %q", reqErr.Message)
	}
}

func TestClient_RequestErrorWithoutMessageBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	})

	_, err := client.Request(context.Background(), http.MethodGet, "/products", nil)

	var reqErr *e.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T: %v", err, err)
	}
	if reqErr.Message == "" {
		t.Error("message must fall back to a generic text, not be empty")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Request(ctx, http.MethodGet, "/products", nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
