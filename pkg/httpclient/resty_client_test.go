package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientGetSendsHeadersAndReadsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "secret" {
			t.Errorf("expected Authorization header, got %q", got)
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Get(context.Background(), srv.URL, map[string]string{"Authorization": "secret"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"status":"ok"}` {
		t.Fatalf("unexpected body %q", resp.Body())
	}
}

func TestRestyClientGetReportsTruncatedBodyAsReadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "128")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status"`))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	_, err := client.Get(context.Background(), srv.URL, nil)
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T (%v)", err, err)
	}
	if readErr.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on read error, got %d", readErr.StatusCode)
	}
}

func TestRestyClientGetTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewRestyClient(time.Second)
	_, err := client.Get(context.Background(), url, nil)
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	var readErr *ReadError
	if errors.As(err, &readErr) {
		t.Fatalf("connection failure must not be a read error: %v", err)
	}
}
