package httpclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	client := New(30*time.Second, "test-agent/1.0")

	if client == nil {
		t.Fatal("New returned nil")
	}

	if client.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", client.Timeout)
	}

	if client.maxRedirects != 10 {
		t.Errorf("Expected maxRedirects 10, got %d", client.maxRedirects)
	}

	if client.userAgent != "test-agent/1.0" {
		t.Errorf("Expected userAgent to be kept, got %q", client.userAgent)
	}
}

func TestDo_StampsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := WrapClient(server.Client(), "lookup-client/0.1 (https://example.org)")

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if gotAgent != "lookup-client/0.1 (https://example.org)" {
		t.Errorf("expected stamped user agent, got %q", gotAgent)
	}
}

func TestDo_KeepsExplicitUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := WrapClient(server.Client(), "default-agent")

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req.Header.Set("User-Agent", "caller-agent")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if gotAgent != "caller-agent" {
		t.Errorf("expected caller agent to win, got %q", gotAgent)
	}
}

func TestDo_BoundsRedirectChain(t *testing.T) {
	hops := 0
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hops++
		http.Redirect(w, r, fmt.Sprintf("%s/hop/%d", server.URL, hops), http.StatusFound)
	}))
	defer server.Close()

	client := New(5*time.Second, "test-agent")

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.Do(req)
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected error for unbounded redirect chain")
	}

	if hops > 11 {
		t.Errorf("expected redirect chain to stop near 10 hops, followed %d", hops)
	}
}
