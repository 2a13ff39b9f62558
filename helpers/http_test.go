package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchDirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The portal sees a browser-like client preferring Swedish
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept-Language"), "sv")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>Hello, World!</body></html>"))
	}))
	defer server.Close()

	body, err := FetchDirect(context.Background(), server.URL, 2*time.Second)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Hello, World!")
}

func TestFetchDirectNonUTF8(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.WriteHeader(http.StatusOK)
		// "Lägenhet" in ISO-8859-1 encoding
		w.Write([]byte("<html><body>L\xe4genhet</body></html>"))
	}))
	defer server.Close()

	body, err := FetchDirect(context.Background(), server.URL, 2*time.Second)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Lägenhet")
}

func TestFetchDirectError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := FetchDirect(context.Background(), server.URL, 2*time.Second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 500")
}

func TestFetchDirectTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := FetchDirect(context.Background(), server.URL, 50*time.Millisecond)
	assert.Error(t, err)
}

func TestFetchViaProxy(t *testing.T) {
	target := "https://www.hemnet.se/bostad/lagenhet-3rum-123456"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The proxy receives the target URL-encoded in the query
		assert.Equal(t, target, r.URL.Query().Get("url"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>proxied</body></html>"))
	}))
	defer server.Close()

	body, err := FetchViaProxy(context.Background(), server.URL+"/raw?url=", target, 2*time.Second)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "proxied")
}

func TestFetchViaProxyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := FetchViaProxy(context.Background(), server.URL+"/raw?url=", "https://example.com", 2*time.Second)
	assert.Error(t, err)
}
