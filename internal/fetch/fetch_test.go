package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/fetch"
)

func TestGetReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	client := fetch.New(time.Second)
	body, err := client.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, string(body), "hello")
}

func TestGetFailsOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := fetch.New(time.Second)
	_, err := client.Get(context.Background(), srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status")
}

func TestGetFailsOnUnreachableHost(t *testing.T) {
	client := fetch.New(200 * time.Millisecond)
	_, err := client.Get(context.Background(), "http://127.0.0.1:1")
	require.Error(t, err)
}
