package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:20200", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://127.0.0.1:20200", client.BaseURL)
	assert.Zero(t, client.RetryCount)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://localhost", 2*time.Second)
	assert.Equal(t, 2*time.Second, client.GetClient().Timeout)

	client = NewHTTPClient("http://localhost", 0)
	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost", 0)
	client2 := NewHTTPClient("http://localhost", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_UsesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conf", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Post("/conf")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestHTTPClient_DoesNotFollowRedirects(t *testing.T) {
	var followed bool
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		followed = true
	}))
	defer target.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+"/conf", http.StatusTemporaryRedirect)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Post("/conf")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode())
	assert.False(t, followed)
}

func TestNewTraceID(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]int{"port": 11}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"port":11}`, rec.Body.String())
	assert.Equal(t, rec.Body.Len(), n)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
