package geocoding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moments-social/api-go/httperror"
	"github.com/moments-social/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "1600 Amphitheatre Parkway", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":37.4,"lng":-122.1}}}]}`))
	}))
	defer srv.Close()

	location, err := newTestClient(srv).Resolve(context.Background(), "1600 Amphitheatre Parkway")
	require.NoError(t, err)
	assert.Equal(t, models.Location{Lat: 37.4, Lng: -122.1}, location)
}

func TestResolveZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Resolve(context.Background(), "asdfghjkl")
	var httpErr *httperror.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, httperror.KindGeocodingFailed, httpErr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
}

func TestResolveEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Resolve(context.Background(), "somewhere")
	var httpErr *httperror.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, httperror.KindGeocodingFailed, httpErr.Kind)
}

func TestResolveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Resolve(context.Background(), "somewhere")
	require.Error(t, err)
	// A transport failure is not a client-facing geocoding error.
	var httpErr *httperror.Error
	assert.False(t, errors.As(err, &httpErr))
}
