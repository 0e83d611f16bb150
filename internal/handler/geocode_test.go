package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chrmotors/complaint-service/internal/geocode"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocodeRouter(providerURL string) *gin.Engine {
	h := NewGeocodeHandler(geocode.NewClient(providerURL), zerolog.Nop())
	r := gin.New()
	r.GET("/api/geocode/reverse", h.Reverse)
	return r
}

func TestReverseGeocodeSuccess(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "23.8103", r.URL.Query().Get("lat"))
		assert.Equal(t, "90.4125", r.URL.Query().Get("lon"))
		json.NewEncoder(w).Encode(map[string]string{"display_name": "Gulshan Avenue, Dhaka"})
	}))
	defer provider.Close()

	r := newGeocodeRouter(provider.URL)
	req := httptest.NewRequest(http.MethodGet, "/api/geocode/reverse?lat=23.8103&lng=90.4125", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool   `json:"success"`
		Address string `json:"address"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Gulshan Avenue, Dhaka", resp.Address)
}

func TestReverseGeocodeProviderDown(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer provider.Close()

	r := newGeocodeRouter(provider.URL)
	req := httptest.NewRequest(http.MethodGet, "/api/geocode/reverse?lat=1&lng=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// best-effort: the client falls back to manual entry, no 5xx
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestReverseGeocodeMissingParams(t *testing.T) {
	r := newGeocodeRouter("")
	req := httptest.NewRequest(http.MethodGet, "/api/geocode/reverse?lat=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
