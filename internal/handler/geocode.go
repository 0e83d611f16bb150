package handler

import (
	"net/http"

	"github.com/chrmotors/complaint-service/internal/geocode"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type GeocodeHandler struct {
	client *geocode.Client
	log    zerolog.Logger
}

func NewGeocodeHandler(client *geocode.Client, log zerolog.Logger) *GeocodeHandler {
	return &GeocodeHandler{client: client, log: log}
}

// Reverse handles GET /api/geocode/reverse?lat=&lng=. Lookups are best-effort:
// provider failure returns success:false and the client falls back to manual
// address entry, so no 5xx is surfaced.
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	lat := c.Query("lat")
	lng := c.Query("lng")
	if lat == "" || lng == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "lat and lng are required"})
		return
	}
	address, err := h.client.Reverse(c.Request.Context(), lat, lng)
	if err != nil {
		h.log.Warn().Err(err).Str("lat", lat).Str("lng", lng).Msg("reverse geocode failed")
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "address": address})
}
