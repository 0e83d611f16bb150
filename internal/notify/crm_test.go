package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chrmotors/complaint-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRMClientForwardsComplaint(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	c := &model.Complaint{
		ComplaintID:    "CHR-1735689600000-4K7Q2Z",
		Priority:       model.PriorityHigh,
		VehicleModel:   "Tiggo 8 Pro",
		Name:           "Rahim",
		Email:          "rahim@example.com",
		ContactNumber:  "01812345678",
		SubmissionDate: time.Now(),
	}
	client := NewCRMClient(srv.URL, "secret")
	require.NoError(t, client.ForwardComplaint(context.Background(), c))

	assert.Equal(t, "/ingest/complaint", gotPath)
	assert.Equal(t, "secret", gotKey)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, c.ComplaintID, payload["complaintId"])
}

func TestCRMClientReportsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewCRMClient(srv.URL, "")
	err := client.ForwardComplaint(context.Background(), &model.Complaint{})
	assert.Error(t, err)
}

func TestCRMClientNoOpWithoutURL(t *testing.T) {
	client := NewCRMClient("", "")
	assert.NoError(t, client.ForwardComplaint(context.Background(), &model.Complaint{}))
}
