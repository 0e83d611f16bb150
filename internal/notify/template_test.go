package notify

import (
	"testing"
	"time"

	"github.com/chrmotors/complaint-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComplaint(priority model.Priority) *model.Complaint {
	return &model.Complaint{
		ComplaintID:          "CHR-1735689600000-4K7Q2Z",
		ComplaintType:        "Service",
		Priority:             priority,
		ComplaintTitle:       "Engine noise after service",
		ComplaintDescription: "Knocking noise since the last visit.",
		VehicleModel:         "Tiggo 8 Pro",
		Name:                 "Rahim Uddin",
		Email:                "rahim@example.com",
		ContactNumber:        "01812345678",
		SubmissionDate:       time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
	}
}

func TestBothEmailsCarryComplaintID(t *testing.T) {
	c := sampleComplaint(model.PriorityHigh)

	admin, err := RenderAdminEmail(c)
	require.NoError(t, err)
	customer, err := RenderCustomerEmail(c)
	require.NoError(t, err)

	assert.Contains(t, admin, c.ComplaintID)
	assert.Contains(t, customer, c.ComplaintID)
}

func TestCustomerEmailResolutionWindows(t *testing.T) {
	cases := []struct {
		priority model.Priority
		window   string
	}{
		{model.PriorityCritical, "24-48 hours"},
		{model.PriorityHigh, "2-3 business days"},
		{model.PriorityMedium, "3-5 business days"},
		{model.PriorityLow, "5-7 business days"},
		{model.Priority("Whatever"), "3-5 business days"},
		{model.Priority(""), "3-5 business days"},
	}
	for _, tc := range cases {
		html, err := RenderCustomerEmail(sampleComplaint(tc.priority))
		require.NoError(t, err)
		assert.Contains(t, html, tc.window, "priority %q", tc.priority)
	}
}

func TestAdminEmailFallbackColors(t *testing.T) {
	html, err := RenderAdminEmail(sampleComplaint(model.Priority("Urgentish")))
	require.NoError(t, err)
	assert.Contains(t, html, "#6B7280")
	assert.Contains(t, html, "#F3F4F6")
}

func TestAdminEmailKnownPriorityColors(t *testing.T) {
	html, err := RenderAdminEmail(sampleComplaint(model.PriorityCritical))
	require.NoError(t, err)
	assert.Contains(t, html, "#B91C1C")
	assert.Contains(t, html, "#FEF2F2")
}

func TestAdminEmailEscapesUserInput(t *testing.T) {
	c := sampleComplaint(model.PriorityLow)
	c.ComplaintTitle = `<script>alert("x")</script>`
	html, err := RenderAdminEmail(c)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestTestDriveEmailCarriesBookingID(t *testing.T) {
	rec := &model.TestDriveRequest{
		BookingID:      "TD-1735689600000-9XK2PQ",
		Name:           "Karim",
		Email:          "karim@example.com",
		ContactNumber:  "01712345678",
		VehicleModel:   "Arrizo 8",
		PreferredDate:  "2026-09-15",
		SubmissionDate: time.Now(),
	}
	html, err := RenderTestDriveEmail(rec)
	require.NoError(t, err)
	assert.Contains(t, html, rec.BookingID)
	assert.Contains(t, html, "Arrizo 8")
}

func TestPriorityMapsFallbacks(t *testing.T) {
	assert.Equal(t, "#6B7280", PriorityTextColor("nope"))
	assert.Equal(t, "#F3F4F6", PriorityBGColor("nope"))
	assert.Equal(t, "3-5 business days", ResolutionWindow("nope"))
}
