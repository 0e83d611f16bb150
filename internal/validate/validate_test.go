package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validComplaintInput() ComplaintInput {
	return ComplaintInput{
		Name:                 "Rahim Uddin",
		Email:                "rahim@example.com",
		ContactNumber:        "01812345678",
		ComplaintType:        "Service",
		Priority:             "High",
		ComplaintTitle:       "Engine noise after service",
		ComplaintDescription: "A knocking noise started the day after the last service visit.",
		VehicleModel:         "Tiggo 8 Pro",
	}
}

func TestComplaintValid(t *testing.T) {
	assert.Empty(t, Complaint(validComplaintInput()))
}

func TestComplaintAcceptsInternationalPrefix(t *testing.T) {
	in := validComplaintInput()
	in.ContactNumber = "+8801912345678"
	assert.Empty(t, Complaint(in))
}

func TestComplaintAcceptsWhitespaceInPhone(t *testing.T) {
	in := validComplaintInput()
	in.ContactNumber = "018 1234 5678"
	assert.Empty(t, Complaint(in))
}

func TestComplaintRejectsBadEmail(t *testing.T) {
	in := validComplaintInput()
	in.Email = "not-an-email"
	errs := Complaint(in)
	assert.Contains(t, errs, "email")
	assert.Len(t, errs, 1)
}

func TestComplaintRejectsBadPhone(t *testing.T) {
	for _, number := range []string{"123", "02812345678", "0181234567", "018123456789", "+8802912345678"} {
		in := validComplaintInput()
		in.ContactNumber = number
		errs := Complaint(in)
		assert.Contains(t, errs, "contactNumber", "number %q should be rejected", number)
	}
}

func TestComplaintRequiredFields(t *testing.T) {
	errs := Complaint(ComplaintInput{})
	for _, field := range []string{
		"name", "email", "contactNumber", "complaintType",
		"priority", "complaintTitle", "complaintDescription", "vehicleModel",
	} {
		assert.Contains(t, errs, field)
	}
	assert.Len(t, errs, 8)
}

func TestComplaintWhitespaceOnlyIsEmpty(t *testing.T) {
	in := validComplaintInput()
	in.Name = "   "
	errs := Complaint(in)
	assert.Equal(t, "Name is required", errs["name"])
}

func TestTestDriveValid(t *testing.T) {
	assert.Empty(t, TestDrive(TestDriveInput{
		Name:          "Karim",
		Email:         "karim@example.com",
		ContactNumber: "01712345678",
		VehicleModel:  "Arrizo 8",
		PreferredDate: "2026-09-15",
	}))
}

func TestTestDriveRequiredFields(t *testing.T) {
	errs := TestDrive(TestDriveInput{})
	assert.Len(t, errs, 5)
	assert.Contains(t, errs, "preferredDate")
}
