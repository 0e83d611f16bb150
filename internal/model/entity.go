package model

import "time"

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// StatusSubmitted is the only status this service assigns. Lifecycle
// transitions happen in the CRM, not here.
const StatusSubmitted = "Submitted"

// Complaint is built once per submission and fanned out read-only to the
// store, the CRM and both email notifiers.
type Complaint struct {
	ID          uint64 `gorm:"primaryKey" json:"-"`
	ComplaintID string `gorm:"type:varchar(32);uniqueIndex;not null" json:"complaintId"`

	ComplaintType        string   `gorm:"type:varchar(64);not null" json:"complaintType"`
	Priority             Priority `gorm:"type:varchar(16);index;not null" json:"priority"`
	ComplaintTitle       string   `gorm:"type:varchar(255);not null" json:"complaintTitle"`
	ComplaintDescription string   `gorm:"type:text;not null" json:"complaintDescription"`
	DesiredResolution    string   `gorm:"type:text" json:"desiredResolution,omitempty"`

	VehicleModel           string `gorm:"type:varchar(128);index;not null" json:"vehicleModel"`
	VehicleYear            string `gorm:"type:varchar(8)" json:"vehicleYear,omitempty"`
	VinNumber              string `gorm:"type:varchar(32)" json:"vinNumber,omitempty"`
	PurchaseDate           string `gorm:"type:varchar(16)" json:"purchaseDate,omitempty"`
	DealerName             string `gorm:"type:varchar(128)" json:"dealerName,omitempty"`
	PreviousServiceHistory string `gorm:"type:text" json:"previousServiceHistory,omitempty"`

	Name            string `gorm:"type:varchar(128);not null" json:"name"`
	Email           string `gorm:"type:varchar(255);index;not null" json:"email"`
	ContactNumber   string `gorm:"type:varchar(24);not null" json:"contactNumber"`
	AlternateNumber string `gorm:"type:varchar(24)" json:"alternateNumber,omitempty"`
	Address         string `gorm:"type:text" json:"address,omitempty"`

	SubmissionDate time.Time `gorm:"not null" json:"submissionDate"`
	Status         string    `gorm:"type:varchar(32);not null" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TestDriveRequest is a test-drive booking submitted from the vehicle pages.
type TestDriveRequest struct {
	ID        uint64 `gorm:"primaryKey" json:"-"`
	BookingID string `gorm:"type:varchar(32);uniqueIndex;not null" json:"bookingId"`

	Name          string `gorm:"type:varchar(128);not null" json:"name"`
	Email         string `gorm:"type:varchar(255);index;not null" json:"email"`
	ContactNumber string `gorm:"type:varchar(24);not null" json:"contactNumber"`

	VehicleModel   string `gorm:"type:varchar(128);index;not null" json:"vehicleModel"`
	PreferredDate  string `gorm:"type:varchar(16);not null" json:"preferredDate"`
	PreferredTime  string `gorm:"type:varchar(16)" json:"preferredTime,omitempty"`
	DealerLocation string `gorm:"type:varchar(128)" json:"dealerLocation,omitempty"`
	Message        string `gorm:"type:text" json:"message,omitempty"`

	SubmissionDate time.Time `gorm:"not null" json:"submissionDate"`
	Status         string    `gorm:"type:varchar(32);not null" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
