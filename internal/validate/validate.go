package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Bangladeshi mobile numbers: +8801 or 01, operator digit 3-9, 8 more digits.
	phoneRe      = regexp.MustCompile(`^(\+8801|01)[3-9]\d{8}$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ComplaintInput carries the complaint form fields subject to validation.
type ComplaintInput struct {
	Name                 string
	Email                string
	ContactNumber        string
	ComplaintType        string
	Priority             string
	ComplaintTitle       string
	ComplaintDescription string
	VehicleModel         string
}

// TestDriveInput carries the test-drive form fields subject to validation.
type TestDriveInput struct {
	Name          string
	Email         string
	ContactNumber string
	VehicleModel  string
	PreferredDate string
}

// Complaint returns a field->message map for every violated rule, empty when
// the input is valid. Pure function: no trimming is written back to the input.
func Complaint(in ComplaintInput) map[string]string {
	errs := make(map[string]string)
	requireNonEmpty(errs, "name", in.Name, "Name is required")
	requireNonEmpty(errs, "email", in.Email, "Email is required")
	requireNonEmpty(errs, "contactNumber", in.ContactNumber, "Contact number is required")
	requireNonEmpty(errs, "complaintType", in.ComplaintType, "Complaint type is required")
	requireNonEmpty(errs, "priority", in.Priority, "Priority is required")
	requireNonEmpty(errs, "complaintTitle", in.ComplaintTitle, "Complaint title is required")
	requireNonEmpty(errs, "complaintDescription", in.ComplaintDescription, "Complaint description is required")
	requireNonEmpty(errs, "vehicleModel", in.VehicleModel, "Vehicle model is required")
	checkEmail(errs, in.Email)
	checkPhone(errs, "contactNumber", in.ContactNumber)
	return errs
}

// TestDrive validates a test-drive booking the same way.
func TestDrive(in TestDriveInput) map[string]string {
	errs := make(map[string]string)
	requireNonEmpty(errs, "name", in.Name, "Name is required")
	requireNonEmpty(errs, "email", in.Email, "Email is required")
	requireNonEmpty(errs, "contactNumber", in.ContactNumber, "Contact number is required")
	requireNonEmpty(errs, "vehicleModel", in.VehicleModel, "Vehicle model is required")
	requireNonEmpty(errs, "preferredDate", in.PreferredDate, "Preferred date is required")
	checkEmail(errs, in.Email)
	checkPhone(errs, "contactNumber", in.ContactNumber)
	return errs
}

func requireNonEmpty(errs map[string]string, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}

func checkEmail(errs map[string]string, email string) {
	if _, required := errs["email"]; required {
		return
	}
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		errs["email"] = "Please enter a valid email address"
	}
}

func checkPhone(errs map[string]string, field, number string) {
	if _, required := errs[field]; required {
		return
	}
	if !phoneRe.MatchString(whitespaceRe.ReplaceAllString(number, "")) {
		errs[field] = "Please enter a valid mobile number (e.g. 01812345678)"
	}
}
