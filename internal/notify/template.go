package notify

import (
	"bytes"
	"html/template"

	"github.com/chrmotors/complaint-service/internal/model"
)

// Display-only derived values. Unrecognized priorities fall back to neutral
// gray and the standard resolution window rather than failing the render.
const (
	fallbackTextColor = "#6B7280"
	fallbackBGColor   = "#F3F4F6"
	fallbackWindow    = "3-5 business days"
)

var priorityTextColors = map[model.Priority]string{
	model.PriorityLow:      "#047857",
	model.PriorityMedium:   "#B45309",
	model.PriorityHigh:     "#C2410C",
	model.PriorityCritical: "#B91C1C",
}

var priorityBGColors = map[model.Priority]string{
	model.PriorityLow:      "#ECFDF5",
	model.PriorityMedium:   "#FFFBEB",
	model.PriorityHigh:     "#FFF7ED",
	model.PriorityCritical: "#FEF2F2",
}

var resolutionWindows = map[model.Priority]string{
	model.PriorityLow:      "5-7 business days",
	model.PriorityMedium:   "3-5 business days",
	model.PriorityHigh:     "2-3 business days",
	model.PriorityCritical: "24-48 hours",
}

// PriorityTextColor returns the banner text color for a priority.
func PriorityTextColor(p model.Priority) string {
	if c, ok := priorityTextColors[p]; ok {
		return c
	}
	return fallbackTextColor
}

// PriorityBGColor returns the banner background color for a priority.
func PriorityBGColor(p model.Priority) string {
	if c, ok := priorityBGColors[p]; ok {
		return c
	}
	return fallbackBGColor
}

// ResolutionWindow returns the expected first-response window shown to the
// customer for a priority.
func ResolutionWindow(p model.Priority) string {
	if w, ok := resolutionWindows[p]; ok {
		return w
	}
	return fallbackWindow
}

const dateLayout = "02 Jan 2006, 03:04 PM"

type adminEmailData struct {
	*model.Complaint
	SubmittedAt   string
	PriorityColor string
	PriorityBG    string
}

type customerEmailData struct {
	*model.Complaint
	SubmittedAt      string
	ResolutionWindow string
}

type testDriveEmailData struct {
	*model.TestDriveRequest
	SubmittedAt string
}

var adminEmailTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#F3F4F6;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width:640px;margin:0 auto;background-color:#FFFFFF;">
    <tr>
      <td style="background-color:#111827;padding:24px 32px;">
        <h1 style="margin:0;color:#FFFFFF;font-size:20px;">New Customer Complaint</h1>
        <p style="margin:8px 0 0;color:#9CA3AF;font-size:13px;">Reference {{.ComplaintID}} &middot; {{.SubmittedAt}}</p>
      </td>
    </tr>
    <tr>
      <td style="padding:24px 32px 0;">
        <div style="background-color:{{.PriorityBG}};border-radius:6px;padding:12px 16px;">
          <span style="color:{{.PriorityColor}};font-size:14px;font-weight:bold;">{{.Priority}} Priority</span>
          <span style="color:{{.PriorityColor}};font-size:14px;"> &mdash; {{.ComplaintType}}</span>
        </div>
      </td>
    </tr>
    <tr>
      <td style="padding:24px 32px;">
        <h2 style="margin:0 0 8px;color:#111827;font-size:16px;">{{.ComplaintTitle}}</h2>
        <p style="margin:0;color:#374151;font-size:14px;line-height:1.6;">{{.ComplaintDescription}}</p>
        {{if .DesiredResolution}}
        <p style="margin:16px 0 0;color:#374151;font-size:14px;"><strong>Desired resolution:</strong> {{.DesiredResolution}}</p>
        {{end}}
      </td>
    </tr>
    <tr>
      <td style="padding:0 32px 24px;">
        <h3 style="margin:0 0 8px;color:#6B7280;font-size:12px;text-transform:uppercase;letter-spacing:1px;">Vehicle</h3>
        <table width="100%" cellpadding="4" cellspacing="0" style="font-size:14px;color:#374151;">
          <tr><td width="40%"><strong>Model</strong></td><td>{{.VehicleModel}}</td></tr>
          {{if .VehicleYear}}<tr><td><strong>Year</strong></td><td>{{.VehicleYear}}</td></tr>{{end}}
          {{if .VinNumber}}<tr><td><strong>VIN</strong></td><td>{{.VinNumber}}</td></tr>{{end}}
          {{if .PurchaseDate}}<tr><td><strong>Purchase date</strong></td><td>{{.PurchaseDate}}</td></tr>{{end}}
          {{if .DealerName}}<tr><td><strong>Dealer</strong></td><td>{{.DealerName}}</td></tr>{{end}}
          {{if .PreviousServiceHistory}}<tr><td><strong>Service history</strong></td><td>{{.PreviousServiceHistory}}</td></tr>{{end}}
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding:0 32px 32px;">
        <h3 style="margin:0 0 8px;color:#6B7280;font-size:12px;text-transform:uppercase;letter-spacing:1px;">Customer</h3>
        <table width="100%" cellpadding="4" cellspacing="0" style="font-size:14px;color:#374151;">
          <tr><td width="40%"><strong>Name</strong></td><td>{{.Name}}</td></tr>
          <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
          <tr><td><strong>Contact</strong></td><td>{{.ContactNumber}}</td></tr>
          {{if .AlternateNumber}}<tr><td><strong>Alternate</strong></td><td>{{.AlternateNumber}}</td></tr>{{end}}
          {{if .Address}}<tr><td><strong>Address</strong></td><td>{{.Address}}</td></tr>{{end}}
        </table>
      </td>
    </tr>
    <tr>
      <td style="background-color:#F9FAFB;padding:16px 32px;border-top:1px solid #E5E7EB;">
        <p style="margin:0;color:#9CA3AF;font-size:12px;">Forwarded automatically by the complaint service. Reply to the customer directly.</p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

var customerEmailTmpl = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#F3F4F6;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width:640px;margin:0 auto;background-color:#FFFFFF;">
    <tr>
      <td style="background-color:#B91C1C;padding:24px 32px;">
        <h1 style="margin:0;color:#FFFFFF;font-size:20px;">We have received your complaint</h1>
      </td>
    </tr>
    <tr>
      <td style="padding:24px 32px;">
        <p style="margin:0 0 16px;color:#374151;font-size:14px;line-height:1.6;">Dear {{.Name}},</p>
        <p style="margin:0 0 16px;color:#374151;font-size:14px;line-height:1.6;">
          Thank you for contacting us about <strong>{{.ComplaintTitle}}</strong>.
          Your complaint has been registered and our customer care team will be
          in touch.
        </p>
        <div style="background-color:#F9FAFB;border:1px solid #E5E7EB;border-radius:6px;padding:16px;text-align:center;">
          <p style="margin:0;color:#6B7280;font-size:12px;text-transform:uppercase;letter-spacing:1px;">Your reference number</p>
          <p style="margin:8px 0 0;color:#111827;font-size:20px;font-weight:bold;">{{.ComplaintID}}</p>
        </div>
        <p style="margin:16px 0 0;color:#374151;font-size:14px;line-height:1.6;">
          Based on the priority of your complaint, you can expect our first
          response within <strong>{{.ResolutionWindow}}</strong>.
        </p>
      </td>
    </tr>
    <tr>
      <td style="padding:0 32px 24px;">
        <h3 style="margin:0 0 12px;color:#6B7280;font-size:12px;text-transform:uppercase;letter-spacing:1px;">What happens next</h3>
        <table width="100%" cellpadding="6" cellspacing="0" style="font-size:14px;color:#374151;">
          <tr><td width="24" style="color:#B91C1C;font-weight:bold;">1</td><td>Our team reviews your complaint and vehicle details.</td></tr>
          <tr><td style="color:#B91C1C;font-weight:bold;">2</td><td>A service advisor contacts you on {{.ContactNumber}}.</td></tr>
          <tr><td style="color:#B91C1C;font-weight:bold;">3</td><td>We agree a resolution and keep you updated until it is complete.</td></tr>
        </table>
      </td>
    </tr>
    <tr>
      <td style="background-color:#F9FAFB;padding:16px 32px;border-top:1px solid #E5E7EB;">
        <p style="margin:0;color:#9CA3AF;font-size:12px;">
          Submitted {{.SubmittedAt}}. Please quote your reference number in any
          follow-up. This mailbox is not monitored.
        </p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

var testDriveEmailTmpl = template.Must(template.New("testdrive").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#F3F4F6;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width:640px;margin:0 auto;background-color:#FFFFFF;">
    <tr>
      <td style="background-color:#111827;padding:24px 32px;">
        <h1 style="margin:0;color:#FFFFFF;font-size:20px;">New Test Drive Booking</h1>
        <p style="margin:8px 0 0;color:#9CA3AF;font-size:13px;">Reference {{.BookingID}} &middot; {{.SubmittedAt}}</p>
      </td>
    </tr>
    <tr>
      <td style="padding:24px 32px;">
        <table width="100%" cellpadding="4" cellspacing="0" style="font-size:14px;color:#374151;">
          <tr><td width="40%"><strong>Vehicle</strong></td><td>{{.VehicleModel}}</td></tr>
          <tr><td><strong>Preferred date</strong></td><td>{{.PreferredDate}}</td></tr>
          {{if .PreferredTime}}<tr><td><strong>Preferred time</strong></td><td>{{.PreferredTime}}</td></tr>{{end}}
          {{if .DealerLocation}}<tr><td><strong>Showroom</strong></td><td>{{.DealerLocation}}</td></tr>{{end}}
          <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
          <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
          <tr><td><strong>Contact</strong></td><td>{{.ContactNumber}}</td></tr>
          {{if .Message}}<tr><td><strong>Message</strong></td><td>{{.Message}}</td></tr>{{end}}
        </table>
      </td>
    </tr>
    <tr>
      <td style="background-color:#F9FAFB;padding:16px 32px;border-top:1px solid #E5E7EB;">
        <p style="margin:0;color:#9CA3AF;font-size:12px;">Confirm the booking with the customer within one business day.</p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// RenderAdminEmail renders the internal notification for a complaint.
func RenderAdminEmail(c *model.Complaint) (string, error) {
	return render(adminEmailTmpl, adminEmailData{
		Complaint:     c,
		SubmittedAt:   c.SubmissionDate.Format(dateLayout),
		PriorityColor: PriorityTextColor(c.Priority),
		PriorityBG:    PriorityBGColor(c.Priority),
	})
}

// RenderCustomerEmail renders the confirmation sent to the submitter.
func RenderCustomerEmail(c *model.Complaint) (string, error) {
	return render(customerEmailTmpl, customerEmailData{
		Complaint:        c,
		SubmittedAt:      c.SubmissionDate.Format(dateLayout),
		ResolutionWindow: ResolutionWindow(c.Priority),
	})
}

// RenderTestDriveEmail renders the internal notification for a booking.
func RenderTestDriveEmail(t *model.TestDriveRequest) (string, error) {
	return render(testDriveEmailTmpl, testDriveEmailData{
		TestDriveRequest: t,
		SubmittedAt:      t.SubmissionDate.Format(dateLayout),
	})
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
