package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chrmotors/complaint-service/internal/kafka"
	"github.com/chrmotors/complaint-service/internal/model"
	"github.com/chrmotors/complaint-service/internal/notify"
	"github.com/rs/zerolog"
)

// ComplaintStore is the persistence surface the pipeline needs (interface so
// tests can substitute a stub).
type ComplaintStore interface {
	SaveComplaint(ctx context.Context, c *model.Complaint) error
	SaveTestDrive(ctx context.Context, t *model.TestDriveRequest) error
	GetByComplaintID(ctx context.Context, complaintID string) (*model.Complaint, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Complaint, int64, error)
}

// Deps are the pipeline's collaborators.
type Deps struct {
	Store           ComplaintStore
	CRM             notify.Forwarder
	Mailer          notify.Mailer
	Producer        kafka.ComplaintEventProducer
	AdminRecipients []string
	Log             zerolog.Logger
}

type ComplaintService struct {
	Deps
}

func NewComplaintService(deps Deps) *ComplaintService {
	return &ComplaintService{Deps: deps}
}

// NewComplaint assigns the tracking ID, submission timestamp and initial
// status. The record is never mutated afterwards.
func NewComplaint(c *model.Complaint) *model.Complaint {
	c.ComplaintID = model.NewTrackingID(model.ComplaintIDPrefix)
	c.SubmissionDate = time.Now()
	c.Status = model.StatusSubmitted
	return c
}

// NewTestDrive does the same for a test-drive booking.
func NewTestDrive(t *model.TestDriveRequest) *model.TestDriveRequest {
	t.BookingID = model.NewTrackingID(model.BookingIDPrefix)
	t.SubmissionDate = time.Now()
	t.Status = model.StatusSubmitted
	return t
}

type step struct {
	name string
	run  func() error
}

// runSteps executes the side-effect steps in order. Every step is guarded
// independently: an error or panic is captured and logged, and the remaining
// steps still run. Nothing propagates to the caller.
func (s *ComplaintService) runSteps(trackingID string, steps []step) {
	for _, st := range steps {
		if err := runGuarded(st.run); err != nil {
			s.Log.Error().
				Err(err).
				Str("step", st.name).
				Str("tracking_id", trackingID).
				Msg("submission step failed")
		}
	}
}

func runGuarded(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// SubmitComplaint fans the record out to the store, the CRM and both email
// notifiers, sequentially and best-effort, then emits a complaint.created
// event. It never fails: by the time it runs the submission is accepted.
func (s *ComplaintService) SubmitComplaint(ctx context.Context, c *model.Complaint) {
	s.runSteps(c.ComplaintID, []step{
		{"store", func() error { return s.Store.SaveComplaint(ctx, c) }},
		{"crm", func() error { return s.CRM.ForwardComplaint(ctx, c) }},
		{"admin_email", func() error { return s.sendAdminEmail(ctx, c) }},
		{"customer_email", func() error { return s.sendCustomerEmail(ctx, c) }},
	})
	s.produceEvent("complaint.created", map[string]interface{}{
		"complaint_id":  c.ComplaintID,
		"priority":      string(c.Priority),
		"vehicle_model": c.VehicleModel,
		"email":         c.Email,
		"status":        c.Status,
	})
}

// SubmitTestDrive stores and forwards a booking, then notifies the sales list.
func (s *ComplaintService) SubmitTestDrive(ctx context.Context, t *model.TestDriveRequest) {
	s.runSteps(t.BookingID, []step{
		{"store", func() error { return s.Store.SaveTestDrive(ctx, t) }},
		{"crm", func() error { return s.CRM.ForwardTestDrive(ctx, t) }},
		{"admin_email", func() error { return s.sendTestDriveEmail(ctx, t) }},
	})
	s.produceEvent("test_drive.created", map[string]interface{}{
		"booking_id":    t.BookingID,
		"vehicle_model": t.VehicleModel,
		"email":         t.Email,
		"status":        t.Status,
	})
}

func (s *ComplaintService) GetByComplaintID(ctx context.Context, complaintID string) (*model.Complaint, error) {
	return s.Store.GetByComplaintID(ctx, complaintID)
}

func (s *ComplaintService) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Complaint, int64, error) {
	return s.Store.List(ctx, filter, limit, offset)
}

func (s *ComplaintService) sendAdminEmail(ctx context.Context, c *model.Complaint) error {
	html, err := notify.RenderAdminEmail(c)
	if err != nil {
		return fmt.Errorf("render admin email: %w", err)
	}
	subject := fmt.Sprintf("[%s] %s complaint: %s", c.ComplaintID, c.Priority, c.ComplaintTitle)
	return s.Mailer.Send(ctx, s.AdminRecipients, subject, html)
}

func (s *ComplaintService) sendCustomerEmail(ctx context.Context, c *model.Complaint) error {
	html, err := notify.RenderCustomerEmail(c)
	if err != nil {
		return fmt.Errorf("render customer email: %w", err)
	}
	subject := fmt.Sprintf("Your complaint has been received (%s)", c.ComplaintID)
	return s.Mailer.Send(ctx, []string{c.Email}, subject, html)
}

func (s *ComplaintService) sendTestDriveEmail(ctx context.Context, t *model.TestDriveRequest) error {
	html, err := notify.RenderTestDriveEmail(t)
	if err != nil {
		return fmt.Errorf("render test drive email: %w", err)
	}
	subject := fmt.Sprintf("[%s] Test drive booking: %s", t.BookingID, t.VehicleModel)
	return s.Mailer.Send(ctx, s.AdminRecipients, subject, html)
}

// produceEvent fires the event from a goroutine with a detached context so it
// survives the request ending, bounded by a timeout.
func (s *ComplaintService) produceEvent(event string, payload map[string]interface{}) {
	if s.Producer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Producer.ProduceComplaintEvent(ctx, event, payload)
	}()
}
