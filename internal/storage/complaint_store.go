package storage

import (
	"context"
	"errors"

	"github.com/chrmotors/complaint-service/internal/errs"
	"github.com/chrmotors/complaint-service/internal/model"
	"gorm.io/gorm"
)

// ComplaintStore persists complaints and test-drive bookings in Postgres.
type ComplaintStore struct {
	db *gorm.DB
}

func NewComplaintStore(db *gorm.DB) *ComplaintStore {
	return &ComplaintStore{db: db}
}

func (s *ComplaintStore) SaveComplaint(ctx context.Context, c *model.Complaint) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *ComplaintStore) SaveTestDrive(ctx context.Context, t *model.TestDriveRequest) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *ComplaintStore) GetByComplaintID(ctx context.Context, complaintID string) (*model.Complaint, error) {
	var c model.Complaint
	if err := s.db.WithContext(ctx).Where("complaint_id = ?", complaintID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrComplaintNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns complaints matching the filter, newest first, plus the total
// count before pagination. Filter keys are "column = ?" clauses.
func (s *ComplaintStore) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Complaint, int64, error) {
	var items []model.Complaint
	var total int64
	tx := s.db.WithContext(ctx).Model(&model.Complaint{})
	for k, v := range filter {
		tx = tx.Where(k, v)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if err := tx.Order("submission_date DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
