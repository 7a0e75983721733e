package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	domainrepo "github.com/johnquangdev/meeting-copilot/internal/domain/repositories"
)

// MeetingRepository reads meetings for trend analysis
type MeetingRepository struct {
	db *gorm.DB
}

var _ domainrepo.MeetingRepository = (*MeetingRepository)(nil)

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a new meeting
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := meeting.Validate(); err != nil {
		return err
	}
	if meeting.ID == uuid.Nil {
		meeting.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// ListRecentByOwner returns at most limit meetings of ownerID, newest meeting date first
func (r *MeetingRepository) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entities.Meeting, error) {
	if limit <= 0 {
		return []*entities.Meeting{}, nil
	}

	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("meeting_date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// meetingOwnedBy reports whether meetingID exists and belongs to ownerID
func meetingOwnedBy(tx *gorm.DB, ownerID, meetingID uuid.UUID) (bool, error) {
	var count int64
	if err := tx.Model(&entities.Meeting{}).
		Where("id = ? AND owner_id = ?", meetingID, ownerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
