package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	domainrepo "github.com/johnquangdev/meeting-copilot/internal/domain/repositories"
)

const actionItemBatchSize = 100

// ActionItemRepository persists action items derived from meeting notes
type ActionItemRepository struct {
	db *gorm.DB
}

var _ domainrepo.ActionItemRepository = (*ActionItemRepository)(nil)

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db}
}

// CreateForMeeting inserts one pending item per non-empty title in a single transaction.
// Items are never deduplicated against earlier extractions.
func (r *ActionItemRepository) CreateForMeeting(ctx context.Context, ownerID, meetingID uuid.UUID, titles []string) ([]*entities.ActionItem, error) {
	items := make([]*entities.ActionItem, 0, len(titles))
	for _, title := range titles {
		item := entities.NewActionItem(ownerID, meetingID, title)
		if item.Validate() != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return items, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := meetingOwnedBy(tx, ownerID, meetingID)
		if err != nil {
			return fmt.Errorf("failed to check meeting ownership: %w", err)
		}
		if !owned {
			return entities.ErrMeetingNotFound
		}
		if err := tx.CreateInBatches(items, actionItemBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create action items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByMeeting returns the items of a meeting, oldest first
func (r *ActionItemRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}
