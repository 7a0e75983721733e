package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActionItemStatus is the lifecycle state of an action item
type ActionItemStatus string

const (
	ActionItemStatusPending   ActionItemStatus = "pending"
	ActionItemStatusDone      ActionItemStatus = "done"
	ActionItemStatusCancelled ActionItemStatus = "cancelled"
)

// ActionItem is a task derived from meeting notes
type ActionItem struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	MeetingID uuid.UUID        `json:"meeting_id" gorm:"type:uuid;not null;index"`
	OwnerID   uuid.UUID        `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title     string           `json:"title" gorm:"type:text;not null"`
	Status    ActionItemStatus `json:"status" gorm:"type:varchar(20);default:'pending';not null"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

// NewActionItem creates a pending action item linked to a meeting
func NewActionItem(ownerID, meetingID uuid.UUID, title string) *ActionItem {
	return &ActionItem{
		ID:        uuid.New(),
		MeetingID: meetingID,
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(title),
		Status:    ActionItemStatusPending,
	}
}

// Validate validates action item data
func (a *ActionItem) Validate() error {
	if a.Title == "" {
		return ErrEmptyActionItem
	}
	return nil
}
