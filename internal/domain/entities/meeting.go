package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting is the read model of a recorded meeting. Only the analysis pipeline reads it here.
type Meeting struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID                   `json:"owner_id" gorm:"type:uuid;not null;index:idx_meetings_owner_date,priority:1"`
	Title       string                      `json:"title" gorm:"type:varchar(255);not null"`
	Notes       string                      `json:"notes" gorm:"type:text"`
	Attendees   datatypes.JSONSlice[string] `json:"attendees" gorm:"type:jsonb"`
	MeetingDate time.Time                   `json:"meeting_date" gorm:"not null;index:idx_meetings_owner_date,priority:2,sort:desc"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewMeeting creates a meeting owned by ownerID
func NewMeeting(ownerID uuid.UUID, title, notes string, date time.Time) *Meeting {
	return &Meeting{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Notes:       notes,
		Attendees:   datatypes.JSONSlice[string]{},
		MeetingDate: date,
	}
}

// Validate validates meeting data
func (m *Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidMeetingTitle
	}
	return nil
}
