package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
)

// MeetingRepository is the read side of meetings used by trend analysis
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// ListRecentByOwner returns at most limit meetings of ownerID, newest first
	ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entities.Meeting, error)
}

// ActionItemRepository persists derived action items
type ActionItemRepository interface {
	// CreateForMeeting inserts one pending item per title, atomically.
	// It returns entities.ErrMeetingNotFound when the meeting does not exist or is not owned by ownerID.
	CreateForMeeting(ctx context.Context, ownerID, meetingID uuid.UUID, titles []string) ([]*entities.ActionItem, error)

	// ListByMeeting returns the items of a meeting in insertion order
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)
}

// AnalysisRunRepository stores the analysis run log
type AnalysisRunRepository interface {
	Create(ctx context.Context, run *entities.AnalysisRun) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entities.AnalysisRun, error)
}
