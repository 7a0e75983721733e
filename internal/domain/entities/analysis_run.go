package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisRunStatus is the outcome of a pipeline run
type AnalysisRunStatus string

const (
	AnalysisRunSucceeded      AnalysisRunStatus = "succeeded"
	AnalysisRunFailed         AnalysisRunStatus = "failed"
	AnalysisRunShortCircuited AnalysisRunStatus = "short_circuited"
)

// AnalysisRun records one validated pipeline execution. Prompts are never stored.
type AnalysisRun struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID         `json:"owner_id" gorm:"type:uuid;not null;index"`
	Kind         AnalysisKind      `json:"kind" gorm:"type:varchar(32);not null"`
	Status       AnalysisRunStatus `json:"status" gorm:"type:varchar(20);not null"`
	Provider     string            `json:"provider" gorm:"type:varchar(32)"`
	Model        string            `json:"model" gorm:"type:varchar(128)"`
	DurationMS   int64             `json:"duration_ms"`
	ItemCount    int               `json:"item_count"`
	ErrorCode    string            `json:"error_code,omitempty" gorm:"type:varchar(64)"`
	Result       datatypes.JSON    `json:"result,omitempty" gorm:"type:jsonb"`
	RawObjectKey string            `json:"raw_object_key,omitempty" gorm:"type:varchar(255)"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
}

// NewAnalysisRun starts a run record for ownerID
func NewAnalysisRun(ownerID uuid.UUID, kind AnalysisKind) *AnalysisRun {
	return &AnalysisRun{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Kind:    kind,
	}
}
