package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	domainrepo "github.com/johnquangdev/meeting-copilot/internal/domain/repositories"
)

// AnalysisRunRepository stores the analysis run log
type AnalysisRunRepository struct {
	db *gorm.DB
}

var _ domainrepo.AnalysisRunRepository = (*AnalysisRunRepository)(nil)

// NewAnalysisRunRepository creates a new analysis run repository
func NewAnalysisRunRepository(db *gorm.DB) *AnalysisRunRepository {
	return &AnalysisRunRepository{db: db}
}

// Create inserts a run
func (r *AnalysisRunRepository) Create(ctx context.Context, run *entities.AnalysisRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create analysis run: %w", err)
	}
	return nil
}

// ListByOwner returns the newest runs of ownerID
func (r *AnalysisRunRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entities.AnalysisRun, error) {
	var runs []*entities.AnalysisRun
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}
	return runs, nil
}
