package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Meeting{},
		&entities.ActionItem{},
		&entities.AnalysisRun{},
	))
	return db
}

func seedMeeting(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title string, date time.Time) *entities.Meeting {
	t.Helper()
	m := entities.NewMeeting(ownerID, title, "notes for "+title, date)
	require.NoError(t, NewMeetingRepository(db).Create(context.Background(), m))
	return m
}

func TestUserRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entities.NewUser("ana@example.com", "Ana")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", found.Email)
	assert.True(t, found.IsActive)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestMeetingRepository_ListRecentByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	seedMeeting(t, db, owner, "oldest", base)
	seedMeeting(t, db, owner, "newest", base.Add(48*time.Hour))
	seedMeeting(t, db, owner, "middle", base.Add(24*time.Hour))
	seedMeeting(t, db, other, "foreign", base.Add(72*time.Hour))

	meetings, err := repo.ListRecentByOwner(ctx, owner, 2)
	require.NoError(t, err)
	require.Len(t, meetings, 2)
	assert.Equal(t, "newest", meetings[0].Title)
	assert.Equal(t, "middle", meetings[1].Title)

	none, err := repo.ListRecentByOwner(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMeetingRepository_CreateRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	m := entities.NewMeeting(uuid.New(), " ", "", time.Now())
	assert.ErrorIs(t, NewMeetingRepository(db).Create(context.Background(), m), entities.ErrInvalidMeetingTitle)
}

func TestActionItemRepository_CreateForMeeting(t *testing.T) {
	db := newTestDB(t)
	repo := NewActionItemRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	meeting := seedMeeting(t, db, owner, "planning", time.Now())

	items, err := repo.CreateForMeeting(ctx, owner, meeting.ID, []string{"Draft proposal", "  ", "Schedule call"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	stored, err := repo.ListByMeeting(ctx, meeting.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	titles := make([]string, 0, len(stored))
	for _, item := range stored {
		assert.Equal(t, entities.ActionItemStatusPending, item.Status)
		assert.Equal(t, meeting.ID, item.MeetingID)
		assert.Equal(t, owner, item.OwnerID)
		titles = append(titles, item.Title)
	}
	assert.ElementsMatch(t, []string{"Draft proposal", "Schedule call"}, titles)
}

func TestActionItemRepository_RepeatedExtractionInsertsAgain(t *testing.T) {
	db := newTestDB(t)
	repo := NewActionItemRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	meeting := seedMeeting(t, db, owner, "planning", time.Now())

	_, err := repo.CreateForMeeting(ctx, owner, meeting.ID, []string{"Draft proposal"})
	require.NoError(t, err)
	_, err = repo.CreateForMeeting(ctx, owner, meeting.ID, []string{"Draft proposal"})
	require.NoError(t, err)

	stored, err := repo.ListByMeeting(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestActionItemRepository_RejectsForeignMeeting(t *testing.T) {
	db := newTestDB(t)
	repo := NewActionItemRepository(db)
	ctx := context.Background()

	meeting := seedMeeting(t, db, uuid.New(), "someone else's", time.Now())

	_, err := repo.CreateForMeeting(ctx, uuid.New(), meeting.ID, []string{"Sneak in"})
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)

	_, err = repo.CreateForMeeting(ctx, uuid.New(), uuid.New(), []string{"Nowhere"})
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)

	stored, err := repo.ListByMeeting(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestActionItemRepository_NoTitlesIsNoop(t *testing.T) {
	db := newTestDB(t)
	items, err := NewActionItemRepository(db).CreateForMeeting(context.Background(), uuid.New(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAnalysisRunRepository_ListByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalysisRunRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, kind := range []entities.AnalysisKind{entities.KindActionItems, entities.KindTrends, entities.KindPitchAnalysis} {
		run := entities.NewAnalysisRun(owner, kind)
		run.Status = entities.AnalysisRunSucceeded
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		run.Result = []byte(`{"ok":true}`)
		require.NoError(t, repo.Create(ctx, run))
	}
	require.NoError(t, repo.Create(ctx, &entities.AnalysisRun{OwnerID: uuid.New(), Kind: entities.KindTrends, Status: entities.AnalysisRunFailed}))

	runs, err := repo.ListByOwner(ctx, owner, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, entities.KindPitchAnalysis, runs[0].Kind)
	assert.Equal(t, entities.KindTrends, runs[1].Kind)
	assert.JSONEq(t, `{"ok":true}`, string(runs[0].Result))
}
