package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/integrations/profileservice"
	"github.com/m04kA/TMS-BookingService/internal/service/availability/models"
	"github.com/m04kA/TMS-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeInventoryRepo struct {
	inventories []*domain.DayInventory
	err         error
	gotLimit    int
}

func (f *fakeInventoryRepo) ListByTutor(ctx context.Context, tutorID int64, limit int) ([]*domain.DayInventory, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.inventories, nil
}

type fakeProfileClient struct {
	meta *profileservice.UserMeta
	err  error
}

func (f *fakeProfileClient) GetUserMeta(ctx context.Context, userID int64) (*profileservice.UserMeta, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.meta, nil
}

func testInventories() []*domain.DayInventory {
	end := types.TimeString("09:50")
	return []*domain.DayInventory{
		{
			ID:        1,
			TutorID:   7,
			Date:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			DayOfWeek: "monday",
			Mode:      domain.ModeHybrid,
			Slots: []domain.Slot{
				{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
				{Start: "15:00", Type: domain.SlotTypeOffline},
			},
		},
		{
			ID:        2,
			TutorID:   7,
			Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			DayOfWeek: "tuesday",
			Mode:      domain.ModeClose,
			Slots:     []domain.Slot{},
		},
	}
}

func TestService_GetSchedule(t *testing.T) {
	repo := &fakeInventoryRepo{inventories: testInventories()}
	profile := &fakeProfileClient{meta: &profileservice.UserMeta{
		UserID:        7,
		Name:          "Tutor One",
		EducationMode: "online",
	}}

	svc := NewService(repo, profile, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{TutorID: 7})
	require.NoError(t, err)

	assert.Equal(t, "online", resp.EducationMode)
	assert.Equal(t, domain.ScheduleDaysLimit, repo.gotLimit)
	require.Len(t, resp.Schedule, 2)

	monday := resp.Schedule[0]
	assert.Equal(t, "2026-08-31", monday.Date)
	assert.Equal(t, "monday", monday.DayOfWeek)
	assert.Equal(t, "hybrid", monday.Mode)
	require.Len(t, monday.Slots, 2)
	assert.True(t, monday.Slots[0].Booked)
	require.NotNil(t, monday.Slots[0].End)
	assert.Equal(t, "09:50", *monday.Slots[0].End)
	assert.Nil(t, monday.Slots[1].End)

	closed := resp.Schedule[1]
	assert.Equal(t, "close", closed.Mode)
	assert.Empty(t, closed.Slots)
}

func TestService_GetSchedule_ProfileFailureFallsBackToHybrid(t *testing.T) {
	repo := &fakeInventoryRepo{inventories: testInventories()}
	profile := &fakeProfileClient{err: profileservice.ErrInternal}

	svc := NewService(repo, profile, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{TutorID: 7})
	require.NoError(t, err)

	assert.Equal(t, "hybrid", resp.EducationMode)
	assert.Len(t, resp.Schedule, 2)
}

func TestService_GetSchedule_EmptyEducationModeFallsBackToHybrid(t *testing.T) {
	repo := &fakeInventoryRepo{}
	profile := &fakeProfileClient{meta: &profileservice.UserMeta{UserID: 7}}

	svc := NewService(repo, profile, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{TutorID: 7})
	require.NoError(t, err)

	assert.Equal(t, "hybrid", resp.EducationMode)
}

func TestService_GetSchedule_InvalidTutorID(t *testing.T) {
	svc := NewService(&fakeInventoryRepo{}, &fakeProfileClient{}, nopLogger{})

	_, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{TutorID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetSchedule_RepositoryError(t *testing.T) {
	repo := &fakeInventoryRepo{err: errors.New("connection refused")}
	svc := NewService(repo, &fakeProfileClient{meta: &profileservice.UserMeta{}}, nopLogger{})

	_, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{TutorID: 7})
	assert.ErrorIs(t, err, ErrInternal)
}
