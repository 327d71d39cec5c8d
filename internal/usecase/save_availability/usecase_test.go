package save_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	inventoryRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/availability"
	"github.com/m04kA/TMS-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// passthroughTxManager выполняет fn без реальной транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// fakeInventoryRepo in-memory репозиторий инвентарей с ключом по дате
type fakeInventoryRepo struct {
	inventories map[string]*domain.DayInventory
	nextID      int64
	upserts     int
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{inventories: make(map[string]*domain.DayInventory)}
}

func (f *fakeInventoryRepo) GetByTutorAndDate(ctx context.Context, tutorID int64, date time.Time) (*domain.DayInventory, error) {
	inv, ok := f.inventories[date.Format(domain.DateFormat)]
	if !ok || inv.TutorID != tutorID {
		return nil, inventoryRepo.ErrInventoryNotFound
	}
	return inv, nil
}

func (f *fakeInventoryRepo) Upsert(ctx context.Context, inv *domain.DayInventory) (*domain.DayInventory, error) {
	f.upserts++
	key := inv.Date.Format(domain.DateFormat)
	if existing, ok := f.inventories[key]; ok {
		inv.ID = existing.ID
	} else {
		f.nextID++
		inv.ID = f.nextID
	}
	f.inventories[key] = inv
	return inv, nil
}

func (f *fakeInventoryRepo) seed(tutorID int64, date time.Time, mode domain.DayMode, slots []domain.Slot) {
	f.nextID++
	f.inventories[date.Format(domain.DateFormat)] = &domain.DayInventory{
		ID:        f.nextID,
		TutorID:   tutorID,
		Date:      date,
		DayOfWeek: weekdayName(date),
		Mode:      mode,
		Slots:     slots,
	}
}

// monday сделан опорной датой, чтобы соответствие дат дням недели было очевидным
var testNow = time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC) // monday

func newTestUseCase(repo *fakeInventoryRepo) (*UseCase, *passthroughTxManager) {
	txMgr := &passthroughTxManager{}
	uc := NewUseCase(repo, txMgr, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, txMgr
}

func fullWeekSchedule() []domain.WeeklyTemplateDay {
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	schedule := make([]domain.WeeklyTemplateDay, 0, len(days))
	for _, d := range days {
		schedule = append(schedule, domain.WeeklyTemplateDay{
			DayOfWeek: d,
			Mode:      domain.ModeHybrid,
			Slots: []domain.TemplateSlot{
				{Start: "09:00", Type: domain.SlotTypeOnline},
				{Start: "15:00", Type: domain.SlotTypeOffline},
			},
		})
	}
	return schedule
}

func TestUseCase_Execute_MaterializesFullHorizon(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc, txMgr := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{TutorID: 7, Schedule: fullWeekSchedule()})
	require.NoError(t, err)

	assert.Equal(t, domain.MaterializationHorizonDays, resp.Saved)
	assert.Len(t, repo.inventories, 7)
	// Каждая дата материализуется в собственной транзакции
	assert.Equal(t, 7, txMgr.calls)

	// Дата сопоставляется дню недели шаблона
	monday := repo.inventories["2026-08-31"]
	require.NotNil(t, monday)
	assert.Equal(t, "monday", monday.DayOfWeek)
	assert.Equal(t, domain.ModeHybrid, monday.Mode)
	require.Len(t, monday.Slots, 2)
	assert.False(t, monday.Slots[0].Booked)

	sunday := repo.inventories["2026-09-06"]
	require.NotNil(t, sunday)
	assert.Equal(t, "sunday", sunday.DayOfWeek)
}

func TestUseCase_Execute_SkipsDatesWithoutTemplateDay(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc, _ := newTestUseCase(repo)

	schedule := []domain.WeeklyTemplateDay{
		{
			DayOfWeek: "monday",
			Mode:      domain.ModeOnline,
			Slots:     []domain.TemplateSlot{{Start: "09:00", Type: domain.SlotTypeOnline}},
		},
		{
			DayOfWeek: "wednesday",
			Mode:      domain.ModeClose,
		},
	}

	resp, err := uc.Execute(context.Background(), &Request{TutorID: 7, Schedule: schedule})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Saved)
	assert.Len(t, repo.inventories, 2)
	assert.Contains(t, repo.inventories, "2026-08-31")
	assert.Contains(t, repo.inventories, "2026-09-02")
	assert.NotContains(t, repo.inventories, "2026-09-01")
}

func TestUseCase_Execute_PreservesBookedSlots(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc, _ := newTestUseCase(repo)

	end := types.TimeString("09:50")
	repo.seed(7, testNow, domain.ModeHybrid, []domain.Slot{
		{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
		{Start: "15:00", Type: domain.SlotTypeOffline},
	})

	schedule := []domain.WeeklyTemplateDay{
		{
			DayOfWeek: "monday",
			Mode:      domain.ModeHybrid,
			Slots: []domain.TemplateSlot{
				{Start: "09:00", Type: domain.SlotTypeOnline},
				{Start: "11:00", Type: domain.SlotTypeOnline},
			},
		},
	}

	_, err := uc.Execute(context.Background(), &Request{TutorID: 7, Schedule: schedule})
	require.NoError(t, err)

	inv := repo.inventories["2026-08-31"]
	require.NotNil(t, inv)
	require.Len(t, inv.Slots, 2)

	// Совпавший слот сохранил бронь, убранный из шаблона 15:00 исчез
	assert.Equal(t, types.TimeString("09:00"), inv.Slots[0].Start)
	assert.True(t, inv.Slots[0].Booked)
	require.NotNil(t, inv.Slots[0].End)
	assert.Equal(t, end, *inv.Slots[0].End)

	assert.Equal(t, types.TimeString("11:00"), inv.Slots[1].Start)
	assert.False(t, inv.Slots[1].Booked)
}

func TestUseCase_Execute_CloseModeClearsSlots(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc, _ := newTestUseCase(repo)

	end := types.TimeString("09:50")
	repo.seed(7, testNow, domain.ModeOnline, []domain.Slot{
		{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
	})

	schedule := []domain.WeeklyTemplateDay{
		{
			DayOfWeek: "monday",
			Mode:      domain.ModeClose,
			Slots:     []domain.TemplateSlot{{Start: "09:00", Type: domain.SlotTypeOnline}},
		},
	}

	resp, err := uc.Execute(context.Background(), &Request{TutorID: 7, Schedule: schedule})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Saved)

	inv := repo.inventories["2026-08-31"]
	require.NotNil(t, inv)
	assert.Equal(t, domain.ModeClose, inv.Mode)
	assert.Empty(t, inv.Slots)
}

func TestUseCase_Execute_RejectsInvalidScheduleBeforeWriting(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc, _ := newTestUseCase(repo)

	schedule := []domain.WeeklyTemplateDay{
		{
			DayOfWeek: "monday",
			Mode:      domain.ModeHalf,
			Slots: []domain.TemplateSlot{
				{Start: "09:00", Type: domain.SlotTypeOnline},
				{Start: "11:00", Type: domain.SlotTypeOnline},
				{Start: "13:00", Type: domain.SlotTypeOnline},
			},
		},
	}

	_, err := uc.Execute(context.Background(), &Request{TutorID: 7, Schedule: schedule})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Zero(t, repo.upserts)
}

func TestUseCase_Execute_IsIdempotent(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc, _ := newTestUseCase(repo)

	req := &Request{TutorID: 7, Schedule: fullWeekSchedule()}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Saved, second.Saved)
	assert.Len(t, repo.inventories, 7)
	for _, inv := range repo.inventories {
		require.Len(t, inv.Slots, 2)
		assert.False(t, inv.Slots[0].Booked)
	}
}
