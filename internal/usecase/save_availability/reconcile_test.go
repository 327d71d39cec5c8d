package save_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/pkg/types"
)

func TestReconcileSlots(t *testing.T) {
	end := types.TimeString("09:50")

	t.Run("preserves booked flag and end time on matching slot", func(t *testing.T) {
		existing := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
			{Start: "11:00", Type: domain.SlotTypeOnline},
		}
		candidates := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOnline},
			{Start: "11:00", Type: domain.SlotTypeOnline},
		}

		merged := ReconcileSlots(existing, candidates)

		require.Len(t, merged, 2)
		assert.True(t, merged[0].Booked)
		require.NotNil(t, merged[0].End)
		assert.Equal(t, end, *merged[0].End)
		assert.False(t, merged[1].Booked)
		assert.Nil(t, merged[1].End)
	})

	t.Run("drops slots removed from template together with their state", func(t *testing.T) {
		existing := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
		}
		candidates := []domain.Slot{
			{Start: "14:00", Type: domain.SlotTypeOnline},
		}

		merged := ReconcileSlots(existing, candidates)

		require.Len(t, merged, 1)
		assert.Equal(t, types.TimeString("14:00"), merged[0].Start)
		assert.False(t, merged[0].Booked)
	})

	t.Run("same start with different type is a different offering", func(t *testing.T) {
		existing := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
		}
		candidates := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOffline},
		}

		merged := ReconcileSlots(existing, candidates)

		require.Len(t, merged, 1)
		assert.False(t, merged[0].Booked)
	})

	t.Run("does not mutate arguments", func(t *testing.T) {
		existing := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
		}
		candidates := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOnline},
		}

		_ = ReconcileSlots(existing, candidates)

		assert.False(t, candidates[0].Booked)
		assert.True(t, existing[0].Booked)
	})

	t.Run("empty candidates produce empty inventory", func(t *testing.T) {
		existing := []domain.Slot{
			{Start: "09:00", Type: domain.SlotTypeOnline, Booked: true, End: &end},
		}

		merged := ReconcileSlots(existing, []domain.Slot{})

		assert.Empty(t, merged)
	})
}

func TestBuildCandidateSlots(t *testing.T) {
	t.Run("close mode discards template slots", func(t *testing.T) {
		day := &domain.WeeklyTemplateDay{
			DayOfWeek: "monday",
			Mode:      domain.ModeClose,
			Slots: []domain.TemplateSlot{
				{Start: "09:00", Type: domain.SlotTypeOnline},
			},
		}

		assert.Empty(t, buildCandidateSlots(day))
	})

	t.Run("open mode carries slots over unbooked", func(t *testing.T) {
		day := &domain.WeeklyTemplateDay{
			DayOfWeek: "monday",
			Mode:      domain.ModeHybrid,
			Slots: []domain.TemplateSlot{
				{Start: "09:00", Type: domain.SlotTypeOnline},
				{Start: "15:00", Type: domain.SlotTypeOffline},
			},
		}

		slots := buildCandidateSlots(day)

		require.Len(t, slots, 2)
		assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
		assert.Equal(t, domain.SlotTypeOnline, slots[0].Type)
		assert.False(t, slots[0].Booked)
		assert.Equal(t, domain.SlotTypeOffline, slots[1].Type)
	})
}
