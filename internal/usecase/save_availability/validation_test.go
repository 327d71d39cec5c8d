package save_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/pkg/types"
)

func validSchedule() []domain.WeeklyTemplateDay {
	return []domain.WeeklyTemplateDay{
		{
			DayOfWeek: "monday",
			Mode:      domain.ModeHybrid,
			Slots: []domain.TemplateSlot{
				{Start: "09:00", Type: domain.SlotTypeOnline},
				{Start: "15:00", Type: domain.SlotTypeOffline},
			},
		},
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(req *Request) {},
		},
		{
			name:    "non-positive tutor id",
			mutate:  func(req *Request) { req.TutorID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty schedule",
			mutate:  func(req *Request) { req.Schedule = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name: "more than seven days",
			mutate: func(req *Request) {
				days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "monday"}
				req.Schedule = nil
				for _, d := range days {
					req.Schedule = append(req.Schedule, domain.WeeklyTemplateDay{DayOfWeek: d, Mode: domain.ModeClose})
				}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown weekday",
			mutate: func(req *Request) {
				req.Schedule[0].DayOfWeek = "caturday"
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "duplicate weekday",
			mutate: func(req *Request) {
				req.Schedule = append(req.Schedule, req.Schedule[0])
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown day mode",
			mutate: func(req *Request) {
				req.Schedule[0].Mode = "siesta"
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "capacity exceeded in half mode",
			mutate: func(req *Request) {
				req.Schedule[0].Mode = domain.ModeHalf
				req.Schedule[0].Slots = []domain.TemplateSlot{
					{Start: "09:00", Type: domain.SlotTypeOnline},
					{Start: "11:00", Type: domain.SlotTypeOnline},
					{Start: "13:00", Type: domain.SlotTypeOnline},
				}
			},
			wantErr: ErrCapacityExceeded,
		},
		{
			name: "capacity exceeded in full mode",
			mutate: func(req *Request) {
				req.Schedule[0].Mode = domain.ModeOnline
				req.Schedule[0].Slots = nil
				starts := []types.TimeString{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00"}
				for _, s := range starts {
					req.Schedule[0].Slots = append(req.Schedule[0].Slots,
						domain.TemplateSlot{Start: s, Type: domain.SlotTypeOnline})
				}
			},
			wantErr: ErrCapacityExceeded,
		},
		{
			name: "type not allowed in online mode",
			mutate: func(req *Request) {
				req.Schedule[0].Mode = domain.ModeOnline
				req.Schedule[0].Slots = []domain.TemplateSlot{
					{Start: "09:00", Type: domain.SlotTypeOffline},
				}
			},
			wantErr: ErrTypeNotAllowed,
		},
		{
			name: "type not allowed in offline mode",
			mutate: func(req *Request) {
				req.Schedule[0].Mode = domain.ModeOffline
				req.Schedule[0].Slots = []domain.TemplateSlot{
					{Start: "09:00", Type: domain.SlotTypeOnline},
				}
			},
			wantErr: ErrTypeNotAllowed,
		},
		{
			name: "duplicate slot in day",
			mutate: func(req *Request) {
				req.Schedule[0].Slots = []domain.TemplateSlot{
					{Start: "09:00", Type: domain.SlotTypeOnline},
					{Start: "09:00", Type: domain.SlotTypeOnline},
				}
			},
			wantErr: ErrDuplicateSlot,
		},
		{
			name: "invalid slot start time",
			mutate: func(req *Request) {
				req.Schedule[0].Slots = []domain.TemplateSlot{
					{Start: "25:00", Type: domain.SlotTypeOnline},
				}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown slot type",
			mutate: func(req *Request) {
				req.Schedule[0].Slots = []domain.TemplateSlot{
					{Start: "09:00", Type: "hologram"},
				}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "close mode ignores slot policy",
			mutate: func(req *Request) {
				req.Schedule[0].Mode = domain.ModeClose
				req.Schedule[0].Slots = []domain.TemplateSlot{
					{Start: "09:00", Type: domain.SlotTypeOnline},
					{Start: "10:00", Type: domain.SlotTypeOnline},
					{Start: "11:00", Type: domain.SlotTypeOnline},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{TutorID: 1, Schedule: validSchedule()}
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
