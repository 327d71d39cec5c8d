package domain

import (
	"time"

	"github.com/m04kA/TMS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled || s == StatusCompleted
}

// Booking represents a claimed slot. The record is immutable once created;
// only confirmed bookings are produced by this service, cancelled/completed
// statuses are set by processes outside of it.
//
// A booking references its slot by the (TutorID, Date, StartTime, Type)
// field match - there is no foreign key into the inventory.
type Booking struct {
	ID        string // app-generated uuid
	StudentID int64
	TutorID   int64
	Date      time.Time // date only, time part is zero
	StartTime types.TimeString
	EndTime   types.TimeString
	Type      SlotType
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// TutorBookingsFilter фильтр для получения бронирований репетитора
type TutorBookingsFilter struct {
	TutorID int64 // Обязательный параметр
	Limit   int   // Максимальное количество записей (0 - дефолтный лимит)
}
