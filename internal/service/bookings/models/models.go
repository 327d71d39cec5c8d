package models

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/integrations/profileservice"
)

// UnknownStudentName подставляется, когда профиль студента недоступен
const UnknownStudentName = "Unknown Student"

// GetTutorBookingsRequest запрос на получение бронирований репетитора
type GetTutorBookingsRequest struct {
	TutorID int64
	Limit   int // 0 - дефолтный лимит
}

// StudentInfo проекция профиля студента для отображения в списке броней
type StudentInfo struct {
	Name        string   `json:"name"`
	ClassLevels []string `json:"classLevels"`
	Subjects    []string `json:"subjects"`
	Gender      string   `json:"gender,omitempty"`
	Email       string   `json:"email,omitempty"`
}

// BookingResponse бронирование, обогащённое данными студента
type BookingResponse struct {
	ID        string      `json:"id"`
	StudentID int64       `json:"studentId"`
	TutorID   int64       `json:"tutorId"`
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Type      string      `json:"type"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"createdAt"`
	Student   StudentInfo `json:"student"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменное бронирование в response модель
func FromDomainBooking(b *domain.Booking, student StudentInfo) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		StudentID: b.StudentID,
		TutorID:   b.TutorID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Type:      string(b.Type),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		Student:   student,
	}
}

// StudentFromUserMeta строит проекцию студента из профиля
func StudentFromUserMeta(meta *profileservice.UserMeta) StudentInfo {
	info := StudentInfo{
		Name:        meta.Name,
		ClassLevels: meta.ClassLevels,
		Subjects:    meta.Subjects,
		Gender:      meta.Gender,
		Email:       meta.Email,
	}
	if info.Name == "" {
		info.Name = UnknownStudentName
	}
	if info.ClassLevels == nil {
		info.ClassLevels = []string{}
	}
	if info.Subjects == nil {
		info.Subjects = []string{}
	}
	return info
}

// UnknownStudent возвращает проекцию-заглушку для недоступного профиля
func UnknownStudent() StudentInfo {
	return StudentInfo{
		Name:        UnknownStudentName,
		ClassLevels: []string{},
		Subjects:    []string{},
	}
}
