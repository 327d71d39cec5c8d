package save_availability

import "github.com/m04kA/TMS-BookingService/internal/domain"

// Request модель запроса на сохранение недельного шаблона доступности
type Request struct {
	TutorID  int64                      // ID репетитора (из доверенных заголовков)
	Schedule []domain.WeeklyTemplateDay // До 7 дней недельного шаблона
}

// Response модель ответа материализации
type Response struct {
	Saved int // Количество созданных/обновлённых инвентарей (<= 7)
}
