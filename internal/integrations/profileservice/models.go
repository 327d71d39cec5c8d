package profileservice

// UserMeta профиль пользователя из ProfileService
type UserMeta struct {
	UserID        int64    `json:"userId"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Role          string   `json:"role"` // "tutor" | "student"
	Gender        string   `json:"gender"`
	EducationMode string   `json:"educationMode"` // режим преподавания репетитора
	LearningMode  string   `json:"learningMode"`  // режим обучения студента
	ClassLevels   []string `json:"classLevels"`
	Subjects      []string `json:"subjects"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
