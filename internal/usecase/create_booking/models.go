package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64     // ID пользователя-владельца бронирования
	ResourceID int64     // ID ресурса
	StartTime  time.Time // Момент начала (UTC)
	EndTime    time.Time // Момент окончания (UTC)
	Notes      *string   // Заметки к бронированию (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	ResourceID   int64
	UserID       int64
	HostIdentity string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
