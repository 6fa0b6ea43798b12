package get_available_slots

import (
	"time"
)

// Request модель запроса на получение доступных слотов.
// Даты передаются строками YYYY-MM-DD и привязываются к календарным дням
// в таймзоне ресурса уже после его загрузки: полночь 2026-06-03 в Токио
// и в Нью-Йорке — разные моменты
type Request struct {
	UserID        int64  // ID пользователя (для логирования, не влияет на результат)
	ResourceID    int64  // ID ресурса
	StartDate     string // Первый день диапазона, YYYY-MM-DD (опционально, по умолчанию — сегодня)
	EndDate       string // Последний день диапазона включительно, YYYY-MM-DD (опционально, по умолчанию — +30 дней)
	DurationHours int    // Желаемая длительность в часах (0 — стандартный шаг слота)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ResourceID int64  // ID ресурса
	Timezone   string // Таймзона ресурса, в которой выражены слоты
	Slots      []Slot // Список доступных слотов по возрастанию времени начала
}

// Slot модель временного слота
type Slot struct {
	Date      time.Time // Дата слота (полночь в таймзоне ресурса)
	StartTime time.Time // Момент начала слота
	EndTime   time.Time // Момент окончания слота
}
