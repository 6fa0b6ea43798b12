package domain

// Default configuration values
const (
	DefaultSlotMinutes    = 30
	DefaultQueryRangeDays = 30 // Диапазон слотов по умолчанию, если не задан в запросе
	DefaultTimezone       = "UTC"
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses список статусов, которые блокируют время ресурса.
// Единая политика для генерации слотов и проверки допуска: pending считается
// занимающим, иначе между допуском и подтверждением два pending могли бы
// делить один слот
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, исключаемых из выдачи по умолчанию
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
