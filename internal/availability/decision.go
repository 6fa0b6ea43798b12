package availability

// Reason машиночитаемый код отказа в допуске бронирования.
// Закрытое множество: API-слой мапит коды на HTTP-статусы без разбора текста
type Reason string

const (
	ReasonInvalidRange         Reason = "invalid_range"
	ReasonOutsideAvailability  Reason = "outside_availability"
	ReasonTooFarInAdvance      Reason = "too_far_in_advance"
	ReasonInThePast            Reason = "in_the_past"
	ReasonSlotUnavailable      Reason = "slot_unavailable"
	ReasonHostDailyCapExceeded Reason = "host_daily_cap_exceeded"
)

// Decision результат проверки допуска
// Отказ — это нормальное возвращаемое значение, а не ошибка
type Decision struct {
	Admitted bool
	Reason   Reason // Пустая строка при Admitted = true
}

func reject(r Reason) Decision {
	return Decision{Admitted: false, Reason: r}
}
