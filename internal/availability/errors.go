package availability

import "errors"

var (
	// ErrInvalidQueryRange возвращается, когда начало диапазона позже конца.
	// Это ошибка вызывающего кода, а не доменный отказ
	ErrInvalidQueryRange = errors.New("availability: range start must not be after range end")
)
