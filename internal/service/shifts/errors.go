package shifts

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

var (
	// ErrShiftRangeNotFound возвращается, когда диапазон смен не найден
	ErrShiftRangeNotFound = fmt.Errorf("shifts: shift range %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shifts: internal error")
)
