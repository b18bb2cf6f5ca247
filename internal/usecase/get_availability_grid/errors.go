package get_availability_grid

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability_grid: internal error")
)
