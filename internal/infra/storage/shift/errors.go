package shift

import "errors"

var (
	// ErrShiftRangeNotFound возвращается, когда диапазон смен не найден
	ErrShiftRangeNotFound = errors.New("shift.repository: shift range not found")

	// ErrInvalidShiftRange возвращается, когда БД отклонила диапазон по CHECK ограничению
	ErrInvalidShiftRange = errors.New("shift.repository: shift range violates constraints")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shift.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shift.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shift.repository: failed to scan row")
)
