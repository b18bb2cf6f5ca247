package gridcache

import "errors"

var (
	// ErrRedis возвращается при ошибках обращения к Redis
	ErrRedis = errors.New("gridcache: redis error")

	// ErrDecode возвращается, если закешированное значение не удалось разобрать
	ErrDecode = errors.New("gridcache: failed to decode cached grid")
)
