package gridcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/metrics"
)

const (
	keyPrefix     = "spa:grid:"
	versionPrefix = "spa:grid:ver:"

	// versionTTL версия даты живет дольше любой сетки этой даты
	versionTTL = 7 * 24 * time.Hour
)

// Query параметры запроса сетки, из которых строится ключ кеша.
// Version читается через Cache.Version до загрузки данных сетки:
// сетка, построенная до инвалидации, попадает под уже устаревший ключ.
type Query struct {
	Date                time.Time
	Version             int64
	StaffID             *int64
	View                domain.GridView
	StartHour           int
	EndHour             int
	SlotDurationMinutes int
}

// Cache кеш сеток доступности в Redis.
// Ключи версионируются по дате: инвалидация увеличивает версию даты,
// и все сетки этой даты перестают находиться.
type Cache struct {
	rdb     redis.Cmdable
	ttl     time.Duration
	metrics *metrics.Metrics
}

// New создает кеш. metrics может быть nil.
func New(rdb redis.Cmdable, ttl time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, metrics: m}
}

// Version возвращает текущую версию сеток даты (0, если дата не инвалидировалась)
func (c *Cache) Version(ctx context.Context, date time.Time) (int64, error) {
	day := domain.DateKey(date)

	version, err := c.rdb.Get(ctx, versionPrefix+day).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		c.metrics.IncGridCache("error")
		return 0, fmt.Errorf("%w: get version %s: %v", ErrRedis, day, err)
	}
	return version, nil
}

// Get возвращает сетку из кеша по версии q.Version. ok=false при промахе.
func (c *Cache) Get(ctx context.Context, q Query) (*domain.AvailabilityGrid, bool, error) {
	key := c.key(q)

	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.IncGridCache("miss")
		return nil, false, nil
	}
	if err != nil {
		c.metrics.IncGridCache("error")
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrRedis, key, err)
	}

	var grid domain.AvailabilityGrid
	if err := json.Unmarshal(data, &grid); err != nil {
		c.metrics.IncGridCache("error")
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	c.metrics.IncGridCache("hit")
	return &grid, true, nil
}

// Set сохраняет сетку с TTL под версией q.Version
func (c *Cache) Set(ctx context.Context, q Query, grid *domain.AvailabilityGrid) error {
	key := c.key(q)

	data, err := json.Marshal(grid)
	if err != nil {
		return fmt.Errorf("%w: encode grid: %v", ErrRedis, err)
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrRedis, key, err)
	}
	return nil
}

// Invalidate сбрасывает все сетки указанных дат одной транзакцией Redis
func (c *Cache) Invalidate(ctx context.Context, dates ...time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(dates))
	pipe := c.rdb.TxPipeline()
	for _, date := range dates {
		day := domain.DateKey(date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}

		pipe.Incr(ctx, versionPrefix+day)
		pipe.Expire(ctx, versionPrefix+day, versionTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: invalidate %d dates: %v", ErrRedis, len(seen), err)
	}
	return nil
}

func (c *Cache) key(q Query) string {
	staff := "all"
	if q.StaffID != nil {
		staff = strconv.FormatInt(*q.StaffID, 10)
	}

	return fmt.Sprintf("%s%s:v%d:%s:%s:%d-%d:%d",
		keyPrefix, domain.DateKey(q.Date), q.Version, staff, q.View, q.StartHour, q.EndHour, q.SlotDurationMinutes)
}

// Noop кеш-заглушка, когда Redis выключен в конфигурации
type Noop struct{}

func (Noop) Version(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (Noop) Get(context.Context, Query) (*domain.AvailabilityGrid, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, Query, *domain.AvailabilityGrid) error {
	return nil
}

func (Noop) Invalidate(context.Context, ...time.Time) error {
	return nil
}
