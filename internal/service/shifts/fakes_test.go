package shifts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/shift"
)

type fakeRepo struct {
	items  map[int64]*domain.ShiftRange
	nextID int64
	err    error
}

func newFakeRepo(items ...*domain.ShiftRange) *fakeRepo {
	r := &fakeRepo{items: make(map[int64]*domain.ShiftRange), nextID: 100}
	for _, sr := range items {
		r.items[sr.ID] = sr
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, sr *domain.ShiftRange) (*domain.ShiftRange, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	cp := *sr
	cp.ID = r.nextID
	cp.CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r.items[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.ShiftRange, error) {
	sr, ok := r.items[id]
	if !ok {
		return nil, shiftRepo.ErrShiftRangeNotFound
	}
	cp := *sr
	return &cp, nil
}

func (r *fakeRepo) ListByStaff(_ context.Context, staffID int64, includeInactive bool) ([]*domain.ShiftRange, error) {
	var out []*domain.ShiftRange
	for _, sr := range r.items {
		if sr.StaffID == staffID && (includeInactive || sr.IsActive) {
			out = append(out, sr)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListCovering(_ context.Context, staffIDs []int64, date time.Time) ([]*domain.ShiftRange, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.ShiftRange
	for _, sr := range r.items {
		for _, id := range staffIDs {
			if sr.StaffID == id && sr.Covers(date) {
				out = append(out, sr)
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, sr *domain.ShiftRange) error {
	if r.err != nil {
		return r.err
	}
	cp := *sr
	r.items[sr.ID] = &cp
	return nil
}

func (r *fakeRepo) Deactivate(_ context.Context, id int64) error {
	sr, ok := r.items[id]
	if !ok {
		return shiftRepo.ErrShiftRangeNotFound
	}
	sr.IsActive = false
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCache struct {
	dates []string
}

func (c *fakeCache) Invalidate(_ context.Context, dates ...time.Time) error {
	for _, d := range dates {
		c.dates = append(c.dates, domain.DateKey(d))
	}
	return nil
}
