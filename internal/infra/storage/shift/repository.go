package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SpaBookingService/pkg/psqlbuilder"
)

// codeCheckViolation нарушение CHECK ограничения
const codeCheckViolation = "23514"

var shiftRangeColumns = []string{
	"id",
	"staff_id",
	"from_date",
	"to_date",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
	"shift_start",
	"shift_end",
	"break_start",
	"break_end",
	"priority",
	"is_active",
	"label",
	"created_at",
	"updated_at",
}

// Repository репозиторий диапазонов смен мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает диапазон смен
func (r *Repository) Create(ctx context.Context, sr *domain.ShiftRange) (*domain.ShiftRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shift_ranges").
		Columns(
			"staff_id",
			"from_date",
			"to_date",
			"monday",
			"tuesday",
			"wednesday",
			"thursday",
			"friday",
			"saturday",
			"sunday",
			"shift_start",
			"shift_end",
			"break_start",
			"break_end",
			"priority",
			"is_active",
			"label",
		).
		Values(
			sr.StaffID,
			sr.FromDate.Format(domain.DateFormat),
			sr.ToDate.Format(domain.DateFormat),
			sr.Monday,
			sr.Tuesday,
			sr.Wednesday,
			sr.Thursday,
			sr.Friday,
			sr.Saturday,
			sr.Sunday,
			sr.ShiftStart,
			sr.ShiftEnd,
			sr.BreakStart,
			sr.BreakEnd,
			sr.Priority,
			sr.IsActive,
			sr.Label,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sr.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShiftRange, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	sr.CreatedAt = createdAt.Time
	sr.UpdatedAt = updatedAt.Time

	return sr, nil
}

// GetByID получает диапазон смен по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ShiftRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shiftRangeColumns...).
		From("shift_ranges").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sr, err := scanShiftRange(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftRangeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift range: %v", ErrScanRow, err)
	}

	return sr, nil
}

// ListByStaff получает диапазоны смен мастера, новые первыми
func (r *Repository) ListByStaff(ctx context.Context, staffID int64, includeInactive bool) ([]*domain.ShiftRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shiftRangeColumns...).
		From("shift_ranges").
		Where(squirrel.Eq{"staff_id": staffID})

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.
		OrderBy("from_date DESC", "priority DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShiftRanges(rows)
}

// ListCovering получает активные диапазоны, включающие дату.
// staffIDs ограничивает выборку мастерами; пустой список - все мастера.
// Флаги дней недели проверяет Shift Resolver.
func (r *Repository) ListCovering(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.ShiftRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	day := date.Format(domain.DateFormat)

	selectBuilder := psqlbuilder.Select(shiftRangeColumns...).
		From("shift_ranges").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"from_date": day}).
		Where(squirrel.GtOrEq{"to_date": day})

	if len(staffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": staffIDs})
	}

	query, args, err := selectBuilder.
		OrderBy("staff_id ASC", "priority DESC", "created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCovering - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCovering - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShiftRanges(rows)
}

// Update сохраняет все изменяемые поля диапазона
func (r *Repository) Update(ctx context.Context, sr *domain.ShiftRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shift_ranges").
		Set("from_date", sr.FromDate.Format(domain.DateFormat)).
		Set("to_date", sr.ToDate.Format(domain.DateFormat)).
		Set("monday", sr.Monday).
		Set("tuesday", sr.Tuesday).
		Set("wednesday", sr.Wednesday).
		Set("thursday", sr.Thursday).
		Set("friday", sr.Friday).
		Set("saturday", sr.Saturday).
		Set("sunday", sr.Sunday).
		Set("shift_start", sr.ShiftStart).
		Set("shift_end", sr.ShiftEnd).
		Set("break_start", sr.BreakStart).
		Set("break_end", sr.BreakEnd).
		Set("priority", sr.Priority).
		Set("is_active", sr.IsActive).
		Set("label", sr.Label).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sr.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", ErrInvalidShiftRange, err)
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Deactivate выключает диапазон смен (мягкое удаление)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shift_ranges").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %w", ErrExecQuery, err)
	}

	return checkAffected(result, "Deactivate")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrShiftRangeNotFound
	}
	return nil
}

func isCheckViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeCheckViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShiftRange(row rowScanner) (*domain.ShiftRange, error) {
	var sr domain.ShiftRange
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sr.ID,
		&sr.StaffID,
		&sr.FromDate,
		&sr.ToDate,
		&sr.Monday,
		&sr.Tuesday,
		&sr.Wednesday,
		&sr.Thursday,
		&sr.Friday,
		&sr.Saturday,
		&sr.Sunday,
		&sr.ShiftStart,
		&sr.ShiftEnd,
		&sr.BreakStart,
		&sr.BreakEnd,
		&sr.Priority,
		&sr.IsActive,
		&sr.Label,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sr.CreatedAt = createdAt.Time
	sr.UpdatedAt = updatedAt.Time

	return &sr, nil
}

// scanShiftRanges сканирует результаты запроса в слайс диапазонов
func scanShiftRanges(rows *sql.Rows) ([]*domain.ShiftRange, error) {
	ranges := make([]*domain.ShiftRange, 0)

	for rows.Next() {
		sr, err := scanShiftRange(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanShiftRanges - scan row: %v", ErrScanRow, err)
		}
		ranges = append(ranges, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanShiftRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}
