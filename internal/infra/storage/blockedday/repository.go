package blockedday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/dbmetrics"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = "23505"

// Repository репозиторий для работы с заблокированными днями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных дней
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create блокирует дату. Уникальность даты обеспечивает constraint в БД:
// повторная блокировка возвращает ErrAlreadyBlocked.
func (r *Repository) Create(ctx context.Context, day *domain.BlockedDay) (*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_days").
		Columns("blocked_date", "reason").
		Values(day.Date, day.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time

	return day, nil
}

// List возвращает все заблокированные дни, отсортированные по дате
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "blocked_date", "reason", "created_at").
		From("blocked_days").
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.BlockedDay, 0)
	for rows.Next() {
		var day domain.BlockedDay
		var createdAt sql.NullTime
		if err := rows.Scan(&day.ID, &day.Date, &day.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan blocked day: %v", ErrScanRow, err)
		}
		day.CreatedAt = createdAt.Time
		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// DeleteByDate снимает блокировку с даты
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_days").
		Where(squirrel.Eq{"blocked_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDayNotFound
	}

	return nil
}
