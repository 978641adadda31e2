package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ServiceBooking/pkg/txmanager"
)

const table = "slot_ledger"

// SQLSTATE, которыми Postgres отвечает проигравшему в гонке за ещё не созданную запись слота
const (
	codeSerializationFailure = "40001"
	codeUniqueViolation      = "23505"
)

// reserveConflict переключает только освобождённую запись; занятая остаётся как есть и RETURNING пуст
const reserveConflict = "ON CONFLICT (slot_date, slot_time) DO UPDATE " +
	"SET is_booked = TRUE, booking_id = EXCLUDED.booking_id, updated_at = NOW() " +
	"WHERE slot_ledger.is_booked = FALSE " +
	"RETURNING booking_id"

// PostgresRepository реестр слотов в Postgres (таблица slot_ledger)
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новый экземпляр репозитория реестра слотов
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// IsAvailable возвращает true, если для слота нет занятой записи
func (r *PostgresRepository) IsAvailable(ctx context.Context, date time.Time, label string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{
			"slot_date": date.Format(domain.DateFormat),
			"slot_time": label,
			"is_booked": true,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsAvailable - scan count: %v", ErrScanRow, err)
	}

	return count == 0, nil
}

// BookedTimesForDate возвращает занятые слоты даты в порядке времени суток
func (r *PostgresRepository) BookedTimesForDate(ctx context.Context, date time.Time) ([]string, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_time").
		From(table).
		Where(squirrel.Eq{
			"slot_date": date.Format(domain.DateFormat),
			"is_booked": true,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimesForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimesForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("%w: BookedTimesForDate - scan row: %v", ErrScanRow, err)
		}
		times = append(times, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedTimesForDate - rows error: %v", ErrScanRow, err)
	}

	sortByClock(times)
	return times, nil
}

// Reserve атомарно занимает слот одним upsert-запросом.
// Если слот уже занят, возвращает ErrSlotTaken.
func (r *PostgresRepository) Reserve(ctx context.Context, date time.Time, label, bookingID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := reserveQuery(date, label, bookingID)
	if err != nil {
		return fmt.Errorf("%w: Reserve - build insert query: %v", ErrBuildQuery, err)
	}

	var reserved string
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reserved); err != nil {
		return reserveError(err, date, label)
	}

	return nil
}

// reserveError классифицирует ошибку upsert-запроса.
// Пустой RETURNING и проигрыш конкурентной транзакции означают, что слот занят.
func reserveError(err error, date time.Time, label string) error {
	slot := date.Format(domain.DateFormat) + " " + label

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrSlotTaken, slot)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && (pqErr.Code == codeSerializationFailure || pqErr.Code == codeUniqueViolation) {
		return fmt.Errorf("%w: %s: concurrent reservation (%s)", ErrSlotTaken, slot, pqErr.Code)
	}

	return fmt.Errorf("%w: Reserve - execute upsert: %w", ErrExecQuery, err)
}

// Release освобождает слот, занятый бронированием
func (r *PostgresRepository) Release(ctx context.Context, bookingID string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_booked", false).
		Set("booking_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID, "is_booked": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// Entry возвращает запись реестра для слота
func (r *PostgresRepository) Entry(ctx context.Context, date time.Time, label string) (*domain.SlotEntry, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date", "slot_time", "is_booked", "booking_id").
		From(table).
		Where(squirrel.Eq{
			"slot_date": date.Format(domain.DateFormat),
			"slot_time": label,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Entry - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.SlotEntry
	var bookingID sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.Date,
		&entry.Time,
		&entry.IsBooked,
		&bookingID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s", ErrEntryNotFound, date.Format(domain.DateFormat), label)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Entry - scan entry: %v", ErrScanRow, err)
	}

	if bookingID.Valid {
		entry.BookingID = &bookingID.String
	}

	return &entry, nil
}

func reserveQuery(date time.Time, label, bookingID string) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns("slot_date", "slot_time", "is_booked", "booking_id").
		Values(date.Format(domain.DateFormat), label, true, bookingID).
		Suffix(reserveConflict).
		ToSql()
}
