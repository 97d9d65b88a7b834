package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// ListByDate returns every booking on the given date ordered by start
	// time, cancelled ones included; callers filter by status as needed.
	ListByDate(ctx context.Context, date string) ([]*Booking, error)
	// ListFromDate returns bookings on or after the given date ordered by
	// (date, start_time), for the upcoming list.
	ListFromDate(ctx context.Context, date string) ([]*Booking, error)
	// ListAll returns every booking ordered by (date, start_time).
	ListAll(ctx context.Context) ([]*Booking, error)
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id string) error

	// HasOverlap checks if any non-cancelled booking on the date overlaps
	// [start,end). excludeBookingID is used during updates to ignore the
	// booking itself.
	HasOverlap(ctx context.Context, date, start, end, excludeBookingID string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// bookingColumns are the columns scanned into a Booking. Dates and times are
// rendered server-side so the Go side only ever sees the lexically ordered
// "YYYY-MM-DD" / "HH:MM" strings of the data contract.
var bookingColumns = []string{
	"id",
	"user_id",
	"title",
	"organizer",
	"to_char(booked_date, 'YYYY-MM-DD')",
	"to_char(start_time, 'HH24:MI')",
	"to_char(end_time, 'HH24:MI')",
	"participants",
	"description",
	"status",
	"created_at",
	"updated_at",
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.Title, &b.Organizer,
		&b.Date, &b.StartTime, &b.EndTime,
		&b.Participants, &b.Description, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "title", "organizer", "booked_date", "start_time", "end_time", "participants", "description", "status").
		Values(b.UserID, b.Title, b.Organizer, b.Date, b.StartTime, b.EndTime, b.Participants, b.Description, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		// The bookings table carries an exclusion constraint over
		// (date, [start,end)). It is the authoritative overlap check: two
		// clients racing past the in-process check both land here, and one
		// loses with a conflict instead of a double-booking.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, bookingColumns...), "count(*) OVER() AS total_count")
	query := psql.Select(cols...).From("public.bookings")

	if filter.Date != "" {
		query = query.Where(squirrel.Eq{"booked_date": filter.Date})
	}
	if filter.DateFrom != "" {
		query = query.Where(squirrel.GtOrEq{"booked_date": filter.DateFrom})
	}
	if filter.DateTo != "" {
		query = query.Where(squirrel.LtOrEq{"booked_date": filter.DateTo})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	query = query.OrderBy("booked_date ASC", "start_time ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Title, &b.Organizer,
			&b.Date, &b.StartTime, &b.EndTime,
			&b.Participants, &b.Description, &b.Status,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListByDate(ctx context.Context, date string) ([]*Booking, error) {
	return r.listWhere(ctx, squirrel.Eq{"booked_date": date})
}

func (r *pgxRepository) ListFromDate(ctx context.Context, date string) ([]*Booking, error) {
	return r.listWhere(ctx, squirrel.GtOrEq{"booked_date": date})
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Booking, error) {
	return r.listWhere(ctx, nil)
}

func (r *pgxRepository) listWhere(ctx context.Context, cond squirrel.Sqlizer) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select(bookingColumns...).
		From("public.bookings").
		OrderBy("booked_date ASC", "start_time ASC")
	if cond != nil {
		builder = builder.Where(cond)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("title", b.Title).
		Set("organizer", b.Organizer).
		Set("booked_date", b.Date).
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("participants", b.Participants).
		Set("description", b.Description).
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, date, start, end, excludeBookingID string) (bool, error) {
	// SQL mirror of the pure HasConflict rule:
	// same date, not cancelled, start_time < end AND end_time > start.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"booked_date": date}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeBookingID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	err = r.pool.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}
