package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
)

const tableName = "appointments"

var columns = []string{
	"id",
	"title",
	"description",
	"location",
	"type",
	"start_at",
	"end_at",
	"customer_id",
	"contact_id",
	"user_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со встречами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую встречу.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"title",
			"description",
			"location",
			"type",
			"start_at",
			"end_at",
			"customer_id",
			"contact_id",
			"user_id",
		).
		Values(
			a.Title,
			a.Description,
			a.Location,
			string(a.Type),
			a.Start,
			a.End,
			a.CustomerID,
			a.ContactID,
			a.UserID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *a
	if err := executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return &created, nil
}

// Update обновляет все изменяемые поля встречи
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("title", a.Title).
		Set("description", a.Description).
		Set("location", a.Location).
		Set("type", string(a.Type)).
		Set("start_at", a.Start).
		Set("end_at", a.End).
		Set("customer_id", a.CustomerID).
		Set("contact_id", a.ContactID).
		Set("user_id", a.UserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated := *a
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return &updated, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// Delete удаляет встречу по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// GetByFilter получает встречи с фильтрацией по клиенту, контакту, пользователю и периоду.
// Период задается полуинтервалом [From, To) по времени начала встречи.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := buildFilterQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan appointment: %w", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

// GetSummariesByCustomer получает интервалы всех встреч клиента для проверки пересечений.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельная сессия
// не создала конфликтующую встречу между проверкой и сохранением.
func (r *Repository) GetSummariesByCustomer(ctx context.Context, customerID int64) ([]domain.AppointmentSummary, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "customer_id", "start_at", "end_at").
		From(tableName).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("start_at ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSummariesByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSummariesByCustomer - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	summaries := make([]domain.AppointmentSummary, 0)
	for rows.Next() {
		var s domain.AppointmentSummary
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Interval.Start, &s.Interval.End); err != nil {
			return nil, fmt.Errorf("%w: GetSummariesByCustomer - scan summary: %w", ErrScanRow, err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSummariesByCustomer - rows error: %w", ErrScanRow, err)
	}

	return summaries, nil
}

// CountByType возвращает количество встреч каждого типа
func (r *Repository) CountByType(ctx context.Context) (map[domain.AppointmentType]int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("type", "COUNT(*)").
		From(tableName).
		GroupBy("type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByType - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.AppointmentType]int64)
	for rows.Next() {
		var (
			typ   string
			count int64
		)
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByType - scan row: %w", ErrScanRow, err)
		}
		counts[domain.AppointmentType(typ)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByType - rows error: %w", ErrScanRow, err)
	}

	return counts, nil
}

// buildFilterQuery строит запрос выборки встреч по фильтру
func buildFilterQuery(filter domain.AppointmentFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.ContactID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"contact_id": *filter.ContactID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}

	return selectBuilder.OrderBy("start_at ASC", "id ASC")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a   domain.Appointment
		typ string
	)

	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Location,
		&typ,
		&a.Start,
		&a.End,
		&a.CustomerID,
		&a.ContactID,
		&a.UserID,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = domain.AppointmentType(typ)
	return &a, nil
}
