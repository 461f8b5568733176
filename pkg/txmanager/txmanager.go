package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrTransaction возвращается при ошибках начала или фиксации транзакции
	ErrTransaction = errors.New("txmanager: transaction error")
	// ErrSerialization возвращается, если сериализуемая транзакция так и не смогла зафиксироваться
	ErrSerialization = errors.New("txmanager: serialization failure")
)

// serializationFailureCode код ошибки PostgreSQL serialization_failure
const serializationFailureCode pq.ErrorCode = "40001"

// DefaultSerializableAttempts количество попыток выполнить сериализуемую транзакцию
const DefaultSerializableAttempts = 3

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type txKey struct{}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// IsInTransaction проверяет, выполняется ли код внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok
}

// Manager управляет транзакциями и передает их репозиториям через context
type Manager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *Manager {
	return &Manager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE.
// При конфликте сериализации транзакция повторяется целиком.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	// Внутри уже открытой транзакции повторять нечего
	if IsInTransaction(ctx) {
		return fn(ctx)
	}
	return retrySerializable(ctx, DefaultSerializableAttempts, func() error {
		return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	})
}

// IsSerializationFailure проверяет, вызвана ли ошибка конфликтом сериализации в PostgreSQL
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailureCode
}

func retrySerializable(ctx context.Context, attempts int, attempt func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = attempt()
		if !IsSerializationFailure(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			break
		}
	}
	return fmt.Errorf("%w: %w", ErrSerialization, err)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенные вызовы переиспользуют уже открытую транзакцию
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w: rollback: %v (original error: %w)", ErrTransaction, rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}
