package auditlog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// psql билдер запросов с postgres-плейсхолдерами ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ordersSeparator разделитель номеров заказов в колонке purchase_orders
const ordersSeparator = "|"

// Repository репозиторий журнала аудита попыток бронирования.
// Журнал append-only: записи создаются при каждой попытке коммита
// и никогда не изменяются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала аудита
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал аудита
func (r *Repository) Create(ctx context.Context, entry *domain.CommitAuditEntry) (*domain.CommitAuditEntry, error) {
	query, args, err := psql.Insert("commit_audit").
		Columns(
			"supplier_id",
			"booking_date",
			"slot",
			"package_count",
			"purchase_orders",
			"outcome",
			"detail",
		).
		Values(
			entry.SupplierID,
			entry.BookingDate,
			entry.Slot.String(),
			entry.PackageCount,
			strings.Join(entry.PurchaseOrders, ordersSeparator),
			string(entry.Outcome),
			entry.Detail,
		).
		Suffix("RETURNING id, recorded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var recordedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &recordedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.RecordedAt = recordedAt.Time
	return entry, nil
}

// GetBySupplier возвращает записи журнала для поставщика, новые первыми
func (r *Repository) GetBySupplier(ctx context.Context, supplierID string, limit uint64) ([]*domain.CommitAuditEntry, error) {
	builder := psql.Select(
		"id",
		"supplier_id",
		"booking_date",
		"slot",
		"package_count",
		"purchase_orders",
		"outcome",
		"detail",
		"recorded_at",
	).
		From("commit_audit").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		OrderBy("recorded_at DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplier - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplier - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetByDate возвращает записи журнала на дату доставки, по порядку слотов
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.CommitAuditEntry, error) {
	query, args, err := psql.Select(
		"id",
		"supplier_id",
		"booking_date",
		"slot",
		"package_count",
		"purchase_orders",
		"outcome",
		"detail",
		"recorded_at",
	).
		From("commit_audit").
		Where(squirrel.Eq{"booking_date": domain.DateOnly(date)}).
		OrderBy("slot ASC, recorded_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// scanEntries сканирует результаты запроса в слайс записей журнала
func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.CommitAuditEntry, error) {
	entries := make([]*domain.CommitAuditEntry, 0)

	for rows.Next() {
		var entry domain.CommitAuditEntry
		var slot string
		var orders string
		var outcome string
		var recordedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.SupplierID,
			&entry.BookingDate,
			&slot,
			&entry.PackageCount,
			&orders,
			&outcome,
			&entry.Detail,
			&recordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		entry.Slot = types.TimeString(slot)
		entry.Outcome = domain.CommitOutcome(outcome)
		entry.RecordedAt = recordedAt.Time
		if orders != "" {
			entry.PurchaseOrders = strings.Split(orders, ordersSeparator)
		} else {
			entry.PurchaseOrders = []string{}
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
