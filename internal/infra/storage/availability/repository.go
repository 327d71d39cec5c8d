package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с инвентарями слотов (tutor_availability)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инвентарей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// inventoryColumns колонки таблицы tutor_availability в порядке сканирования
var inventoryColumns = []string{
	"id",
	"tutor_id",
	"date",
	"day_of_week",
	"mode",
	"slots",
	"created_at",
	"updated_at",
}

// Upsert создает или перезаписывает инвентарь на дату (tutor_id, date)
// Слоты сериализуются в JSONB целиком - документ всегда перезаписывается
// полностью, согласование с уже забронированными слотами выполняет usecase
func (r *Repository) Upsert(ctx context.Context, inv *domain.DayInventory) (*domain.DayInventory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotsJSON, err := json.Marshal(inv.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal slots: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Insert("tutor_availability").
		Columns(
			"tutor_id",
			"date",
			"day_of_week",
			"mode",
			"slots",
		).
		Values(
			inv.TutorID,
			inv.Date,
			inv.DayOfWeek,
			inv.Mode,
			slotsJSON,
		).
		Suffix(`ON CONFLICT (tutor_id, date) DO UPDATE SET
			day_of_week = EXCLUDED.day_of_week,
			mode = EXCLUDED.mode,
			slots = EXCLUDED.slots,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return inv, nil
}

// GetByTutorAndDate получает инвентарь слотов на конкретную дату
// Внутри транзакции строка блокируется через FOR UPDATE - это точка
// сериализации для claim'а слота и для пересборки инвентаря
func (r *Repository) GetByTutorAndDate(ctx context.Context, tutorID int64, date time.Time) (*domain.DayInventory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(inventoryColumns...).
		From("tutor_availability").
		Where(squirrel.Eq{"tutor_id": tutorID, "date": date})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTutorAndDate - build select query: %v", ErrBuildQuery, err)
	}

	inv, err := r.scanInventory(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTutorAndDate - scan inventory: %v", ErrScanRow, err)
	}

	return inv, nil
}

// ListByTutor получает инвентари репетитора, отсортированные по дате по возрастанию
// Прошедшие даты отбрасываются: накопившиеся старые инвентари не должны
// вытеснять текущий горизонт из выдачи
func (r *Repository) ListByTutor(ctx context.Context, tutorID int64, limit int) ([]*domain.DayInventory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(inventoryColumns...).
		From("tutor_availability").
		Where(squirrel.Eq{"tutor_id": tutorID}).
		Where(squirrel.Expr("date >= CURRENT_DATE")).
		OrderBy("date ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTutor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTutor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	inventories := make([]*domain.DayInventory, 0)
	for rows.Next() {
		inv, err := r.scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTutor - scan row: %v", ErrScanRow, err)
		}
		inventories = append(inventories, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTutor - rows error: %v", ErrScanRow, err)
	}

	return inventories, nil
}

// UpdateSlots перезаписывает массив слотов инвентаря
// Используется booking engine'ом после claim'а слота; вызывается
// только внутри транзакции, начатой с GetByTutorAndDate (FOR UPDATE)
func (r *Repository) UpdateSlots(ctx context.Context, id int64, slots []domain.Slot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - marshal slots: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Update("tutor_availability").
		Set("slots", slotsJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInventoryNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanInventory сканирует одну строку инвентаря
func (r *Repository) scanInventory(row rowScanner) (*domain.DayInventory, error) {
	var inv domain.DayInventory
	var slotsJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.TutorID,
		&inv.Date,
		&inv.DayOfWeek,
		&inv.Mode,
		&slotsJSON,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(slotsJSON, &inv.Slots); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSlots, err)
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return &inv, nil
}
