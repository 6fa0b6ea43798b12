package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/dbmetrics"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ресурсами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресурс по ID вместе с конфигурацией доступности.
// Конфигурация валидируется при чтении: малформированная строка в БД
// возвращает ErrInvalidRules, а не тихо ломает расчёт слотов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"org_id",
		"name",
		"type",
		"availability_rules",
		"created_at",
		"updated_at",
	).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var resource domain.Resource
	var rawRules []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.OrgID,
		&resource.Name,
		&resource.Type,
		&rawRules,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	resource.Rules, err = decodeRules(rawRules, resource.Type)
	if err != nil {
		return nil, fmt.Errorf("GetByID - resource %d: %w", id, err)
	}

	return &resource, nil
}

// UpdateRules заменяет конфигурацию доступности ресурса.
// Конфигурация валидируется до записи, невалидная не попадает в БД
func (r *Repository) UpdateRules(ctx context.Context, id int64, rules domain.AvailabilityRules) error {
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	raw, err := encodeRules(rules)
	if err != nil {
		return fmt.Errorf("%w: UpdateRules - encode rules: %v", ErrInvalidRules, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("availability_rules", raw).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRules - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRules - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRules - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
