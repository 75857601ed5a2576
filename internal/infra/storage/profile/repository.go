package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository чтение ролей сотрудников из таблицы profiles
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRole возвращает сохраненную роль пользователя как есть
func (r *Repository) GetRole(ctx context.Context, userID string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("role").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetRole - build select query: %v", ErrBuildQuery, err)
	}

	var role string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&role)
	if err == sql.ErrNoRows {
		return "", ErrProfileNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetRole - scan row: %v", ErrScanRow, err)
	}

	return role, nil
}
