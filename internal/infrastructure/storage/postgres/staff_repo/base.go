// Package staff_repo provides PostgreSQL implementations for the staff
// domain repositories.
package staff_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"dentman/internal/core/apperror"
	"dentman/internal/infrastructure/storage/postgres"
)

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// insertRow inserts an entity into table using its "db" tags.
func insertRow(ctx context.Context, tm *postgres.TxManager, table string, cols []string, entity any) error {
	data := postgres.StructToMap(entity)

	filteredData := make(map[string]any, len(cols))
	for _, col := range cols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := builder().
		Insert(table).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}

	return nil
}

// updateRow updates an entity with optimistic locking on its version column.
func updateRow(ctx context.Context, tm *postgres.TxManager, table string, cols []string, entity any) error {
	data := postgres.StructToMap(entity)

	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("entity has no 'id' field with db tag")
	}
	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("entity has no 'version' field or it is not an int")
	}

	filteredData := make(map[string]any, len(cols))
	for _, col := range cols {
		if col == "id" || col == "version" {
			continue
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := builder().
		Update(table).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(table, entityID)
	}

	return nil
}

// deleteRow removes a row by id.
func deleteRow(ctx context.Context, tm *postgres.TxManager, table string, entityID any) error {
	q := builder().
		Delete(table).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(table, fmt.Sprintf("%v", entityID))
	}

	return nil
}
