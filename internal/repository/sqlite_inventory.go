package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kitchen-service/internal/database"
	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const inventoryColumns = `id, name, unit, current_stock, threshold_value, opening_stock,
	opening_stock_date, purchase_history, last_updated, updated_by, version`

// SQLiteInventoryRepository stores items in the inventory_items table.
// The purchase log is a JSON column.
type SQLiteInventoryRepository struct {
	db *database.SingleWriterDB
}

func NewSQLiteInventoryRepository(db *database.SingleWriterDB) *SQLiteInventoryRepository {
	return &SQLiteInventoryRepository{db: db}
}

func scanInventoryItem(row rowScanner) (*domain.InventoryItem, error) {
	var (
		item                     domain.InventoryItem
		unit, history            string
		openingDate, lastUpdated string
	)
	err := row.Scan(
		&item.ID, &item.Name, &unit,
		&item.CurrentStock, &item.ThresholdValue, &item.OpeningStock,
		&openingDate, &history, &lastUpdated, &item.UpdatedBy, &item.Version,
	)
	if err != nil {
		return nil, err
	}
	item.Unit = domain.Unit(unit)
	item.OpeningStockDate = database.ParseTime(openingDate)
	item.LastUpdated = database.ParseTime(lastUpdated)
	item.PurchaseHistory = []domain.PurchaseEntry{}
	if err := unmarshalColumn(history, &item.PurchaseHistory); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SQLiteInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	history, err := marshalColumn(item.PurchaseHistory)
	if err != nil {
		return err
	}

	return r.db.Write(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO inventory_items (`+inventoryColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID.String(), item.Name, string(item.Unit),
			item.CurrentStock.String(), item.ThresholdValue.String(), item.OpeningStock.String(),
			database.FormatTime(item.OpeningStockDate), history,
			database.FormatTime(item.LastUpdated), item.UpdatedBy, item.Version,
		)
		if database.IsUniqueViolation(err) {
			return conflict("inventory item", "name", item.Name)
		}
		if err != nil {
			return fmt.Errorf("failed to create inventory item: %w", err)
		}
		return nil
	})
}

// write persists every column of item, conditioned on expectedVersion.
func (r *SQLiteInventoryRepository) write(ctx context.Context, tx *sql.Tx, item *domain.InventoryItem, expectedVersion int) error {
	history, err := marshalColumn(item.PurchaseHistory)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE inventory_items
		SET name = ?, unit = ?, current_stock = ?, threshold_value = ?, opening_stock = ?,
		    opening_stock_date = ?, purchase_history = ?, last_updated = ?, updated_by = ?, version = ?
		WHERE id = ? AND version = ?`,
		item.Name, string(item.Unit), item.CurrentStock.String(), item.ThresholdValue.String(),
		item.OpeningStock.String(), database.FormatTime(item.OpeningStockDate), history,
		database.FormatTime(item.LastUpdated), item.UpdatedBy, item.Version,
		item.ID.String(), expectedVersion,
	)
	if database.IsUniqueViolation(err) {
		return conflict("inventory item", "name", item.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	return versionedResult(ctx, tx, res, "inventory_items", "inventory item", item.ID)
}

func (r *SQLiteInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	expected := item.Version
	item.Version++
	err := r.db.Write(ctx, func(tx *sql.Tx) error {
		return r.write(ctx, tx, item, expected)
	})
	if err != nil {
		item.Version = expected
	}
	return err
}

func (r *SQLiteInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = ?`, id.String())
	item, err := scanInventoryItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("inventory item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}
	return item, nil
}

func (r *SQLiteInventoryRepository) List(ctx context.Context, filter InventoryFilter) ([]*domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := []*domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		// Stock is TEXT, so the threshold comparison runs on decimals here.
		if filter.LowStockOnly && !item.IsLowStock() {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// mutate loads the item inside the writer transaction, applies fn and
// writes it back conditioned on the version that was read.
func (r *SQLiteInventoryRepository) mutate(ctx context.Context, id uuid.UUID, fn func(item *domain.InventoryItem) error) (*domain.InventoryItem, error) {
	var result *domain.InventoryItem
	err := r.db.Write(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = ?`, id.String())
		item, err := scanInventoryItem(row)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("inventory item", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load inventory item: %w", err)
		}

		expected := item.Version
		if err := fn(item); err != nil {
			return err
		}
		if err := r.write(ctx, tx, item, expected); err != nil {
			return err
		}
		result = item
		return nil
	})
	return result, err
}

func (r *SQLiteInventoryRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal, actor string, at time.Time) (*domain.InventoryItem, error) {
	return r.mutate(ctx, id, func(item *domain.InventoryItem) error {
		return item.AdjustStock(delta, actor, at)
	})
}

func (r *SQLiteInventoryRepository) AppendPurchase(ctx context.Context, id uuid.UUID, entry domain.PurchaseEntry) (*domain.InventoryItem, error) {
	return r.mutate(ctx, id, func(item *domain.InventoryItem) error {
		return item.RecordPurchase(entry)
	})
}

func (r *SQLiteInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx, func(tx *sql.Tx) error {
		return deleteByID(ctx, tx, "inventory_items", "inventory item", id)
	})
}
