package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kitchen-service/internal/database"
	"kitchen-service/internal/domain"

	"github.com/google/uuid"
)

const finishedGoodsColumns = `id, name, recipe_id, unit, current_stock, stock_history,
	last_produced_date, updated_at, version`

type SQLiteFinishedGoodsRepository struct {
	db *database.SingleWriterDB
}

func NewSQLiteFinishedGoodsRepository(db *database.SingleWriterDB) *SQLiteFinishedGoodsRepository {
	return &SQLiteFinishedGoodsRepository{db: db}
}

func scanFinishedGoods(row rowScanner) (*domain.FinishedGoods, error) {
	var (
		fg                 domain.FinishedGoods
		unit, history, upd string
		lastProduced       sql.NullString
	)
	err := row.Scan(
		&fg.ID, &fg.Name, &fg.RecipeID, &unit, &fg.CurrentStock, &history,
		&lastProduced, &upd, &fg.Version,
	)
	if err != nil {
		return nil, err
	}
	fg.Unit = domain.Unit(unit)
	fg.UpdatedAt = database.ParseTime(upd)
	if lastProduced.Valid {
		t := database.ParseTime(lastProduced.String)
		fg.LastProducedDate = &t
	}
	fg.StockHistory = []domain.StockTransaction{}
	if err := unmarshalColumn(history, &fg.StockHistory); err != nil {
		return nil, err
	}
	return &fg, nil
}

func lastProducedColumn(fg *domain.FinishedGoods) sql.NullString {
	if fg.LastProducedDate == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: database.FormatTime(*fg.LastProducedDate), Valid: true}
}

func (r *SQLiteFinishedGoodsRepository) Create(ctx context.Context, fg *domain.FinishedGoods) error {
	history, err := marshalColumn(fg.StockHistory)
	if err != nil {
		return err
	}

	return r.db.Write(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO finished_goods (`+finishedGoodsColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			fg.ID.String(), fg.Name, fg.RecipeID.String(), string(fg.Unit), fg.CurrentStock.String(),
			history, lastProducedColumn(fg), database.FormatTime(fg.UpdatedAt), fg.Version,
		)
		if database.IsUniqueViolation(err) {
			return conflict("finished goods", "name", fg.Name)
		}
		if err != nil {
			return fmt.Errorf("failed to create finished goods: %w", err)
		}
		return nil
	})
}

func (r *SQLiteFinishedGoodsRepository) write(ctx context.Context, tx *sql.Tx, fg *domain.FinishedGoods, expectedVersion int) error {
	history, err := marshalColumn(fg.StockHistory)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE finished_goods
		SET name = ?, recipe_id = ?, unit = ?, current_stock = ?, stock_history = ?,
		    last_produced_date = ?, updated_at = ?, version = ?
		WHERE id = ? AND version = ?`,
		fg.Name, fg.RecipeID.String(), string(fg.Unit), fg.CurrentStock.String(), history,
		lastProducedColumn(fg), database.FormatTime(fg.UpdatedAt), fg.Version,
		fg.ID.String(), expectedVersion,
	)
	if database.IsUniqueViolation(err) {
		return conflict("finished goods", "name", fg.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to update finished goods: %w", err)
	}
	return versionedResult(ctx, tx, res, "finished_goods", "finished goods", fg.ID)
}

func (r *SQLiteFinishedGoodsRepository) Update(ctx context.Context, fg *domain.FinishedGoods) error {
	expected := fg.Version
	fg.Version++
	err := r.db.Write(ctx, func(tx *sql.Tx) error {
		return r.write(ctx, tx, fg, expected)
	})
	if err != nil {
		fg.Version = expected
	}
	return err
}

func (r *SQLiteFinishedGoodsRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FinishedGoods, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+finishedGoodsColumns+` FROM finished_goods WHERE id = ?`, id.String())
	fg, err := scanFinishedGoods(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("finished goods", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find finished goods: %w", err)
	}
	return fg, nil
}

func (r *SQLiteFinishedGoodsRepository) FindByRecipeID(ctx context.Context, recipeID uuid.UUID) (*domain.FinishedGoods, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+finishedGoodsColumns+` FROM finished_goods
		WHERE recipe_id = ? ORDER BY name LIMIT 1`, recipeID.String())
	fg, err := scanFinishedGoods(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("finished goods for recipe", recipeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find finished goods by recipe: %w", err)
	}
	return fg, nil
}

func (r *SQLiteFinishedGoodsRepository) List(ctx context.Context) ([]*domain.FinishedGoods, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+finishedGoodsColumns+` FROM finished_goods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list finished goods: %w", err)
	}
	defer rows.Close()

	goods := []*domain.FinishedGoods{}
	for rows.Next() {
		fg, err := scanFinishedGoods(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan finished goods: %w", err)
		}
		goods = append(goods, fg)
	}
	return goods, rows.Err()
}

func (r *SQLiteFinishedGoodsRepository) ApplyTransaction(ctx context.Context, id uuid.UUID, in TransactionInput) (*domain.FinishedGoods, domain.StockTransaction, error) {
	var (
		result *domain.FinishedGoods
		entry  domain.StockTransaction
	)
	err := r.db.Write(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+finishedGoodsColumns+` FROM finished_goods WHERE id = ?`, id.String())
		fg, err := scanFinishedGoods(row)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("finished goods", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load finished goods: %w", err)
		}

		expected := fg.Version
		entry, err = fg.Apply(in.Type, in.Quantity, in.OrderID, in.Notes, in.Actor, in.At)
		if err != nil {
			return err
		}
		if err := r.write(ctx, tx, fg, expected); err != nil {
			return err
		}
		result = fg
		return nil
	})
	if err != nil {
		return nil, domain.StockTransaction{}, err
	}
	return result, entry, nil
}

func (r *SQLiteFinishedGoodsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx, func(tx *sql.Tx) error {
		return deleteByID(ctx, tx, "finished_goods", "finished goods", id)
	})
}
