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

const recipeColumns = `id, name, description, ingredients, standard_unit, standard_quantity,
	unit_price, created_by, created_at, updated_at`

type SQLiteRecipeRepository struct {
	db *database.SingleWriterDB
}

func NewSQLiteRecipeRepository(db *database.SingleWriterDB) *SQLiteRecipeRepository {
	return &SQLiteRecipeRepository{db: db}
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var (
		recipe               domain.Recipe
		ingredients, unit    string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&recipe.ID, &recipe.Name, &recipe.Description, &ingredients, &unit,
		&recipe.StandardQuantity, &recipe.UnitPrice, &recipe.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	recipe.StandardUnit = domain.Unit(unit)
	recipe.CreatedAt = database.ParseTime(createdAt)
	recipe.UpdatedAt = database.ParseTime(updatedAt)
	if err := unmarshalColumn(ingredients, &recipe.Ingredients); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *SQLiteRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	ingredients, err := marshalColumn(recipe.Ingredients)
	if err != nil {
		return err
	}

	return r.db.Write(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recipes (`+recipeColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			recipe.ID.String(), recipe.Name, recipe.Description, ingredients,
			string(recipe.StandardUnit), recipe.StandardQuantity.String(), recipe.UnitPrice.String(),
			recipe.CreatedBy, database.FormatTime(recipe.CreatedAt), database.FormatTime(recipe.UpdatedAt),
		)
		if database.IsUniqueViolation(err) {
			return conflict("recipe", "name", recipe.Name)
		}
		if err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	ingredients, err := marshalColumn(recipe.Ingredients)
	if err != nil {
		return err
	}

	return r.db.Write(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE recipes
			SET name = ?, description = ?, ingredients = ?, standard_unit = ?,
			    standard_quantity = ?, unit_price = ?, updated_at = ?
			WHERE id = ?`,
			recipe.Name, recipe.Description, ingredients, string(recipe.StandardUnit),
			recipe.StandardQuantity.String(), recipe.UnitPrice.String(),
			database.FormatTime(recipe.UpdatedAt), recipe.ID.String(),
		)
		if database.IsUniqueViolation(err) {
			return conflict("recipe", "name", recipe.Name)
		}
		if err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if n == 0 {
			return notFound("recipe", recipe.ID)
		}
		return nil
	})
}

func (r *SQLiteRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id.String())
	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("recipe", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return recipe, nil
}

func (r *SQLiteRecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []*domain.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

func (r *SQLiteRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx, func(tx *sql.Tx) error {
		return deleteByID(ctx, tx, "recipes", "recipe", id)
	})
}
