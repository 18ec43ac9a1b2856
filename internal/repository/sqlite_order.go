package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kitchen-service/internal/database"
	"kitchen-service/internal/domain"

	"github.com/google/uuid"
)

const orderColumns = `id, order_number, customer, items, total_ingredients, status, status_history,
	order_date, delivery_date, notes, created_by, items_total, updated_at, version`

// SQLiteOrderRepository stores orders as rows with the embedded customer,
// line items, ingredient snapshot and status history in JSON columns.
type SQLiteOrderRepository struct {
	db *database.SingleWriterDB
}

func NewSQLiteOrderRepository(db *database.SingleWriterDB) *SQLiteOrderRepository {
	return &SQLiteOrderRepository{db: db}
}

type orderRow struct {
	customer, items, ingredients, history string
}

func encodeOrder(o *domain.Order) (orderRow, error) {
	var row orderRow
	var err error
	if row.customer, err = marshalColumn(o.Customer); err != nil {
		return row, err
	}
	if row.items, err = marshalColumn(o.Items); err != nil {
		return row, err
	}
	if row.ingredients, err = marshalColumn(o.TotalIngredients); err != nil {
		return row, err
	}
	if row.history, err = marshalColumn(o.StatusHistory); err != nil {
		return row, err
	}
	return row, nil
}

func nullableTime(o *domain.Order) sql.NullString {
	if o.DeliveryDate == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: database.FormatTime(*o.DeliveryDate), Valid: true}
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order                     domain.Order
		cols                      orderRow
		status, orderDate, update string
		deliveryDate              sql.NullString
	)
	err := row.Scan(
		&order.ID, &order.OrderNumber, &cols.customer, &cols.items, &cols.ingredients,
		&status, &cols.history, &orderDate, &deliveryDate, &order.Notes, &order.CreatedBy,
		&order.ItemsTotal, &update, &order.Version,
	)
	if err != nil {
		return nil, err
	}

	if order.Status, err = domain.ParseOrderStatus(status); err != nil {
		return nil, fmt.Errorf("stored order has invalid status: %w", err)
	}
	order.OrderDate = database.ParseTime(orderDate)
	order.UpdatedAt = database.ParseTime(update)
	if deliveryDate.Valid {
		d := database.ParseTime(deliveryDate.String)
		order.DeliveryDate = &d
	}
	for _, decode := range []struct {
		data string
		dst  interface{}
	}{
		{cols.customer, &order.Customer},
		{cols.items, &order.Items},
		{cols.ingredients, &order.TotalIngredients},
		{cols.history, &order.StatusHistory},
	} {
		if err := unmarshalColumn(decode.data, decode.dst); err != nil {
			return nil, err
		}
	}
	return &order, nil
}

func (r *SQLiteOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	cols, err := encodeOrder(order)
	if err != nil {
		return err
	}

	return r.db.Write(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			order.ID.String(), order.OrderNumber, cols.customer, cols.items, cols.ingredients,
			order.Status.String(), cols.history, database.FormatTime(order.OrderDate),
			nullableTime(order), order.Notes, order.CreatedBy, order.ItemsTotal.String(),
			database.FormatTime(order.UpdatedAt), order.Version,
		)
		if database.IsUniqueViolation(err) {
			return conflict("order", "orderNumber", order.OrderNumber)
		}
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
}

func (r *SQLiteOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	cols, err := encodeOrder(order)
	if err != nil {
		return err
	}

	err = r.db.Write(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE orders
			SET customer = ?, items = ?, total_ingredients = ?, status = ?, status_history = ?,
			    delivery_date = ?, notes = ?, items_total = ?, updated_at = ?, version = version + 1
			WHERE id = ? AND version = ?`,
			cols.customer, cols.items, cols.ingredients, order.Status.String(), cols.history,
			nullableTime(order), order.Notes, order.ItemsTotal.String(),
			database.FormatTime(order.UpdatedAt), order.ID.String(), order.Version,
		)
		if err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		return versionedResult(ctx, tx, res, "orders", "order", order.ID)
	})
	if err == nil {
		order.Version++
	}
	return err
}

func (r *SQLiteOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id.String())
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("order", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return order, nil
}

func (r *SQLiteOrderRepository) List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Status != nil {
		where = append(where, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.From != nil {
		where = append(where, "order_date >= ?")
		args = append(args, database.FormatTime(*filter.From))
	}
	if filter.To != nil {
		where = append(where, "order_date <= ?")
		args = append(args, database.FormatTime(*filter.To))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY order_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *SQLiteOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx, func(tx *sql.Tx) error {
		return deleteByID(ctx, tx, "orders", "order", id)
	})
}
