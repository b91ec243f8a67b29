package database

import (
	"context"
	"fmt"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

// OrderRepo reads client job orders for the job list passthrough.
type OrderRepo struct{}

// NewOrderRepo creates a new order repository
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

// ListActive returns orders in active or correction status, most recently
// updated first.
func (r *OrderRepo) ListActive(ctx context.Context) ([]models.Order, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT id, client_code, folder, folder_path, task, et, nof, status, type, updated_at
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY updated_at DESC
	`, models.OrderStatusActive, models.OrderStatusCorrection)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.ClientCode, &o.Folder, &o.FolderPath, &o.Task,
			&o.ET, &o.NOF, &o.Status, &o.Type, &o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
