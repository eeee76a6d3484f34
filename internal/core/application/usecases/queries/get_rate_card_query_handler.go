package queries

import (
	"context"

	"rates/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRateCardQueryHandler retrieves a plan's rate card from the database.
// Joins the plan's courier entries with their zone price rows in one SQL
// query rather than loading the full aggregate - the viewer needs a flat
// table, not domain behavior.
//
// Example:
//
//	handler := NewGetRateCardQueryHandler(db)
//	query, _ := NewGetRateCardQuery(planID)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get rate card: %v", err)
//	    return err
//	}
type GetRateCardQueryHandler struct {
	db *gorm.DB
}

// NewGetRateCardQueryHandler creates a handler for rate card queries.
// Requires a GORM database connection for query execution.
func NewGetRateCardQueryHandler(db *gorm.DB) GetRateCardQueryHandler {
	return GetRateCardQueryHandler{db: db}
}

// Handle executes the query to retrieve the plan's rate card.
// Returns rows ordered by courier name, then zone, for stable display.
func (h GetRateCardQueryHandler) Handle(
	ctx context.Context,
	query GetRateCardQuery,
) ([]GetRateCardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	card := make([]GetRateCardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			zp.zone,
			cp.weight_slab,
			cp.increment_weight,
			zp.base_price,
			zp.increment_price
		FROM zone_pricings zp
		JOIN courier_pricings cp ON cp.id = zp.courier_pricing_id
		JOIN couriers c ON c.id = cp.courier_id
		WHERE cp.plan_id = ?
		ORDER BY c.name, zp.zone
	`, query.PlanID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetRateCardQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.CourierName,
			&row.Zone,
			&row.WeightSlab,
			&row.IncrementWeight,
			&row.BasePrice,
			&row.IncrementPrice,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.CourierID = courierID

		card = append(card, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return card, nil
}
