// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/rate"
	"rates/internal/pkg/guard"
)

var (
	ErrCalculateRatesQueryIsNotConstructed = errors.New(
		"CalculateRatesQuery must be created via NewCalculateRatesQuery constructor",
	)
)

// CalculateRatesQuery asks the engine for the ranked quote list of one rate
// request. This is the read path behind the seller-facing rate calculator:
// no state changes, identical inputs always return identical quotes.
//
// The optional plan ID selects a specific pricing plan; without one the
// system-wide default plan is used.
//
// Example:
//
//	query, err := NewCalculateRatesQuery(request, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid rate query: %w", err)
//	}
//
//	quotes, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrNoCourierAvailable) {
//	    // no service on this lane - show a friendly message
//	}
type CalculateRatesQuery struct { //nolint:recvcheck //using for validation
	request rate.RateRequest
	planID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCalculateRatesQuery creates a query for the given validated request.
// Pass a nil planID to quote against the default plan.
func NewCalculateRatesQuery(request rate.RateRequest, planID *kernel.UUID) (CalculateRatesQuery, error) {
	query := CalculateRatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRequest(request); err != nil {
		return CalculateRatesQuery{}, err
	}
	if err := query.setPlanID(planID); err != nil {
		return CalculateRatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCalculateRatesQueryIsNotConstructed if validation fails.
func (q CalculateRatesQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRatesQueryIsNotConstructed)
}

// Request returns the rate request to be quoted.
func (q CalculateRatesQuery) Request() rate.RateRequest {
	return q.request
}

// PlanID returns the selected plan, or nil for the default plan.
func (q CalculateRatesQuery) PlanID() *kernel.UUID {
	return q.planID
}

func (q *CalculateRatesQuery) setRequest(request rate.RateRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	q.request = request
	return nil
}

func (q *CalculateRatesQuery) setPlanID(planID *kernel.UUID) error {
	if planID != nil {
		if err := planID.Validate(); err != nil {
			return err
		}
	}

	q.planID = planID
	return nil
}

// CalculateRatesQueryResponse is one ranked quote in the read model. All
// monetary values carry two-decimal precision in the platform's base
// currency.
type CalculateRatesQueryResponse struct {
	CourierID      kernel.UUID
	CourierName    string
	Zone           string
	BilledWeightKg float64
	ForwardCharge  float64
	RTOCharge      float64
	CODCharge      float64
	TotalCharge    float64
}
