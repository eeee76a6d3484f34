package queries

import (
	"context"

	"rates/internal/core/domain/model/pricing"
	"rates/internal/core/domain/services"
	"rates/internal/core/ports"
)

// CalculateRatesQueryHandler serves the rate calculator read path. It loads
// the pricing plan snapshot and the active couriers, runs the rate and zone
// pricing engine, and maps the ranked quotes into the read model.
//
// Unlike the SQL-backed queries this handler goes through the domain
// repositories: the engine needs fully validated aggregates, and the same
// snapshot loading is shared with the shipment booking path so both always
// price identically.
//
// Example:
//
//	handler := NewCalculateRatesQueryHandler(planRepo, courierRepo, directory, calculator)
//	query, _ := NewCalculateRatesQuery(request, nil)
//
//	quotes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Cheapest courier: %s\n", quotes[0].CourierName)
type CalculateRatesQueryHandler struct {
	planRepo    ports.PlanRepository
	courierRepo ports.CourierRepository
	directory   services.PincodeDirectory
	calculator  services.RateCalculator
}

// NewCalculateRatesQueryHandler creates a handler for rate calculation queries.
func NewCalculateRatesQueryHandler(
	planRepo ports.PlanRepository,
	courierRepo ports.CourierRepository,
	directory services.PincodeDirectory,
	calculator services.RateCalculator,
) CalculateRatesQueryHandler {
	return CalculateRatesQueryHandler{
		planRepo:    planRepo,
		courierRepo: courierRepo,
		directory:   directory,
		calculator:  calculator,
	}
}

// Handle executes the rate calculation.
//
// Returns services.ErrNoCourierAvailable when no courier serves the lane, so
// the presentation layer can translate it into a "no service to this
// pincode" message instead of an empty page.
func (h CalculateRatesQueryHandler) Handle(
	ctx context.Context,
	query CalculateRatesQuery,
) ([]CalculateRatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	plan, err := h.loadPlan(ctx, query)
	if err != nil {
		return nil, err
	}

	couriers, err := h.courierRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	quotes, err := h.calculator.Calculate(ctx, h.directory, query.Request(), plan, couriers)
	if err != nil {
		return nil, err
	}

	if len(quotes) == 0 {
		return nil, services.ErrNoCourierAvailable
	}

	responses := make([]CalculateRatesQueryResponse, 0, len(quotes))
	for _, quote := range quotes {
		responses = append(responses, CalculateRatesQueryResponse{
			CourierID:      quote.CourierID(),
			CourierName:    quote.CourierName(),
			Zone:           quote.Zone().String(),
			BilledWeightKg: quote.BilledWeightKg(),
			ForwardCharge:  quote.ForwardCharge(),
			RTOCharge:      quote.RTOCharge(),
			CODCharge:      quote.CODCharge(),
			TotalCharge:    quote.TotalCharge(),
		})
	}

	return responses, nil
}

func (h CalculateRatesQueryHandler) loadPlan(
	ctx context.Context,
	query CalculateRatesQuery,
) (*pricing.PricingPlan, error) {
	if planID := query.PlanID(); planID != nil {
		return h.planRepo.Get(ctx, *planID)
	}
	return h.planRepo.GetDefault(ctx)
}
