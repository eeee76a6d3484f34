package http

import (
	"errors"
	"net/http"
	"time"

	"rates/internal/core/application/usecases/commands"
	"rates/internal/core/application/usecases/queries"
	"rates/internal/core/domain/model/courier"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/rate"
	"rates/internal/core/domain/services"
	"rates/internal/generated/servers"
	"rates/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCourierHandler  commands.CreateCourierCommandHandler
	createPlanHandler     commands.CreatePlanCommandHandler
	createShipmentHandler commands.CreateShipmentCommandHandler

	// Query handlers
	calculateRatesHandler queries.CalculateRatesQueryHandler
	getAllCouriersHandler queries.GetAllCouriersQueryHandler
	getRateCardHandler    queries.GetRateCardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	createPlanHandler commands.CreatePlanCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	calculateRatesHandler queries.CalculateRatesQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getRateCardHandler queries.GetRateCardQueryHandler,
) *Server {
	return &Server{
		createCourierHandler:  createCourierHandler,
		createPlanHandler:     createPlanHandler,
		createShipmentHandler: createShipmentHandler,
		calculateRatesHandler: calculateRatesHandler,
		getAllCouriersHandler: getAllCouriersHandler,
		getRateCardHandler:    getRateCardHandler,
	}
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve couriers",
		})
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:                c.ID.Bytes(),
			Name:              c.Name,
			ServiceType:       c.ServiceType,
			IsActive:          c.IsActive,
			IsReturnOnly:      c.IsReturnOnly,
			PickupTimeMinutes: int64(c.PickupTime / time.Minute),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier service.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var newCourier servers.NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	serviceType, err := courier.ServiceTypeFromString(newCourier.ServiceType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service type: " + newCourier.ServiceType,
		})
	}

	cmd, err := commands.NewCreateCourierCommand(
		newCourier.Name,
		serviceType,
		newCourier.IsReturnOnly,
		time.Duration(newCourier.PickupTimeMinutes)*time.Minute,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier data: " + err.Error(),
		})
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create courier",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreatePlan handles POST /api/v1/plans - creates a pricing plan with its
// full courier and zone configuration.
func (s *Server) CreatePlan(ctx echo.Context) error {
	var newPlan servers.NewPlan
	if err := ctx.Bind(&newPlan); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreatePlanCommand(
		newPlan.Name,
		newPlan.IsDefault,
		toCourierPricingInputs(newPlan.CourierPricings),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan data: " + err.Error(),
		})
	}

	if handleErr := s.createPlanHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrValueIsInvalid) ||
			errors.Is(handleErr, errs.ErrValueIsRequired) ||
			errors.Is(handleErr, errs.ErrValueIsOutOfRange) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid plan data: " + handleErr.Error(),
			})
		}

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create plan",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.PlanID().Bytes()})
}

// CalculateRates handles POST /api/v1/rates/calculate - returns the ranked
// quote list for a rate request.
func (s *Server) CalculateRates(ctx echo.Context) error {
	var body servers.CalculateRatesRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	request, err := toRateRequest(
		body.PickupPincode, body.DeliveryPincode,
		body.Weight, body.WeightUnit,
		body.BoxLength, body.BoxWidth, body.BoxHeight, body.SizeUnit,
		body.PaymentType, body.CollectableAmount, body.IsReverse,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rate request: " + err.Error(),
		})
	}

	var planID *kernel.UUID
	if body.PlanId != nil {
		id, idErr := kernel.UUIDFromBytes(body.PlanId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid plan ID",
			})
		}
		planID = &id
	}

	query, err := queries.NewCalculateRatesQuery(request, planID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rate request: " + err.Error(),
		})
	}

	quotes, err := s.calculateRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return rateErrorResponse(ctx, err)
	}

	response := make([]servers.Quote, len(quotes))
	for i, quote := range quotes {
		response[i] = servers.Quote{
			CourierId:      quote.CourierID.Bytes(),
			CourierName:    quote.CourierName,
			Zone:           quote.Zone,
			BilledWeightKg: quote.BilledWeightKg,
			ForwardCharge:  quote.ForwardCharge,
			RtoCharge:      quote.RTOCharge,
			CodCharge:      quote.CODCharge,
			TotalCharge:    quote.TotalCharge,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRateCard handles GET /api/v1/rates/card - retrieves a plan's rate card.
func (s *Server) GetRateCard(ctx echo.Context, params servers.GetRateCardParams) error {
	planID, err := kernel.UUIDFromBytes(params.PlanId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan ID",
		})
	}

	query, err := queries.NewGetRateCardQuery(planID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rate card query: " + err.Error(),
		})
	}

	card, err := s.getRateCardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve rate card",
		})
	}

	response := make([]servers.RateCardRow, len(card))
	for i, row := range card {
		response[i] = servers.RateCardRow{
			CourierId:       row.CourierID.Bytes(),
			CourierName:     row.CourierName,
			Zone:            row.Zone,
			WeightSlab:      row.WeightSlab,
			IncrementWeight: row.IncrementWeight,
			BasePrice:       row.BasePrice,
			IncrementPrice:  row.IncrementPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments - submits a shipment for
// quoting and booking.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var newShipment servers.NewShipment
	if err := ctx.Bind(&newShipment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	request, err := toRateRequest(
		newShipment.PickupPincode, newShipment.DeliveryPincode,
		newShipment.Weight, newShipment.WeightUnit,
		newShipment.BoxLength, newShipment.BoxWidth, newShipment.BoxHeight, newShipment.SizeUnit,
		newShipment.PaymentType, newShipment.CollectableAmount, newShipment.IsReverse,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return rateErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.ShipmentID().Bytes()})
}

// toRateRequest builds the validated domain request from raw HTTP fields.
func toRateRequest(
	pickupPincode, deliveryPincode string,
	weight float64, weightUnit string,
	boxLength, boxWidth, boxHeight float64, sizeUnit string,
	paymentType int, collectableAmount float64, isReverse bool,
) (rate.RateRequest, error) {
	pickup, err := kernel.NewPincode(pickupPincode)
	if err != nil {
		return rate.RateRequest{}, err
	}

	delivery, err := kernel.NewPincode(deliveryPincode)
	if err != nil {
		return rate.RateRequest{}, err
	}

	payment, err := rate.PaymentTypeFromInt(paymentType)
	if err != nil {
		return rate.RateRequest{}, err
	}

	return rate.NewRateRequest(
		pickup, delivery,
		weight, rate.WeightUnit(weightUnit),
		boxLength, boxWidth, boxHeight, rate.SizeUnit(sizeUnit),
		payment, collectableAmount, isReverse,
	)
}

// toCourierPricingInputs maps the HTTP plan payload onto the command inputs.
func toCourierPricingInputs(entries []servers.CourierPricingInput) []commands.CourierPricingInput {
	inputs := make([]commands.CourierPricingInput, len(entries))
	for i, entry := range entries {
		zones := make([]commands.ZonePricingInput, len(entry.ZonePricings))
		for j, zone := range entry.ZonePricings {
			zones[j] = commands.ZonePricingInput{
				Zone:               zone.Zone,
				BasePrice:          zone.BasePrice,
				IncrementPrice:     zone.IncrementPrice,
				IsRTOSameAsForward: zone.IsRtoSameAsForward,
				RTOBasePrice:       zone.RtoBasePrice,
				RTOIncrementPrice:  zone.RtoIncrementPrice,
				FlatRTOCharge:      zone.FlatRtoCharge,
			}
		}

		inputs[i] = commands.CourierPricingInput{
			CourierID:               entry.CourierId.String(),
			WeightSlab:              entry.WeightSlab,
			IncrementWeight:         entry.IncrementWeight,
			IncrementPrice:          entry.IncrementPrice,
			CODChargeFixed:          entry.CodChargeFixed,
			CODChargePercent:        entry.CodChargePercent,
			IsForwardApplicable:     entry.IsForwardApplicable,
			IsRTOApplicable:         entry.IsRtoApplicable,
			IsCODApplicable:         entry.IsCodApplicable,
			IsCODReversalApplicable: entry.IsCodReversalApplicable,
			ZonePricings:            zones,
		}
	}
	return inputs
}

// rateErrorResponse translates quoting errors into user-facing responses.
// An unknown pincode and a lane no courier serves both read as "service
// unavailable to this pincode" - sellers cannot act on the distinction.
func rateErrorResponse(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) && notFound.ParamName != "pincode" {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Pricing plan not found",
		})
	}

	switch {
	case errors.Is(err, services.ErrNoCourierAvailable), errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Service unavailable to this pincode",
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rate request: " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to calculate rates",
		})
	}
}
