// Package http provides the inbound REST adapter. It translates HTTP
// requests into commands and queries and maps use-case errors onto the HTTP
// error taxonomy.
package http

import (
	"math"
	"net/http"
	"strconv"

	"supplymitra/internal/core/application/usecases/commands"
	"supplymitra/internal/core/application/usecases/queries"
	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/material"
	"supplymitra/internal/core/domain/model/order"
	"supplymitra/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createMaterialHandler    commands.CreateMaterialCommandHandler
	updateMaterialHandler    commands.UpdateMaterialCommandHandler
	createAddressHandler     commands.CreateAddressCommandHandler
	upsertProfileHandler     commands.UpsertProfileCommandHandler

	// Query handlers
	getActorOrdersHandler       queries.GetActorOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getNearbySuppliersHandler   queries.GetNearbySuppliersQueryHandler
	getSupplierMaterialsHandler queries.GetSupplierMaterialsQueryHandler
	getProfileHandler           queries.GetProfileQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createMaterialHandler commands.CreateMaterialCommandHandler,
	updateMaterialHandler commands.UpdateMaterialCommandHandler,
	createAddressHandler commands.CreateAddressCommandHandler,
	upsertProfileHandler commands.UpsertProfileCommandHandler,
	getActorOrdersHandler queries.GetActorOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getNearbySuppliersHandler queries.GetNearbySuppliersQueryHandler,
	getSupplierMaterialsHandler queries.GetSupplierMaterialsQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		createMaterialHandler:       createMaterialHandler,
		updateMaterialHandler:       updateMaterialHandler,
		createAddressHandler:        createAddressHandler,
		upsertProfileHandler:        upsertProfileHandler,
		getActorOrdersHandler:       getActorOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getNearbySuppliersHandler:   getNearbySuppliersHandler,
		getSupplierMaterialsHandler: getSupplierMaterialsHandler,
		getProfileHandler:           getProfileHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Everything
// under /api/v1 requires a valid bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", auth, NewTimeoutMiddleware(requestTimeout))
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/suppliers/nearby", s.GetNearbySuppliers)
	api.GET("/suppliers/:id/materials", s.GetSupplierMaterials)
	api.GET("/materials", s.GetOwnMaterials)
	api.POST("/materials", s.CreateMaterial)
	api.PUT("/materials/:id", s.UpdateMaterial)
	api.GET("/profile", s.GetProfile)
	api.PUT("/profile", s.UpsertProfile)
	api.POST("/addresses", s.CreateAddress)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - a vendor places a new order.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("supplierId", err))
	}
	vendorAddressID, err := kernel.UUIDFromString(req.VendorAddressID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("vendorAddressId", err))
	}
	supplierAddressID, err := kernel.UUIDFromString(req.SupplierAddressID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("supplierAddressId", err))
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		materialID, itemErr := kernel.UUIDFromString(item.MaterialID)
		if itemErr != nil {
			return writeError(c, errs.NewValueIsInvalidErrorWithCause("items.materialId", itemErr))
		}
		lines = append(lines, commands.OrderLine{MaterialID: materialID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actorID(c), supplierID,
		vendorAddressID, supplierAddressID, lines, req.ExpectedDelivery)
	if err != nil {
		return writeError(c, err)
	}

	placed, err := s.placeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderToResponse(placed))
}

// GetOrders handles GET /api/v1/orders - lists the actor's orders.
func (s *Server) GetOrders(c echo.Context) error {
	role := actorRole(c)
	if raw := c.QueryParam("role"); raw != "" {
		requested, err := account.RoleFromString(raw)
		if err != nil {
			return writeError(c, err)
		}
		if requested != role {
			return writeError(c, errs.NewForbiddenError(role.String(),
				"list orders as "+requested.String()))
		}
	}

	query, err := queries.NewGetActorOrdersQuery(actorID(c), role)
	if err != nil {
		return writeError(c, err)
	}

	summaries, err := s.getActorOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderSummaryItem, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, OrderSummaryItem{
			ID:               summary.ID.String(),
			Status:           summary.Status,
			TotalAmount:      paiseToRupees(summary.TotalAmountPaise),
			CounterpartyID:   summary.CounterpartyID.String(),
			CounterpartyName: summary.CounterpartyName,
			CreatedAt:        summary.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - order detail for a participant.
// A non-participant gets 404, indistinguishable from a missing order.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID(c))
	if err != nil {
		return writeError(c, err)
	}

	detail, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeNotFoundOnForbidden(c, err)
	}

	items := make([]OrderItemResponse, 0, len(detail.Lines))
	for _, line := range detail.Lines {
		items = append(items, OrderItemResponse{
			MaterialID:   line.MaterialID.String(),
			MaterialName: line.MaterialName,
			Quantity:     line.Quantity,
			UnitPrice:    paiseToRupees(line.UnitPricePaise),
		})
	}

	history := make([]HistoryEntryResponse, 0, len(detail.History))
	for _, entry := range detail.History {
		history = append(history, HistoryEntryResponse{
			Status: entry.Status,
			At:     entry.At,
			Note:   entry.Note,
		})
	}

	return c.JSON(http.StatusOK, OrderResponse{
		ID:               detail.ID.String(),
		VendorID:         detail.VendorID.String(),
		SupplierID:       detail.SupplierID.String(),
		Status:           detail.Status,
		TotalAmount:      paiseToRupees(detail.TotalAmountPaise),
		Items:            items,
		History:          history,
		CreatedAt:        detail.CreatedAt,
		ExpectedDelivery: detail.ExpectedDelivery,
		DeliveredAt:      detail.DeliveredAt,
		CancelledAt:      detail.CancelledAt,
	})
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actorID(c), target, req.Note)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderToResponse(updated))
}

// GetNearbySuppliers handles GET /api/v1/suppliers/nearby.
// Coordinates come from lat/lon query parameters and the radius is meters;
// a missing or malformed coordinate is passed through as NaN so the query
// constructor rejects it.
func (s *Server) GetNearbySuppliers(c echo.Context) error {
	latitude := parseFloatParam(c.QueryParam("lat"))
	longitude := parseFloatParam(c.QueryParam("lon"))

	radiusMeters := 0.0
	if raw := c.QueryParam("radius"); raw != "" {
		radiusMeters = parseFloatParam(raw)
		if math.IsNaN(radiusMeters) {
			return writeError(c, errs.NewValueIsInvalidError("radius"))
		}
	}

	query, err := queries.NewGetNearbySuppliersQuery(longitude, latitude, radiusMeters)
	if err != nil {
		return writeError(c, err)
	}

	suppliers, err := s.getNearbySuppliersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]NearbySupplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		response = append(response, NearbySupplierResponse{
			SupplierID:   supplier.SupplierID.String(),
			Name:         supplier.Name,
			AddressID:    supplier.AddressID.String(),
			AddressLabel: supplier.AddressLabel,
			Longitude:    supplier.Location.Longitude(),
			Latitude:     supplier.Location.Latitude(),
			DistanceKm:   supplier.DistanceKm,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetSupplierMaterials handles GET /api/v1/suppliers/:id/materials.
func (s *Server) GetSupplierMaterials(c echo.Context) error {
	supplierID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetSupplierMaterialsQuery(supplierID)
	if err != nil {
		return writeError(c, err)
	}

	listings, err := s.getSupplierMaterialsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]MaterialResponse, 0, len(listings))
	for _, listing := range listings {
		response = append(response, MaterialResponse{
			ID:                listing.ID.String(),
			Name:              listing.Name,
			PricePerUnit:      paiseToRupees(listing.PricePerUnitPaise),
			AvailableQuantity: listing.AvailableQuantity,
			Unit:              listing.Unit,
			Category:          listing.Category,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetOwnMaterials handles GET /api/v1/materials - a supplier's own catalog.
func (s *Server) GetOwnMaterials(c echo.Context) error {
	query, err := queries.NewGetSupplierMaterialsQuery(actorID(c))
	if err != nil {
		return writeError(c, err)
	}

	listings, err := s.getSupplierMaterialsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]MaterialResponse, 0, len(listings))
	for _, listing := range listings {
		response = append(response, MaterialResponse{
			ID:                listing.ID.String(),
			Name:              listing.Name,
			PricePerUnit:      paiseToRupees(listing.PricePerUnitPaise),
			AvailableQuantity: listing.AvailableQuantity,
			Unit:              listing.Unit,
			Category:          listing.Category,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// CreateMaterial handles POST /api/v1/materials - a supplier lists a material.
func (s *Server) CreateMaterial(c echo.Context) error {
	var req MaterialRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := kernel.MoneyFromRupees(req.PricePerUnit)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateMaterialCommand(kernel.NewUUID(), actorID(c), req.Name,
		price, req.AvailableQuantity, material.Unit(req.Unit), material.Category(req.Category))
	if err != nil {
		return writeError(c, err)
	}

	listed, err := s.createMaterialHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, materialToResponse(listed))
}

// UpdateMaterial handles PUT /api/v1/materials/:id.
func (s *Server) UpdateMaterial(c echo.Context) error {
	materialID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req MaterialRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := kernel.MoneyFromRupees(req.PricePerUnit)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateMaterialCommand(materialID, actorID(c), req.Name,
		price, req.AvailableQuantity)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.updateMaterialHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, materialToResponse(updated))
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(c echo.Context) error {
	query, err := queries.NewGetProfileQuery(actorID(c))
	if err != nil {
		return writeError(c, err)
	}

	profile, err := s.getProfileHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	addresses := make([]AddressResponse, 0, len(profile.Addresses))
	for _, address := range profile.Addresses {
		addresses = append(addresses, AddressResponse{
			ID:        address.ID.String(),
			Label:     address.Label,
			Longitude: address.Location.Longitude(),
			Latitude:  address.Location.Latitude(),
		})
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ID:        profile.ID.String(),
		Fullname:  profile.Fullname,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
		Addresses: addresses,
	})
}

// UpsertProfile handles PUT /api/v1/profile - registers or updates the
// authenticated account. The role always comes from the verified token.
func (s *Server) UpsertProfile(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpsertProfileCommand(actorID(c), req.Fullname, req.Email,
		req.Phone, actorRole(c))
	if err != nil {
		return writeError(c, err)
	}

	user, err := s.upsertProfileHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ID:        user.ID().String(),
		Fullname:  user.Fullname(),
		Email:     user.Email(),
		Phone:     user.Phone(),
		Role:      user.Role().String(),
		CreatedAt: user.CreatedAt(),
		Addresses: []AddressResponse{},
	})
}

// CreateAddress handles POST /api/v1/addresses.
func (s *Server) CreateAddress(c echo.Context) error {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	location, err := kernel.NewGeoPoint(req.Longitude, req.Latitude)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateAddressCommand(kernel.NewUUID(), actorID(c), req.Label, location)
	if err != nil {
		return writeError(c, err)
	}

	address, err := s.createAddressHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, AddressResponse{
		ID:        address.ID().String(),
		Label:     address.Label(),
		Longitude: address.Location().Longitude(),
		Latitude:  address.Location().Latitude(),
	})
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, OrderItemResponse{
			MaterialID: item.MaterialID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Rupees(),
		})
	}

	history := make([]HistoryEntryResponse, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryEntryResponse{
			Status: entry.Status().String(),
			At:     entry.At(),
			Note:   entry.Note(),
		})
	}

	return OrderResponse{
		ID:               aggregate.ID().String(),
		VendorID:         aggregate.VendorID().String(),
		SupplierID:       aggregate.SupplierID().String(),
		Status:           aggregate.Status().String(),
		TotalAmount:      aggregate.TotalAmount().Rupees(),
		Items:            items,
		History:          history,
		CreatedAt:        aggregate.CreatedAt(),
		ExpectedDelivery: aggregate.ExpectedDelivery(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CancelledAt:      aggregate.CancelledAt(),
	}
}

func materialToResponse(aggregate *material.Material) MaterialResponse {
	return MaterialResponse{
		ID:                aggregate.ID().String(),
		Name:              aggregate.Name(),
		PricePerUnit:      aggregate.PricePerUnit().Rupees(),
		AvailableQuantity: aggregate.AvailableQuantity(),
		Unit:              string(aggregate.Unit()),
		Category:          string(aggregate.Category()),
	}
}

func paiseToRupees(paise int64) float64 {
	return float64(paise) / 100
}

func parseFloatParam(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}
