package http

import "time"

// ErrorResponse is the JSON body returned for every failed request.
// AllowedTransitions is populated only for rejected status transitions, so
// clients can render what moves are legal from the order's current state.
type ErrorResponse struct {
	Code               int      `json:"code"`
	Message            string   `json:"message"`
	AllowedTransitions []string `json:"allowedTransitions,omitempty"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders. Prices are absent on
// purpose: the server prices every line from the supplier's catalog.
type PlaceOrderRequest struct {
	SupplierID        string             `json:"supplierId"`
	VendorAddressID   string             `json:"vendorAddressId"`
	SupplierAddressID string             `json:"supplierAddressId"`
	Items             []OrderItemRequest `json:"lineItems"`
	ExpectedDelivery  *time.Time         `json:"expectedDelivery,omitempty"`
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	MaterialID string `json:"materialId"`
	Quantity   int    `json:"quantity"`
}

// ChangeStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// OrderItemResponse is one line of an order in responses.
type OrderItemResponse struct {
	MaterialID   string  `json:"materialId"`
	MaterialName string  `json:"materialName,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

// HistoryEntryResponse is one status history entry in responses.
type HistoryEntryResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Note   string    `json:"note,omitempty"`
}

// OrderResponse is the full order representation returned after placement
// and from the detail endpoint. Amounts are rupees.
type OrderResponse struct {
	ID               string                 `json:"id"`
	VendorID         string                 `json:"vendorId"`
	SupplierID       string                 `json:"supplierId"`
	Status           string                 `json:"status"`
	TotalAmount      float64                `json:"totalAmount"`
	Items            []OrderItemResponse    `json:"lineItems"`
	History          []HistoryEntryResponse `json:"history"`
	CreatedAt        time.Time              `json:"createdAt"`
	ExpectedDelivery *time.Time             `json:"expectedDelivery,omitempty"`
	DeliveredAt      *time.Time             `json:"deliveredAt,omitempty"`
	CancelledAt      *time.Time             `json:"cancelledAt,omitempty"`
}

// OrderSummaryItem is one row of the order list endpoint.
type OrderSummaryItem struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	TotalAmount      float64   `json:"totalAmount"`
	CounterpartyID   string    `json:"counterpartyId"`
	CounterpartyName string    `json:"counterpartyName"`
	CreatedAt        time.Time `json:"createdAt"`
}

// MaterialRequest is the body for creating or updating a catalog listing.
type MaterialRequest struct {
	Name              string  `json:"name"`
	PricePerUnit      float64 `json:"pricePerUnit"`
	AvailableQuantity int     `json:"availableQuantity"`
	Unit              string  `json:"unit"`
	Category          string  `json:"category"`
}

// MaterialResponse is one catalog listing in responses.
type MaterialResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PricePerUnit      float64 `json:"pricePerUnit"`
	AvailableQuantity int     `json:"availableQuantity"`
	Unit              string  `json:"unit"`
	Category          string  `json:"category"`
}

// NearbySupplierResponse is one supplier found by the nearby search.
type NearbySupplierResponse struct {
	SupplierID   string  `json:"supplierId"`
	Name         string  `json:"name"`
	AddressID    string  `json:"addressId"`
	AddressLabel string  `json:"addressLabel"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	DistanceKm   float64 `json:"distanceKm"`
}

// ProfileRequest is the body of PUT /api/v1/profile.
type ProfileRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// AddressRequest is the body of POST /api/v1/addresses.
type AddressRequest struct {
	Label     string  `json:"label"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// AddressResponse is one saved address in responses.
type AddressResponse struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// ProfileResponse is the body of GET /api/v1/profile.
type ProfileResponse struct {
	ID        string            `json:"id"`
	Fullname  string            `json:"fullname"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Role      string            `json:"role"`
	CreatedAt time.Time         `json:"createdAt"`
	Addresses []AddressResponse `json:"addresses"`
}
