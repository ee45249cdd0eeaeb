package queries

import (
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrGetNearbySuppliersQueryIsNotConstructed = errors.New(
		"GetNearbySuppliersQuery must be created via NewGetNearbySuppliersQuery constructor",
	)
)

const (
	// MaxSearchRadiusMeters bounds the nearby search so a single request
	// cannot scan the whole country.
	MaxSearchRadiusMeters = 100_000.0

	// DefaultSearchRadiusMeters is applied when the caller passes no radius.
	DefaultSearchRadiusMeters = 10_000.0
)

// GetNearbySuppliersQuery finds suppliers with an address within a radius of
// a point. The coordinates are validated here, in the constructor, so a
// request with a missing or out-of-range latitude fails before any database
// work instead of silently searching from (0, 0).
type GetNearbySuppliersQuery struct {
	origin   kernel.GeoPoint
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetNearbySuppliersQuery creates a nearby-supplier search query.
// The radius is given in meters; pass 0 to search within the default radius.
func NewGetNearbySuppliersQuery(
	longitude float64,
	latitude float64,
	radiusMeters float64,
) (GetNearbySuppliersQuery, error) {
	origin, err := kernel.NewGeoPoint(longitude, latitude)
	if err != nil {
		return GetNearbySuppliersQuery{}, err
	}

	if radiusMeters == 0 {
		radiusMeters = DefaultSearchRadiusMeters
	}
	if radiusMeters < 0 || radiusMeters > MaxSearchRadiusMeters {
		return GetNearbySuppliersQuery{}, errs.NewValueIsOutOfRangeError(
			"radius", radiusMeters, 0, MaxSearchRadiusMeters)
	}

	return GetNearbySuppliersQuery{
		origin:   origin,
		radiusKm: radiusMeters / 1000,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbySuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbySuppliersQueryIsNotConstructed)
}

// Origin returns the search centre.
func (q GetNearbySuppliersQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// RadiusKm returns the search radius in kilometres, the unit the distance
// filter computes in.
func (q GetNearbySuppliersQuery) RadiusKm() float64 {
	return q.radiusKm
}

// NearbySupplierResponse is one supplier found near the search point.
type NearbySupplierResponse struct {
	SupplierID   kernel.UUID
	Name         string
	AddressID    kernel.UUID
	AddressLabel string
	Location     kernel.GeoPoint
	DistanceKm   float64
}
