package queries

import (
	"context"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// earthRadiusKm is the mean Earth radius used by the haversine distance.
const earthRadiusKm = 6371.0

// GetNearbySuppliersQueryHandler finds suppliers near a point using a
// haversine great-circle distance computed in SQL over supplier addresses.
//
// Example:
//
//	handler := NewGetNearbySuppliersQueryHandler(db)
//	query, err := NewGetNearbySuppliersQuery(77.5946, 12.9716, 5)
//	if err != nil {
//	    return err // bad coordinates never reach the database
//	}
//	suppliers, err := handler.Handle(ctx, query)
type GetNearbySuppliersQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbySuppliersQueryHandler creates a handler for nearby-supplier queries.
func NewGetNearbySuppliersQueryHandler(db *gorm.DB) GetNearbySuppliersQueryHandler {
	return GetNearbySuppliersQueryHandler{db: db}
}

// Handle executes the search and returns matching suppliers ordered by
// distance, nearest first. A supplier with several addresses in range
// appears once per address.
func (h GetNearbySuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbySuppliersQuery,
) ([]NearbySupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	suppliers := make([]NearbySupplierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.fullname,
			a.id AS address_id,
			a.label,
			a.longitude,
			a.latitude,
			distances.distance_km
		FROM addresses a
		JOIN users u ON u.id = a.user_id
		JOIN LATERAL (
			SELECT ? * acos(
				least(1.0,
					cos(radians(?)) * cos(radians(a.latitude)) *
					cos(radians(a.longitude) - radians(?)) +
					sin(radians(?)) * sin(radians(a.latitude))
				)
			) AS distance_km
		) distances ON TRUE
		WHERE u.role = ?
		  AND distances.distance_km <= ?
		ORDER BY distances.distance_km
	`,
		earthRadiusKm,
		query.Origin().Latitude(),
		query.Origin().Longitude(),
		query.Origin().Latitude(),
		account.RoleSupplier.String(),
		query.RadiusKm(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var supplier NearbySupplierResponse
		var supplierID, addressID uuid.UUID
		var longitude, latitude float64

		err = rows.Scan(
			&supplierID,
			&supplier.Name,
			&addressID,
			&supplier.AddressLabel,
			&longitude,
			&latitude,
			&supplier.DistanceKm,
		)
		if err != nil {
			return nil, err
		}

		if supplier.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}
		if supplier.AddressID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
			return nil, err
		}
		if supplier.Location, err = kernel.NewGeoPoint(longitude, latitude); err != nil {
			return nil, err
		}

		suppliers = append(suppliers, supplier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}
