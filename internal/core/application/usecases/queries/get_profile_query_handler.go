package queries

import (
	"context"
	"database/sql"
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler reads an account profile from the database.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query and returns the profile with its addresses.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	var resp GetProfileQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, fullname, email, phone, role, created_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&id, &resp.Fullname, &resp.Email, &resp.Phone, &resp.Role, &resp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetProfileQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
		}
		return GetProfileQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetProfileQueryResponse{}, err
	}

	if resp.Addresses, err = h.readAddresses(ctx, query.UserID()); err != nil {
		return GetProfileQueryResponse{}, err
	}

	return resp, nil
}

func (h GetProfileQueryHandler) readAddresses(
	ctx context.Context,
	userID kernel.UUID,
) ([]AddressResponse, error) {
	addresses := make([]AddressResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, label, longitude, latitude
		FROM addresses
		WHERE user_id = ?
		ORDER BY label
	`, userID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var address AddressResponse
		var id uuid.UUID
		var longitude, latitude float64

		if err = rows.Scan(&id, &address.Label, &longitude, &latitude); err != nil {
			return nil, err
		}

		if address.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if address.Location, err = kernel.NewGeoPoint(longitude, latitude); err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	return addresses, rows.Err()
}
