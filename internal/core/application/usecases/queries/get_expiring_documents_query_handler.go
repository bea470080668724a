package queries

import (
	"context"

	"fleetlog/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetExpiringDocumentsQueryHandler retrieves vehicles with documents due.
// Unpivots the four document date columns so each due document is one row.
type GetExpiringDocumentsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpiringDocumentsQueryHandler creates a handler for document expiry queries.
func NewGetExpiringDocumentsQueryHandler(db *gorm.DB) GetExpiringDocumentsQueryHandler {
	return GetExpiringDocumentsQueryHandler{db: db}
}

// Handle executes the query, returning one entry per expiring document
// ordered by expiry date ascending.
func (h GetExpiringDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetExpiringDocumentsQuery,
) ([]ExpiringDocumentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	documents := make([]ExpiringDocumentQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, plate, document, expires_at
		FROM vehicles,
		LATERAL (VALUES
			('circulation_permit', circulation_permit_expiry),
			('technical_review', technical_review_expiry),
			('insurance', insurance_expiry),
			('gases_review', gases_review_expiry)
		) AS d(document, expires_at)
		WHERE expires_at IS NOT NULL AND expires_at <= ?
		ORDER BY expires_at
	`, query.Deadline()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ExpiringDocumentQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Plate, &resp.Document, &resp.ExpiresAt); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.VehicleID = vehicleID
		documents = append(documents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
