package queries

import (
	"errors"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"
	"fleetlog/internal/pkg/guard"
)

var ErrGetExpiringDocumentsQueryIsNotConstructed = errors.New(
	"GetExpiringDocumentsQuery must be created via NewGetExpiringDocumentsQuery constructor",
)

// GetExpiringDocumentsQuery retrieves vehicles with at least one document
// (circulation permit, technical review, insurance, gases review) expiring
// before the given deadline. Documents with no recorded date are ignored.
type GetExpiringDocumentsQuery struct { //nolint:recvcheck //using for validation
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewGetExpiringDocumentsQuery creates a query for documents due before deadline.
func NewGetExpiringDocumentsQuery(deadline time.Time) (GetExpiringDocumentsQuery, error) {
	q := GetExpiringDocumentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDeadline(deadline); err != nil {
		return GetExpiringDocumentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetExpiringDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiringDocumentsQueryIsNotConstructed)
}

// Deadline returns the cutoff instant.
func (q GetExpiringDocumentsQuery) Deadline() time.Time {
	return q.deadline
}

func (q *GetExpiringDocumentsQuery) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}

	q.deadline = deadline
	return nil
}

// ExpiringDocumentQueryResponse names one expiring document on one vehicle.
// A vehicle with several documents due appears once per document.
type ExpiringDocumentQueryResponse struct {
	VehicleID kernel.UUID
	Plate     string
	Document  string
	ExpiresAt time.Time
}
