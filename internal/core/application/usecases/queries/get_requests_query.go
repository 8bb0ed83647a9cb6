// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection-shaped rows
// straight from the database.
package queries

import (
	"errors"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"
	"launderly/internal/pkg/guard"
)

var (
	ErrGetRequestsQueryIsNotConstructed = errors.New(
		"GetRequestsQuery must be created via NewGetRequestsQuery constructor",
	)

	requestSortColumns = map[string]string{
		"createdAt":    "created_at",
		"updatedAt":    "updated_at",
		"status":       "status",
		"customerName": "customer_name",
	}
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// GetRequestsQuery retrieves a page of pickup/delivery errands for the
// driver app. Accepts the raw query parameters and validates them here:
// the kind filter must parse, the sort column must be whitelisted, and
// pagination must stay within bounds.
//
// Example:
//
//	query, err := NewGetRequestsQuery("pickup", 1, 20, "createdAt", "desc")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRequestsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type GetRequestsQuery struct { //nolint:recvcheck //using for validation
	kind      request.Kind
	page      int
	perPage   int
	sortBy    string
	sortOrder string

	guard guard.ConstructorGuard
}

// NewGetRequestsQuery creates a query from raw list parameters.
// An empty kindFilter selects both kinds. Page defaults to 1, perPage to 20
// (capped at 100), sortBy to createdAt, sortOrder to asc.
func NewGetRequestsQuery(kindFilter string, page, perPage int, sortBy, sortOrder string) (GetRequestsQuery, error) {
	q := GetRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if kindFilter != "" {
		kind, err := request.KindFromString(kindFilter)
		if err != nil {
			return GetRequestsQuery{}, err
		}
		q.kind = kind
	}

	if page < 0 {
		return GetRequestsQuery{}, errs.NewValueIsInvalidError("page")
	}
	if page == 0 {
		page = 1
	}
	q.page = page

	if perPage < 0 || perPage > maxPerPage {
		return GetRequestsQuery{}, errs.NewValueIsInvalidError("perPage")
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	q.perPage = perPage

	if sortBy == "" {
		sortBy = "createdAt"
	}
	if _, ok := requestSortColumns[sortBy]; !ok {
		return GetRequestsQuery{}, errs.NewValueIsInvalidError("sortBy")
	}
	q.sortBy = sortBy

	switch sortOrder {
	case "":
		sortOrder = "asc"
	case "asc", "desc":
	default:
		return GetRequestsQuery{}, errs.NewValueIsInvalidError("order")
	}
	q.sortOrder = sortOrder

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestsQueryIsNotConstructed)
}

// Kind returns the kind filter, or request.UnknownKind when unfiltered.
func (q GetRequestsQuery) Kind() request.Kind {
	return q.kind
}

// Page returns the 1-based page number.
func (q GetRequestsQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q GetRequestsQuery) PerPage() int {
	return q.perPage
}

// SortBy returns the requested sort key.
func (q GetRequestsQuery) SortBy() string {
	return q.sortBy
}

// SortOrder returns "asc" or "desc".
func (q GetRequestsQuery) SortOrder() string {
	return q.sortOrder
}

// sortColumn maps the whitelisted sort key to its database column.
func (q GetRequestsQuery) sortColumn() string {
	return requestSortColumns[q.sortBy]
}

// offset returns the row offset for the requested page.
func (q GetRequestsQuery) offset() int {
	return (q.page - 1) * q.perPage
}

// RequestResponse is one errand row as the driver app sees it.
type RequestResponse struct {
	ID           kernel.UUID
	Type         string
	Status       string
	CustomerName string
	AddressLine  string
	DistanceKm   float64
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetRequestsResponse is one page of errands plus the total row count.
type GetRequestsResponse struct {
	Total    int64
	Page     int
	PerPage  int
	Requests []RequestResponse
}
