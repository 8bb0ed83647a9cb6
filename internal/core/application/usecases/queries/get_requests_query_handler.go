package queries

import (
	"context"
	"fmt"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRequestsQueryHandler reads errand pages for the driver app.
// Sorting interpolates only whitelisted column names; everything else is
// bound as a parameter.
type GetRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestsQueryHandler creates a handler for errand list queries.
// Requires a GORM database connection for query execution.
func NewGetRequestsQueryHandler(db *gorm.DB) GetRequestsQueryHandler {
	return GetRequestsQueryHandler{db: db}
}

// Handle executes the list query and returns one page with the total count.
func (h GetRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetRequestsQuery,
) (GetRequestsResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRequestsResponse{}, err
	}

	where := ""
	args := []any{}
	if query.Kind() != request.UnknownKind {
		where = "WHERE kind = ?"
		args = append(args, int(query.Kind()))
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM requests "+where, args...).
		Scan(&total).Error; err != nil {
		return GetRequestsResponse{}, err
	}

	// sortColumn and SortOrder come from fixed whitelists, safe to interpolate.
	listSQL := fmt.Sprintf(`
		SELECT
			id,
			kind,
			status,
			customer_name,
			address_line,
			distance_km,
			version,
			created_at,
			updated_at
		FROM requests
		%s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, query.sortColumn(), query.SortOrder())
	args = append(args, query.PerPage(), query.offset())

	rows, err := h.db.WithContext(ctx).Raw(listSQL, args...).Rows()
	if err != nil {
		return GetRequestsResponse{}, err
	}
	defer rows.Close()

	requests := make([]RequestResponse, 0)
	for rows.Next() {
		var resp RequestResponse
		var id uuid.UUID
		var kind, status int

		err = rows.Scan(
			&id,
			&kind,
			&status,
			&resp.CustomerName,
			&resp.AddressLine,
			&resp.DistanceKm,
			&resp.Version,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return GetRequestsResponse{}, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetRequestsResponse{}, idErr
		}
		resp.ID = requestID
		resp.Type = request.Kind(kind).String()
		resp.Status = request.Status(status).String()
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return GetRequestsResponse{}, err
	}

	return GetRequestsResponse{
		Total:    total,
		Page:     query.Page(),
		PerPage:  query.PerPage(),
		Requests: requests,
	}, nil
}
