package http

import (
	"time"

	"launderly/internal/core/application/usecases/queries"
)

// RequestView is one errand row in the list reply.
type RequestView struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
	AddressLine  string    `json:"addressLine"`
	DistanceKm   float64   `json:"distanceKm"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RequestsPage is the reply for GET /api/v1/request.
type RequestsPage struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PerPage  int           `json:"perPage"`
	Requests []RequestView `json:"requests"`
}

func toRequestsPage(result queries.GetRequestsResponse) RequestsPage {
	page := RequestsPage{
		Total:    result.Total,
		Page:     result.Page,
		PerPage:  result.PerPage,
		Requests: make([]RequestView, 0, len(result.Requests)),
	}
	for _, row := range result.Requests {
		page.Requests = append(page.Requests, RequestView{
			ID:           row.ID.String(),
			Type:         row.Type,
			Status:       row.Status,
			CustomerName: row.CustomerName,
			AddressLine:  row.AddressLine,
			DistanceKm:   row.DistanceKm,
			Version:      row.Version,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return page
}

// OrderItemView is one line item in the order detail reply.
type OrderItemView struct {
	ID          string `json:"id"`
	ItemName    string `json:"itemName"`
	ExpectedQty int    `json:"expectedQty"`
	CountedQty  int    `json:"countedQty"`
	Matches     bool   `json:"matches"`
}

// BypassView is the latest bypass raised on the order, if any.
type BypassView struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	BypassNote string    `json:"bypassNote"`
	RaisedAt   time.Time `json:"raisedAt"`
}

// OrderDetail is the reply for GET /api/v1/order/:orderId. Bypass is null
// when no bypass was ever raised; a PENDING status tells the client to
// withhold the raise action until the admin decides.
type OrderDetail struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	Status       string          `json:"status"`
	Weight       float64         `json:"weight"`
	LaundryPrice float64         `json:"laundryPrice"`
	AllMatch     bool            `json:"allMatch"`
	Items        []OrderItemView `json:"items"`
	Bypass       *BypassView     `json:"bypass"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toOrderDetail(result queries.GetOrderQueryResponse) OrderDetail {
	detail := OrderDetail{
		ID:           result.ID.String(),
		OrderNumber:  result.OrderNumber,
		Status:       result.Status,
		Weight:       result.Weight,
		LaundryPrice: result.LaundryPrice,
		AllMatch:     result.AllMatch,
		Items:        make([]OrderItemView, 0, len(result.Items)),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}
	if result.Bypass != nil {
		detail.Bypass = &BypassView{
			ID:         result.Bypass.ID.String(),
			Status:     result.Bypass.Status,
			BypassNote: result.Bypass.Note,
			RaisedAt:   result.Bypass.RaisedAt,
		}
	}
	for _, item := range result.Items {
		detail.Items = append(detail.Items, OrderItemView{
			ID:          item.ID.String(),
			ItemName:    item.ItemName,
			ExpectedQty: item.ExpectedQty,
			CountedQty:  item.CountedQty,
			Matches:     item.Matches,
		})
	}
	return detail
}

// PendingBypassView is one review row for GET /api/v1/bypass.
type PendingBypassView struct {
	OrderID       string    `json:"orderId"`
	OrderNumber   string    `json:"orderNumber"`
	BypassID      string    `json:"bypassId"`
	OrderWorkerID string    `json:"orderWorkerId"`
	BypassNote    string    `json:"bypassNote"`
	RaisedAt      time.Time `json:"raisedAt"`
}

func toPendingBypassList(rows []queries.PendingBypassOrderResponse) []PendingBypassView {
	views := make([]PendingBypassView, 0, len(rows))
	for _, row := range rows {
		views = append(views, PendingBypassView{
			OrderID:       row.OrderID.String(),
			OrderNumber:   row.OrderNumber,
			BypassID:      row.BypassID.String(),
			OrderWorkerID: row.OrderWorkerID.String(),
			BypassNote:    row.Note,
			RaisedAt:      row.RaisedAt,
		})
	}
	return views
}
