package http

import (
	"time"

	"ordertrack/internal/core/application/usecases/queries"
)

// errorResponse is the uniform error envelope returned by every endpoint.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerProfileRequest struct {
	Name string `json:"name"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type assignPartnerRequest struct {
	PartnerID string `json:"partner_id"`
}

type reportLocationRequest struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	SampledAt *time.Time `json:"sampled_at"`
}

type createOrderResponse struct {
	ID              string `json:"id"`
	ItemsIncomplete bool   `json:"items_incomplete,omitempty"`
}

type orderItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	VendorID        string              `json:"vendor_id"`
	PartnerID       *string             `json:"partner_id,omitempty"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	DeliveryAddress string              `json:"delivery_address"`
	Status          string              `json:"status"`
	Latitude        *float64            `json:"latitude,omitempty"`
	Longitude       *float64            `json:"longitude,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []orderItemResponse `json:"items"`
}

func orderResponseFromView(view queries.OrderView) orderResponse {
	resp := orderResponse{
		ID:              view.ID.String(),
		VendorID:        view.VendorID.String(),
		CustomerName:    view.CustomerName,
		CustomerEmail:   view.CustomerEmail,
		DeliveryAddress: view.DeliveryAddress,
		Status:          view.Status.String(),
		Latitude:        view.Latitude,
		Longitude:       view.Longitude,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
		Items:           make([]orderItemResponse, 0, len(view.Items)),
	}

	if view.PartnerID != nil {
		id := view.PartnerID.String()
		resp.PartnerID = &id
	}

	for _, item := range view.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	return resp
}

func orderResponsesFromViews(views []queries.OrderView) []orderResponse {
	responses := make([]orderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, orderResponseFromView(view))
	}
	return responses
}
