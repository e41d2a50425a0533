package response

import (
	"time"

	"legal_intake/internal/domain/entities"
)

type OrderResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	OperatorID  string    `json:"operator_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		OperatorID:  o.OperatorID,
		Title:       o.Title,
		Description: o.Description,
		Status:      string(o.Status),
		Price:       o.Price,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
