// Package cartview holds the HTTP cart representation shared by every cart
// operation handler; they all answer with the session's current cart.
package cartview

import (
	"github.com/agendei-app/agendei-service/internal/domain"
)

// LineResponse is one cart line.
type LineResponse struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// CartResponse is the session's cart with its running total.
type CartResponse struct {
	Items []LineResponse `json:"items"`
	Total float64        `json:"total"`
}

// FromLines builds the HTTP cart view from store lines.
func FromLines(lines []domain.CartLine) *CartResponse {
	out := &CartResponse{Items: make([]LineResponse, 0, len(lines))}
	for _, line := range lines {
		out.Items = append(out.Items, LineResponse{
			ServiceID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Qty:       line.Qty,
		})
		out.Total += line.LineTotal()
	}
	return out
}
