package response

import (
	"github.com/avinashrk/billpoint-api/internal/application/service"
)

// CartLineView is one aggregated cart row on the wire
type CartLineView struct {
	ItemName      string  `json:"itemName"`
	Gram          string  `json:"gram"`
	Barcode       string  `json:"barcode"`
	BarcodeNumber string  `json:"barcodenumber"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Total         float64 `json:"total"`
}

// CartViewResponse is a register session's cart snapshot on the wire
type CartViewResponse struct {
	SessionID     string         `json:"sessionId"`
	Items         []CartLineView `json:"items"`
	TotalItems    int            `json:"totalItems"`
	TotalQuantity int            `json:"totalQuantity"`
	SubTotal      float64        `json:"subTotal"`
}

// NewCartViewResponse converts a cart snapshot to the wire shape
func NewCartViewResponse(view *service.CartView) CartViewResponse {
	out := CartViewResponse{
		SessionID:     view.SessionID.String(),
		Items:         make([]CartLineView, 0, len(view.Lines)),
		TotalItems:    view.TotalItems,
		TotalQuantity: view.TotalQuantity,
		SubTotal:      float64(view.SubTotal) / 100,
	}
	for _, l := range view.Lines {
		out.Items = append(out.Items, CartLineView{
			ItemName:      l.Name,
			Gram:          l.Gram,
			Barcode:       l.Barcode,
			BarcodeNumber: l.BarcodeNumber,
			Quantity:      l.Quantity,
			Price:         float64(l.UnitPrice) / 100,
			Total:         float64(l.Total()) / 100,
		})
	}
	return out
}
