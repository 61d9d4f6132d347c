package response

import (
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
)

// The stats wire shapes mirror what the admin console's charts expect:
// items reports come back under "items", trend and payment breakdowns under
// "stats", and the payment grouping key is named "_id".

// ItemsReportEntry is one row of the items report
type ItemsReportEntry struct {
	ItemName     string  `json:"itemName"`
	GramPerUnit  string  `json:"gramPerUnit"`
	Price        float64 `json:"price"`
	QuantitySold int     `json:"quantitySold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ItemsReportResponse wraps the items report rows
type ItemsReportResponse struct {
	Items []ItemsReportEntry `json:"items"`
}

// NewItemsReportResponse converts repository rows to the wire shape
func NewItemsReportResponse(results []repository.ItemSalesResult) ItemsReportResponse {
	out := ItemsReportResponse{Items: make([]ItemsReportEntry, 0, len(results))}
	for _, r := range results {
		out.Items = append(out.Items, ItemsReportEntry{
			ItemName:     r.ItemName,
			GramPerUnit:  r.Gram,
			Price:        float64(r.Price) / 100,
			QuantitySold: r.QuantitySold,
			TotalRevenue: float64(r.TotalRevenue) / 100,
		})
	}
	return out
}

// TopItemEntry is one row of the top items chart
type TopItemEntry struct {
	ItemName     string  `json:"itemName"`
	GramPerUnit  string  `json:"gramPerUnit"`
	QuantitySold int     `json:"quantitySold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// TopItemsResponse wraps the top items rows
type TopItemsResponse struct {
	Items []TopItemEntry `json:"items"`
}

// NewTopItemsResponse converts repository rows to the wire shape
func NewTopItemsResponse(results []repository.TopItemResult) TopItemsResponse {
	out := TopItemsResponse{Items: make([]TopItemEntry, 0, len(results))}
	for _, r := range results {
		out.Items = append(out.Items, TopItemEntry{
			ItemName:     r.ItemName,
			GramPerUnit:  r.Gram,
			QuantitySold: r.QuantitySold,
			TotalRevenue: float64(r.TotalRevenue) / 100,
		})
	}
	return out
}

// TrendPoint is one bucket of the sales trend chart
type TrendPoint struct {
	Date       string  `json:"date"`
	BillCount  int     `json:"billCount"`
	TotalSales float64 `json:"totalSales"`
}

// SalesTrendResponse wraps the trend points
type SalesTrendResponse struct {
	Stats []TrendPoint `json:"stats"`
}

// NewSalesTrendResponse converts repository rows to the wire shape. The date
// label matches the bucket size: hour-of-day, calendar date, or month.
func NewSalesTrendResponse(results []repository.TrendPointResult, bucket enum.TrendBucket) SalesTrendResponse {
	layout := "2006-01-02"
	switch bucket {
	case enum.TrendBucketHour:
		layout = "2006-01-02 15:00"
	case enum.TrendBucketMonth:
		layout = "2006-01"
	}

	out := SalesTrendResponse{Stats: make([]TrendPoint, 0, len(results))}
	for _, r := range results {
		out.Stats = append(out.Stats, TrendPoint{
			Date:       r.Bucket.Format(layout),
			BillCount:  r.BillCount,
			TotalSales: float64(r.TotalSales) / 100,
		})
	}
	return out
}

// PaymentMethodEntry is one payment method's totals
type PaymentMethodEntry struct {
	Method      string  `json:"_id"`
	BillCount   int     `json:"billCount"`
	TotalAmount float64 `json:"totalAmount"`
}

// PaymentMethodResponse wraps the payment breakdown
type PaymentMethodResponse struct {
	Stats []PaymentMethodEntry `json:"stats"`
}

// NewPaymentMethodResponse converts repository rows to the wire shape
func NewPaymentMethodResponse(results []repository.PaymentMethodResult) PaymentMethodResponse {
	out := PaymentMethodResponse{Stats: make([]PaymentMethodEntry, 0, len(results))}
	for _, r := range results {
		out.Stats = append(out.Stats, PaymentMethodEntry{
			Method:      r.Method.String(),
			BillCount:   r.BillCount,
			TotalAmount: float64(r.TotalAmount) / 100,
		})
	}
	return out
}
