package response

import (
	"time"

	"daon_interior/internal/domain/entities"
)

// EstimateResponse is the full quote document plus totals summed over all
// rows. Rows keep their persisted JSON shape so the client can edit and send
// them back unchanged.
type EstimateResponse struct {
	Number        string                 `json:"number"`
	CustomerName  string                 `json:"customerName"`
	CustomerPhone string                 `json:"customerPhone"`
	Address       string                 `json:"address"`
	Memo          string                 `json:"memo,omitempty"`
	Rows          []entities.EstimateRow `json:"rows"`
	TotalPrice    float64                `json:"totalPrice"`
	TotalCost     float64                `json:"totalCost"`
	TotalMargin   float64                `json:"totalMargin"`
	SavedLocally  bool                   `json:"savedLocally,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	SavedAt       time.Time              `json:"saved_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	rows := e.Rows
	if rows == nil {
		rows = []entities.EstimateRow{}
	}

	var price, cost, margin float64
	for _, r := range rows {
		price += r.TotalPrice
		cost += r.Cost
		margin += r.Margin
	}

	return EstimateResponse{
		Number:        e.Number,
		CustomerName:  e.CustomerName,
		CustomerPhone: e.CustomerPhone,
		Address:       e.Address,
		Memo:          e.Memo,
		Rows:          rows,
		TotalPrice:    price,
		TotalCost:     cost,
		TotalMargin:   margin,
		CreatedAt:     e.CreatedAt,
		SavedAt:       e.SavedAt,
	}
}

// FromEstimateSavedLocally marks a response produced by the file fallback
// after a DynamoDB write failed. The document content is identical.
func FromEstimateSavedLocally(e entities.Estimate) EstimateResponse {
	res := FromEstimate(e)
	res.SavedLocally = true
	return res
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
