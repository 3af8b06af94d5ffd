package request

import (
	"strings"

	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase"
)

type CreateEstimateRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
}

// SaveRowsRequest replaces the whole row list of an estimate. Rows use the
// same JSON shape they are persisted and returned in, so the client can send
// back exactly what it received.
type SaveRowsRequest struct {
	Rows []entities.EstimateRow `json:"rows"`
}

// EditRowRequest changes one field of one row. Value is always a string; the
// calc layer parses it according to the field.
type EditRowRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type InsertRowRequest struct {
	ProductCode string `json:"productCode"`
}

func (r InsertRowRequest) ResolveProductCode() string {
	return strings.TrimSpace(r.ProductCode)
}

type InsertOptionRowRequest struct {
	ProductRef string `json:"productRef" binding:"required"`
}

type DivideRowRequest struct {
	Mode  string `json:"mode"`
	Count int    `json:"count" binding:"required"`
}

// ResolveMode defaults to a width split; "copy" duplicates the row instead.
func (r DivideRowRequest) ResolveMode() usecase.DivideMode {
	switch strings.ToLower(strings.TrimSpace(r.Mode)) {
	case "", string(usecase.DivideSplit):
		return usecase.DivideSplit
	case string(usecase.DivideCopy):
		return usecase.DivideCopy
	default:
		return usecase.DivideMode(strings.ToLower(strings.TrimSpace(r.Mode)))
	}
}
