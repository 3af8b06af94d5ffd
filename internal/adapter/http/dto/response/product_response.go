package response

import "daon_interior/internal/domain/entities"

type ProductResponse struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	VendorName      string  `json:"vendorName"`
	Brand           string  `json:"brand"`
	Category        string  `json:"category"`
	SalePrice       float64 `json:"salePrice"`
	PurchaseCost    float64 `json:"purchaseCost"`
	LargePlainPrice float64 `json:"largePlainPrice,omitempty"`
	LargePlainCost  float64 `json:"largePlainCost,omitempty"`
	WidthMM         float64 `json:"widthMM"`
	Details         string  `json:"details,omitempty"`
	InsideOutside   string  `json:"insideOutside,omitempty"`
	MinOrderQty     float64 `json:"minOrderQty,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		Code:            p.Code,
		Name:            p.Name,
		VendorName:      p.VendorName,
		Brand:           p.Brand,
		Category:        string(p.Category),
		SalePrice:       p.SalePrice,
		PurchaseCost:    p.PurchaseCost,
		LargePlainPrice: p.LargePlainPrice,
		LargePlainCost:  p.LargePlainCost,
		WidthMM:         p.WidthMM,
		Details:         p.Details,
		InsideOutside:   string(p.InsideOutside),
		MinOrderQty:     p.MinOrderQty,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
