package calc

import (
	"math"
	"strconv"
	"strings"

	"daon_interior/internal/domain/entities"
)

const defaultPlainMultiplier = 1.4

// AreaInput carries the row fields the area computation reads.
type AreaInput struct {
	ProductType entities.ProductType
	CurtainType entities.CurtainType
	PleatType   entities.PleatType

	WidthMM  float64
	HeightMM float64

	// PleatAmount is the current fullness value; a trailing "배" suffix is
	// tolerated. CustomMultiplier is consulted when PleatAmount is not a
	// number (e.g. the area-based marker).
	PleatAmount      string
	CustomMultiplier float64

	ProductCode string
	ProductName string
}

// Area computes the billable m² for a row, as a 1-decimal string rounded up.
// Blinds floor to the catalog minimum order quantity instead. Empty string
// means "not computed"; the function never fails on missing catalog rows.
func Area(in AreaInput, catalog []entities.Product) string {
	switch in.ProductType {
	case entities.ProductTypeCurtain:
		if in.PleatType == entities.PleatTypePlain {
			mult := parseMultiplier(in.PleatAmount, in.CustomMultiplier)
			return formatCeil1(in.WidthMM / 1000 * mult)
		}
		if in.CurtainType == entities.CurtainTypeInner && in.PleatType == entities.PleatTypeButterfly {
			return formatCeil1(in.WidthMM * 0.001)
		}
		return ""
	case entities.ProductTypeBlind:
		area := in.WidthMM * in.HeightMM * 0.000001
		if p, ok := LookupProduct(catalog, in.ProductCode, in.ProductName); ok && p.MinOrderQty > 0 && area < p.MinOrderQty {
			// Floor to the minimum exactly; no further rounding.
			return strconv.FormatFloat(p.MinOrderQty, 'f', -1, 64)
		}
		return formatCeil1(area)
	}
	return ""
}

// LookupProduct resolves a catalog record by code first, then by name.
func LookupProduct(catalog []entities.Product, code, name string) (entities.Product, bool) {
	if code != "" {
		for _, p := range catalog {
			if p.Code == code {
				return p, true
			}
		}
	}
	if name != "" {
		for _, p := range catalog {
			if p.Name == name {
				return p, true
			}
		}
	}
	return entities.Product{}, false
}

func parseMultiplier(pleatAmount string, custom float64) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(pleatAmount), "배")
	if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
		return v
	}
	if custom > 0 {
		return custom
	}
	return defaultPlainMultiplier
}

// formatCeil1 rounds up to one decimal and formats with exactly one decimal
// place. Non-positive or non-finite values yield the empty string.
func formatCeil1(v float64) string {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	scaled := v * 10
	// Absorb binary float noise so 1.4 does not become 1.5.
	if nearest := math.Round(scaled); math.Abs(scaled-nearest) < 1e-9 {
		scaled = nearest
	}
	return strconv.FormatFloat(math.Ceil(scaled)/10, 'f', 1, 64)
}
