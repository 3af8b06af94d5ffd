package calc

import (
	"fmt"
	"strings"

	"daon_interior/internal/domain/entities"
)

// railKeyword marks rail/track options, which are installation hardware and
// stay out of the details summary.
const railKeyword = "레일"

// Details builds the human-readable summary of a product row: pleat style
// plus width count for outer curtains, pleat style plus fullness for inner
// curtains, followed by the names of the row's non-rail options in their
// list order.
func Details(row entities.EstimateRow, options []entities.EstimateRow) string {
	var parts []string

	if row.ProductType == entities.ProductTypeCurtain {
		switch row.CurtainType {
		case entities.CurtainTypeOuter:
			if row.PleatType != entities.PleatTypeNone && row.WidthCount > 0 {
				parts = append(parts, fmt.Sprintf("%s %d폭", row.PleatType, row.WidthCount))
			}
		case entities.CurtainTypeInner:
			if row.PleatType != entities.PleatTypeNone && row.PleatAmount != "" {
				parts = append(parts, fmt.Sprintf("%s %s", row.PleatType, row.PleatAmount))
			}
		}
	}

	for _, opt := range options {
		if opt.ProductRef != row.ID || !opt.IsOption() {
			continue
		}
		if opt.ProductName == "" || strings.Contains(opt.ProductName, railKeyword) {
			continue
		}
		parts = append(parts, opt.ProductName)
	}

	return strings.Join(parts, ", ")
}
