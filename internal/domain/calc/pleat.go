package calc

import (
	"math"
	"strconv"

	"daon_interior/internal/domain/entities"
)

const (
	// InnerButterflyFullness is the fixed fullness range of inner butterfly
	// curtains. It is a wire literal, never a number.
	InnerButterflyFullness = "1.8~2"

	// AreaBasedFullness marks inner plain curtains, whose fullness comes
	// from the area multiplier instead of the pleat formulas.
	AreaBasedFullness = "면적기반"
)

func effectiveBoltWidth(productWidthMM float64) float64 {
	if productWidthMM > 0 {
		return productWidthMM
	}
	return StandardBoltMM
}

// PleatCount recommends the number of fabric widths for an outer curtain.
// ok=false means no recommendation applies: the recommendation is an
// outer-curtain concept, needs a measured width, and is only defined for
// plain and butterfly pleats.
func PleatCount(widthMM, productWidthMM float64, pleatType entities.PleatType, curtainType entities.CurtainType) (int, bool) {
	if curtainType != entities.CurtainTypeOuter || widthMM <= 0 {
		return 0, false
	}
	eff := effectiveBoltWidth(productWidthMM)

	var raw float64
	switch pleatType {
	case entities.PleatTypePlain:
		raw = widthMM * 1.4 / eff
	case entities.PleatTypeButterfly:
		raw = widthMM * 2 / eff
	default:
		return 0, false
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, false
	}
	return roundPleat(raw), true
}

// roundPleat applies the shop's width-count rounding: a fractional part up
// to 0.1 rounds down, anything above rounds up. 3.05 widths → 3, 3.11 → 4.
func roundPleat(raw float64) int {
	floor := math.Floor(raw)
	if raw-floor <= 0.1 {
		return int(floor)
	}
	return int(floor) + 1
}

// OuterFullness derives the fabric-to-window ratio of an outer curtain from
// a committed pleat count, formatted to two decimals. Empty on degenerate
// input.
func OuterFullness(widthMM float64, pleatCount int, productWidthMM float64) string {
	if widthMM <= 0 || pleatCount <= 0 {
		return ""
	}
	eff := effectiveBoltWidth(productWidthMM)
	result := eff * float64(pleatCount) / widthMM
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return ""
	}
	return strconv.FormatFloat(result, 'f', 2, 64)
}

// PleatAmount is the general fullness dispatch. Inner butterfly curtains
// always carry the literal range; inner plain curtains are area-based and
// return the marker for the caller to take the multiplier path. Outer
// curtains with a bolt wider than 2000mm are clamped to the standard 1370mm
// bolt before computing.
func PleatAmount(widthMM, productWidthMM float64, pleatType entities.PleatType, curtainType entities.CurtainType, pleatCount int) string {
	if curtainType == entities.CurtainTypeInner {
		switch pleatType {
		case entities.PleatTypeButterfly:
			return InnerButterflyFullness
		case entities.PleatTypePlain:
			return AreaBasedFullness
		}
		return ""
	}
	if curtainType != entities.CurtainTypeOuter {
		return ""
	}
	if productWidthMM > wideBoltThresholdMM {
		productWidthMM = StandardBoltMM
	}
	return OuterFullness(widthMM, pleatCount, productWidthMM)
}
