package calc

import (
	"daon_interior/internal/domain/entities"
)

// Divide operations replace one product row with N derived rows. Split
// partitions the measured width evenly; copy duplicates the dimensions.
// In both cases the unit prices are rescaled by each new row's
// new-area/old-area ratio (a no-op when the area is unchanged).

// SplitRow partitions a row into parts rows of equal width. newID supplies
// an id per derived row. Returns the original row untouched when the split
// is not applicable.
func SplitRow(row entities.EstimateRow, parts int, env Env, newID func() string) []entities.EstimateRow {
	if parts < 2 || row.IsOption() || row.WidthMM <= 0 {
		return []entities.EstimateRow{row}
	}

	oldArea := parseNum(row.Area)
	out := make([]entities.EstimateRow, 0, parts)
	for i := 0; i < parts; i++ {
		part := row
		part.ID = newID()
		part.WidthMM = row.WidthMM / float64(parts)
		part.AreaEdited = false
		part.PleatCountMode = entities.PleatCountAuto
		rescaleByAreaRatio(&part, oldArea, env)
		Recalculate(&part, env)
		out = append(out, part)
	}
	return out
}

// CopyRow duplicates a row count times with identical dimensions. Prices are
// rescaled only when the recomputed area differs from the stored one.
func CopyRow(row entities.EstimateRow, count int, env Env, newID func() string) []entities.EstimateRow {
	if count < 1 || row.IsOption() {
		return []entities.EstimateRow{row}
	}

	oldArea := parseNum(row.Area)
	out := make([]entities.EstimateRow, 0, count)
	for i := 0; i < count; i++ {
		dup := row
		dup.ID = newID()
		dup.AreaEdited = false
		rescaleByAreaRatio(&dup, oldArea, env)
		Recalculate(&dup, env)
		out = append(out, dup)
	}
	return out
}

// rescaleByAreaRatio recomputes the row's area with its current dimensions
// and scales the unit prices by newArea/oldArea when they differ.
func rescaleByAreaRatio(row *entities.EstimateRow, oldArea float64, env Env) {
	if oldArea <= 0 {
		return
	}
	probe := *row
	Recalculate(&probe, env)
	newArea := parseNum(probe.Area)
	if newArea <= 0 || newArea == oldArea {
		return
	}
	ratio := newArea / oldArea
	row.SalePrice = row.SalePrice * ratio
	row.PurchaseCost = row.PurchaseCost * ratio
}
