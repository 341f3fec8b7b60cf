package heirs

import "inheritance-engine/internal/model"

// adoptedCap is the number of adopted children that count toward the basic
// deduction, keyed by whether a natural child exists. It never affects shares.
var adoptedCap = map[bool]int{
	true:  1,
	false: 2,
}

// DeductionHeadcount counts statutory heirs for the basic deduction, capping
// adopted children. Legatees do not count.
func DeductionHeadcount(heirs []model.Heir) int {
	count, adopted := 0, 0
	hasNatural := false

	for _, h := range heirs {
		switch {
		case !h.Type.Statutory():
			continue
		case h.Type.Adopted():
			adopted++
		default:
			if h.Type == model.HeirTypeChild {
				hasNatural = true
			}
			count++
		}
	}

	return count + min(adopted, adoptedCap[hasNatural])
}
