// Package heirs determines the statutory heirs of an estate and their shares
// under the Civil Code priority order.
package heirs

import (
	"fmt"
	"math/big"

	"inheritance-engine/internal/model"
)

// priorityClass is the active statutory order. The first non-empty class
// excludes every class after it; the spouse inherits alongside any of them.
type priorityClass int

const (
	classNone priorityClass = iota
	classDescendants
	classAscendants
	classCollaterals
)

// spouseShares is the spouse's statutory share for each active class.
var spouseShares = map[priorityClass]*big.Rat{
	classNone:        big.NewRat(1, 1),
	classDescendants: big.NewRat(1, 2),
	classAscendants:  big.NewRat(2, 3),
	classCollaterals: big.NewRat(3, 4),
}

// Sibling weights: a half-blood sibling takes half of a full-blood sibling's share.
const (
	fullBloodWeight = 2
	halfBloodWeight = 1
)

// Determine maps a family structure to the ordered heir set: spouse first,
// then the members of the active class, then non-heir legatees with a zero
// share.
func Determine(fs model.FamilyStructure) ([]model.Heir, error) {
	if err := Validate(fs); err != nil {
		return nil, err
	}

	class := activeClass(fs)
	if class == classNone && !fs.SpouseExists {
		return nil, fmt.Errorf("%w: no statutory heir exists", model.ErrInvalidStructure)
	}

	heirs := make([]model.Heir, 0, headcount(fs))
	remaining := big.NewRat(1, 1)

	if fs.SpouseExists {
		share := spouseShares[class]
		heirs = append(heirs, newHeir("spouse", model.HeirTypeSpouse.Label(), model.HeirTypeSpouse, share))
		remaining.Sub(remaining, share)
	}

	switch class {
	case classDescendants:
		heirs = append(heirs, children(fs, remaining)...)
	case classAscendants:
		heirs = append(heirs, parents(fs, remaining)...)
	case classCollaterals:
		heirs = append(heirs, siblings(fs, remaining)...)
	}

	for i := 1; i <= fs.NonHeirsCount; i++ {
		heirs = append(heirs, newHeir(
			fmt.Sprintf("non_heir_%d", i),
			fmt.Sprintf("%s%d", model.HeirTypeOther.Label(), i),
			model.HeirTypeOther,
			new(big.Rat),
		))
	}

	return heirs, nil
}

// Validate checks the count invariants of a family structure.
func Validate(fs model.FamilyStructure) error {
	counts := []struct {
		field string
		value int
	}{
		{"children_count", fs.ChildrenCount},
		{"adopted_children_count", fs.AdoptedChildrenCount},
		{"grandchild_adopted_count", fs.GrandchildAdoptedCount},
		{"parents_alive", fs.ParentsAlive},
		{"siblings_count", fs.SiblingsCount},
		{"half_siblings_count", fs.HalfSiblingsCount},
		{"non_heirs_count", fs.NonHeirsCount},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", model.ErrInvalidStructure, c.field, c.value)
		}
	}

	if fs.ParentsAlive > 2 {
		return fmt.Errorf("%w: parents_alive must be 0, 1 or 2, got %d", model.ErrInvalidStructure, fs.ParentsAlive)
	}
	if fs.AdoptedChildrenCount > fs.ChildrenCount {
		return fmt.Errorf("%w: adopted_children_count %d exceeds children_count %d",
			model.ErrInvalidStructure, fs.AdoptedChildrenCount, fs.ChildrenCount)
	}
	if fs.GrandchildAdoptedCount > fs.AdoptedChildrenCount {
		return fmt.Errorf("%w: grandchild_adopted_count %d exceeds adopted_children_count %d",
			model.ErrInvalidStructure, fs.GrandchildAdoptedCount, fs.AdoptedChildrenCount)
	}

	return nil
}

func activeClass(fs model.FamilyStructure) priorityClass {
	switch {
	case fs.ChildrenCount > 0:
		return classDescendants
	case fs.ParentsAlive > 0:
		return classAscendants
	case fs.SiblingsCount+fs.HalfSiblingsCount > 0:
		return classCollaterals
	default:
		return classNone
	}
}

func headcount(fs model.FamilyStructure) int {
	n := fs.ChildrenCount + fs.ParentsAlive + fs.SiblingsCount + fs.HalfSiblingsCount + fs.NonHeirsCount
	if fs.SpouseExists {
		n++
	}
	return n
}

// children lists adopted children first, grandchild adoptions leading them,
// so child_N ordinals line up with the adoption counts.
func children(fs model.FamilyStructure, remaining *big.Rat) []model.Heir {
	each := new(big.Rat).Quo(remaining, big.NewRat(int64(fs.ChildrenCount), 1))

	out := make([]model.Heir, 0, fs.ChildrenCount)
	for i := 0; i < fs.ChildrenCount; i++ {
		t := model.HeirTypeChild
		switch {
		case i < fs.GrandchildAdoptedCount:
			t = model.HeirTypeGrandchildAdopted
		case i < fs.AdoptedChildrenCount:
			t = model.HeirTypeAdoptedChild
		}
		out = append(out, newHeir(
			fmt.Sprintf("child_%d", i+1),
			fmt.Sprintf("%s%d", t.Label(), i+1),
			t,
			each,
		))
	}
	return out
}

func parents(fs model.FamilyStructure, remaining *big.Rat) []model.Heir {
	each := new(big.Rat).Quo(remaining, big.NewRat(int64(fs.ParentsAlive), 1))

	out := make([]model.Heir, 0, fs.ParentsAlive)
	for i := 1; i <= fs.ParentsAlive; i++ {
		out = append(out, newHeir(
			fmt.Sprintf("parent_%d", i),
			fmt.Sprintf("%s%d", model.HeirTypeParent.Label(), i),
			model.HeirTypeParent,
			each,
		))
	}
	return out
}

// siblings solves full·2u + half·u = remaining for the unit share u.
func siblings(fs model.FamilyStructure, remaining *big.Rat) []model.Heir {
	units := int64(fs.SiblingsCount*fullBloodWeight + fs.HalfSiblingsCount*halfBloodWeight)
	unit := new(big.Rat).Quo(remaining, big.NewRat(units, 1))
	full := new(big.Rat).Mul(unit, big.NewRat(fullBloodWeight, 1))
	half := new(big.Rat).Mul(unit, big.NewRat(halfBloodWeight, 1))

	out := make([]model.Heir, 0, fs.SiblingsCount+fs.HalfSiblingsCount)
	for i := 1; i <= fs.SiblingsCount; i++ {
		out = append(out, newHeir(
			fmt.Sprintf("sibling_%d", i),
			fmt.Sprintf("%s%d", model.HeirTypeSibling.Label(), i),
			model.HeirTypeSibling,
			full,
		))
	}
	for i := 1; i <= fs.HalfSiblingsCount; i++ {
		out = append(out, newHeir(
			fmt.Sprintf("half_sibling_%d", i),
			fmt.Sprintf("%s%d", model.HeirTypeHalfSibling.Label(), i),
			model.HeirTypeHalfSibling,
			half,
		))
	}
	return out
}

func newHeir(id, name string, t model.HeirType, share *big.Rat) model.Heir {
	return model.Heir{
		ID:               id,
		Name:             name,
		Type:             t,
		Relationship:     t.Label(),
		InheritanceShare: model.ShareFromRat(share),
		TwoFoldAddition:  TwoFoldAddition(t),
		IsAdopted:        t.Adopted(),
	}
}

// surchargeExempt lists the heir types outside the two-fold addition:
// spouse and first-degree blood relatives, with ordinary adoption counting as
// a child.
var surchargeExempt = map[model.HeirType]bool{
	model.HeirTypeSpouse:       true,
	model.HeirTypeChild:        true,
	model.HeirTypeAdoptedChild: true,
	model.HeirTypeParent:       true,
}

// TwoFoldAddition reports whether tax attributed to an heir of type t is
// increased by 20%.
func TwoFoldAddition(t model.HeirType) bool {
	return !surchargeExempt[t]
}
