package heirs

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inheritance-engine/internal/model"
)

func shareSum(heirs []model.Heir) *big.Rat {
	sum := new(big.Rat)
	for _, h := range heirs {
		if h.Type.Statutory() {
			sum.Add(sum, h.InheritanceShare.Rat())
		}
	}
	return sum
}

func byID(heirs []model.Heir) map[string]model.Heir {
	m := make(map[string]model.Heir, len(heirs))
	for _, h := range heirs {
		m[h.ID] = h
	}
	return m
}

func TestDetermine_SpouseAndTwoChildren(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{SpouseExists: true, ChildrenCount: 2})
	require.NoError(t, err)
	require.Len(t, heirs, 3)

	assert.Equal(t, "spouse", heirs[0].ID)
	assert.True(t, heirs[0].InheritanceShare.Equal(model.NewShare(1, 2)))
	assert.Equal(t, "child_1", heirs[1].ID)
	assert.True(t, heirs[1].InheritanceShare.Equal(model.NewShare(1, 4)))
	assert.True(t, heirs[2].InheritanceShare.Equal(model.NewShare(2, 8)))

	for _, h := range heirs {
		assert.False(t, h.TwoFoldAddition, h.ID)
	}
	assert.Equal(t, 3, DeductionHeadcount(heirs))
}

func TestDetermine_ChildrenWithoutSpouseSplitEverything(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{ChildrenCount: 3})
	require.NoError(t, err)
	require.Len(t, heirs, 3)
	for _, h := range heirs {
		assert.Equal(t, "1/3", h.InheritanceShare.String())
		assert.Equal(t, model.HeirTypeChild, h.Type)
	}
}

func TestDetermine_ChildrenExcludeParentsAndSiblings(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{
		SpouseExists:      true,
		ChildrenCount:     1,
		ParentsAlive:      2,
		SiblingsCount:     3,
		HalfSiblingsCount: 1,
	})
	require.NoError(t, err)
	require.Len(t, heirs, 2)
	assert.Equal(t, model.HeirTypeSpouse, heirs[0].Type)
	assert.Equal(t, model.HeirTypeChild, heirs[1].Type)
	assert.Equal(t, "1/2", heirs[1].InheritanceShare.String())
}

func TestDetermine_AdoptedChildrenOrderingAndFlags(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{
		SpouseExists:           true,
		ChildrenCount:          4,
		AdoptedChildrenCount:   2,
		GrandchildAdoptedCount: 1,
	})
	require.NoError(t, err)
	require.Len(t, heirs, 5)

	m := byID(heirs)
	assert.Equal(t, model.HeirTypeGrandchildAdopted, m["child_1"].Type)
	assert.True(t, m["child_1"].TwoFoldAddition)
	assert.True(t, m["child_1"].IsAdopted)
	assert.Equal(t, "孫養子1", m["child_1"].Name)

	assert.Equal(t, model.HeirTypeAdoptedChild, m["child_2"].Type)
	assert.False(t, m["child_2"].TwoFoldAddition)
	assert.True(t, m["child_2"].IsAdopted)

	assert.Equal(t, model.HeirTypeChild, m["child_3"].Type)
	assert.Equal(t, model.HeirTypeChild, m["child_4"].Type)
	assert.False(t, m["child_4"].IsAdopted)

	// adoption does not weight shares
	for _, id := range []string{"child_1", "child_2", "child_3", "child_4"} {
		assert.Equal(t, "1/8", m[id].InheritanceShare.String(), id)
	}
}

func TestDetermine_Parents(t *testing.T) {
	tests := []struct {
		name        string
		fs          model.FamilyStructure
		spouse      string
		parentShare string
		parents     int
	}{
		{"spouse and both parents", model.FamilyStructure{SpouseExists: true, ParentsAlive: 2}, "2/3", "1/6", 2},
		{"spouse and one parent", model.FamilyStructure{SpouseExists: true, ParentsAlive: 1, SiblingsCount: 2}, "2/3", "1/3", 1},
		{"both parents only", model.FamilyStructure{ParentsAlive: 2}, "", "1/2", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			heirs, err := Determine(tc.fs)
			require.NoError(t, err)

			var parents int
			for _, h := range heirs {
				switch h.Type {
				case model.HeirTypeSpouse:
					assert.Equal(t, tc.spouse, h.InheritanceShare.String())
				case model.HeirTypeParent:
					parents++
					assert.Equal(t, tc.parentShare, h.InheritanceShare.String())
					assert.False(t, h.TwoFoldAddition)
				default:
					t.Fatalf("unexpected heir type %s", h.Type)
				}
			}
			assert.Equal(t, tc.parents, parents)
		})
	}
}

func TestDetermine_SiblingsWeightedTwoToOne(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{SiblingsCount: 3, HalfSiblingsCount: 1})
	require.NoError(t, err)
	require.Len(t, heirs, 4)

	m := byID(heirs)
	for _, id := range []string{"sibling_1", "sibling_2", "sibling_3"} {
		assert.True(t, m[id].InheritanceShare.Equal(model.NewShare(2, 7)), id)
		assert.True(t, m[id].TwoFoldAddition)
	}
	assert.Equal(t, "1/7", m["half_sibling_1"].InheritanceShare.String())
	assert.Equal(t, model.HeirTypeHalfSibling, m["half_sibling_1"].Type)
	assert.True(t, m["half_sibling_1"].TwoFoldAddition)
}

func TestDetermine_SpouseAndSiblings(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{SpouseExists: true, SiblingsCount: 1, HalfSiblingsCount: 1})
	require.NoError(t, err)

	m := byID(heirs)
	assert.Equal(t, "3/4", m["spouse"].InheritanceShare.String())
	assert.Equal(t, "1/6", m["sibling_1"].InheritanceShare.String())
	assert.Equal(t, "1/12", m["half_sibling_1"].InheritanceShare.String())
}

func TestDetermine_HalfSiblingIsHalfOfFullSibling(t *testing.T) {
	for full := 1; full <= 5; full++ {
		for half := 1; half <= 5; half++ {
			for _, spouse := range []bool{false, true} {
				heirs, err := Determine(model.FamilyStructure{SpouseExists: spouse, SiblingsCount: full, HalfSiblingsCount: half})
				require.NoError(t, err)

				m := byID(heirs)
				fullShare := m["sibling_1"].InheritanceShare.Rat()
				halfShare := m["half_sibling_1"].InheritanceShare.Rat()
				assert.Zero(t, fullShare.Cmp(new(big.Rat).Mul(halfShare, big.NewRat(2, 1))),
					"full=%d half=%d spouse=%v", full, half, spouse)
			}
		}
	}
}

func TestDetermine_SpouseAlone(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{SpouseExists: true})
	require.NoError(t, err)
	require.Len(t, heirs, 1)
	assert.Equal(t, "1", heirs[0].InheritanceShare.String())
}

func TestDetermine_NonHeirsAppendedWithZeroShare(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{SpouseExists: true, ChildrenCount: 1, NonHeirsCount: 2})
	require.NoError(t, err)
	require.Len(t, heirs, 4)

	for _, h := range heirs[2:] {
		assert.Equal(t, model.HeirTypeOther, h.Type)
		assert.True(t, h.InheritanceShare.IsZero())
		assert.True(t, h.TwoFoldAddition)
	}
	assert.Equal(t, "non_heir_2", heirs[3].ID)
	assert.Equal(t, "法定相続人以外2", heirs[3].Name)
	assert.Equal(t, 2, DeductionHeadcount(heirs))
}

func TestDetermine_SharesSumToOne(t *testing.T) {
	one := big.NewRat(1, 1)
	for _, spouse := range []bool{false, true} {
		for children := 0; children <= 4; children++ {
			for parents := 0; parents <= 2; parents++ {
				for sib := 0; sib <= 3; sib++ {
					for half := 0; half <= 3; half++ {
						fs := model.FamilyStructure{
							SpouseExists:         spouse,
							ChildrenCount:        children,
							AdoptedChildrenCount: children / 2,
							ParentsAlive:         parents,
							SiblingsCount:        sib,
							HalfSiblingsCount:    half,
							NonHeirsCount:        1,
						}
						heirs, err := Determine(fs)
						if err != nil {
							require.True(t, errors.Is(err, model.ErrInvalidStructure))
							continue
						}
						assert.Zero(t, shareSum(heirs).Cmp(one), "%+v", fs)
					}
				}
			}
		}
	}
}

func TestDetermine_InvalidStructure(t *testing.T) {
	tests := []struct {
		name string
		fs   model.FamilyStructure
	}{
		{"negative children", model.FamilyStructure{ChildrenCount: -1}},
		{"negative siblings", model.FamilyStructure{SpouseExists: true, SiblingsCount: -2}},
		{"negative non-heirs", model.FamilyStructure{SpouseExists: true, NonHeirsCount: -1}},
		{"three parents", model.FamilyStructure{ParentsAlive: 3}},
		{"adopted exceeds children", model.FamilyStructure{ChildrenCount: 1, AdoptedChildrenCount: 2}},
		{"grandchild exceeds adopted", model.FamilyStructure{ChildrenCount: 3, AdoptedChildrenCount: 1, GrandchildAdoptedCount: 2}},
		{"nobody", model.FamilyStructure{}},
		{"legatees only", model.FamilyStructure{NonHeirsCount: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Determine(tc.fs)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidStructure)
		})
	}
}

func TestDeductionHeadcount_AdoptedCap(t *testing.T) {
	tests := []struct {
		name     string
		fs       model.FamilyStructure
		expected int
	}{
		{"natural child caps adopted at one", model.FamilyStructure{SpouseExists: true, ChildrenCount: 5, AdoptedChildrenCount: 4}, 3},
		{"no natural child caps adopted at two", model.FamilyStructure{ChildrenCount: 4, AdoptedChildrenCount: 4}, 2},
		{"grandchild adoption counts as adopted", model.FamilyStructure{ChildrenCount: 3, AdoptedChildrenCount: 3, GrandchildAdoptedCount: 3}, 2},
		{"single adopted child", model.FamilyStructure{SpouseExists: true, ChildrenCount: 1, AdoptedChildrenCount: 1}, 2},
		{"siblings count in full", model.FamilyStructure{SiblingsCount: 2, HalfSiblingsCount: 3}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			heirs, err := Determine(tc.fs)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, DeductionHeadcount(heirs))
		})
	}
}

func TestDeductionHeadcount_DoesNotTouchShares(t *testing.T) {
	heirs, err := Determine(model.FamilyStructure{ChildrenCount: 6, AdoptedChildrenCount: 5})
	require.NoError(t, err)

	_ = DeductionHeadcount(heirs)
	for _, h := range heirs {
		assert.Equal(t, "1/6", h.InheritanceShare.String())
	}
}

func TestTwoFoldAddition(t *testing.T) {
	expected := map[model.HeirType]bool{
		model.HeirTypeSpouse:            false,
		model.HeirTypeChild:             false,
		model.HeirTypeAdoptedChild:      false,
		model.HeirTypeParent:            false,
		model.HeirTypeGrandchildAdopted: true,
		model.HeirTypeSibling:           true,
		model.HeirTypeHalfSibling:       true,
		model.HeirTypeOther:             true,
	}
	for ht, want := range expected {
		assert.Equal(t, want, TwoFoldAddition(ht), string(ht))
	}
}
