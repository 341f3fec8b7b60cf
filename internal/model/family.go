package model

// FamilyStructure describes the surviving relatives of the deceased.
type FamilyStructure struct {
	SpouseExists           bool `json:"spouse_exists"`
	ChildrenCount          int  `json:"children_count" validate:"gte=0"`
	AdoptedChildrenCount   int  `json:"adopted_children_count" validate:"gte=0,ltefield=ChildrenCount"`
	GrandchildAdoptedCount int  `json:"grandchild_adopted_count" validate:"gte=0,ltefield=AdoptedChildrenCount"`
	ParentsAlive           int  `json:"parents_alive" validate:"gte=0,lte=2"`
	SiblingsCount          int  `json:"siblings_count" validate:"gte=0"`
	HalfSiblingsCount      int  `json:"half_siblings_count" validate:"gte=0"`
	NonHeirsCount          int  `json:"non_heirs_count" validate:"gte=0"`
}

type HeirType string

const (
	HeirTypeSpouse            HeirType = "spouse"
	HeirTypeChild             HeirType = "child"
	HeirTypeAdoptedChild      HeirType = "adopted_child"
	HeirTypeGrandchildAdopted HeirType = "grandchild_adopted"
	HeirTypeParent            HeirType = "parent"
	HeirTypeSibling           HeirType = "sibling"
	HeirTypeHalfSibling       HeirType = "half_sibling"
	HeirTypeOther             HeirType = "other"
)

var relationshipLabels = map[HeirType]string{
	HeirTypeSpouse:            "配偶者",
	HeirTypeChild:             "子供",
	HeirTypeAdoptedChild:      "養子",
	HeirTypeGrandchildAdopted: "孫養子",
	HeirTypeParent:            "親",
	HeirTypeSibling:           "兄弟姉妹",
	HeirTypeHalfSibling:       "半血兄弟姉妹",
	HeirTypeOther:             "法定相続人以外",
}

// Label returns the Japanese relationship label used in heir names.
func (t HeirType) Label() string {
	return relationshipLabels[t]
}

// Statutory reports whether heirs of this type hold statutory standing.
func (t HeirType) Statutory() bool {
	_, known := relationshipLabels[t]
	return known && t != HeirTypeOther
}

// Adopted reports whether the type is an adoption, including skip-generation adoption.
func (t HeirType) Adopted() bool {
	return t == HeirTypeAdoptedChild || t == HeirTypeGrandchildAdopted
}

type Heir struct {
	ID               string   `json:"id" validate:"required"`
	Name             string   `json:"name"`
	Type             HeirType `json:"type" validate:"required,oneof=spouse child adopted_child grandchild_adopted parent sibling half_sibling other"`
	Relationship     string   `json:"relationship"`
	InheritanceShare Share    `json:"inheritance_share"`
	TwoFoldAddition  bool     `json:"two_fold_addition"`
	IsAdopted        bool     `json:"is_adopted"`
}
