package patterns

// Category names one manipulation dimension scored per message.
type Category string

// The eight categories populated by the built-in pattern tables.
const (
	CategoryUrgency        Category = "urgency"
	CategoryFear           Category = "fear"
	CategoryAuthority      Category = "authority"
	CategoryIsolation      Category = "isolation"
	CategoryFlattery       Category = "flattery"
	CategoryCoercion       Category = "coercion"
	CategoryMisinformation Category = "misinformation"
	CategorySurrender      Category = "surrender"
)

// Categories recognized by the risk-weighting and velocity-cap tables but not
// (yet) emitted by any built-in pattern table. An extension pack may populate
// them.
const (
	CategoryHarm         Category = "harm"
	CategoryManipulation Category = "manipulation"
	CategoryUncertainty  Category = "uncertainty"
	CategoryDistress     Category = "distress"
)

// BuiltinCategories returns the categories of the built-in tables, in the
// order they are scanned.
func BuiltinCategories() []Category {
	return []Category{
		CategoryUrgency,
		CategoryFear,
		CategoryAuthority,
		CategoryIsolation,
		CategoryFlattery,
		CategoryCoercion,
		CategoryMisinformation,
		CategorySurrender,
	}
}
