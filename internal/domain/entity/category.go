package entity

// Category identifies one of the fixed quiz categories
type Category string

// Quiz categories
const (
	CategoryMath        Category = "math"
	CategoryAptitude    Category = "aptitude"
	CategoryGrammar     Category = "grammar"
	CategoryProgramming Category = "programming"
)

// Categories returns the fixed category set in catalog order
func Categories() []Category {
	return []Category{CategoryMath, CategoryAptitude, CategoryGrammar, CategoryProgramming}
}

// IsValidCategory reports whether c is one of the fixed quiz categories
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryMath, CategoryAptitude, CategoryGrammar, CategoryProgramming:
		return true
	}
	return false
}
