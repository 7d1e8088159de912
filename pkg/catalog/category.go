package catalog

// Category groups templates by the situation they are written for.
type Category string

// Known categories.
const (
	CategoryStandard     Category = "standard"
	CategoryImmediate    Category = "immediate"
	CategoryCareerChange Category = "career-change"
	CategoryRetirement   Category = "retirement"
	CategoryPersonal     Category = "personal"
)

// CategoryAll matches every category in ByCategory.
const CategoryAll Category = "all"

var categoryLabels = map[Category]string{
	CategoryStandard:     "Standard Resignation",
	CategoryImmediate:    "Immediate Resignation",
	CategoryCareerChange: "Career Change",
	CategoryRetirement:   "Retirement",
	CategoryPersonal:     "Personal Reasons",
}

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryStandard,
		CategoryImmediate,
		CategoryCareerChange,
		CategoryRetirement,
		CategoryPersonal,
	}
}

// Label returns the user-facing name of c, or c itself when unknown.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory converts s into a Category. "all" and the empty string both
// yield CategoryAll.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch {
	case s == "" || c == CategoryAll:
		return CategoryAll, nil
	case c.Valid():
		return c, nil
	}
	return "", ErrUnknownCategory
}
