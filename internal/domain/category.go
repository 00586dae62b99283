package domain

// Category is one of the enumerated learning-activity categories an entry
// can be logged under. The set is externally supplied reference data; the
// default list below mirrors the apprenticeship provider's standard six.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func DefaultCategories() []Category {
	return []Category{
		{Name: "Attending webinars on key industry topics", Description: "Online seminars and industry events"},
		{Name: "Being mentored by a senior colleague", Description: "One-on-one mentorship sessions"},
		{Name: "Classroom session/theory or lectures", Description: "Formal training and education sessions"},
		{Name: "Research and self-study", Description: "Independent learning and research"},
		{Name: "Skills workshops and practical training", Description: "Hands-on skill development sessions"},
		{Name: "Team training sessions", Description: "Group learning activities"},
	}
}

// FindCategory looks up a category by name in the supplied list.
func FindCategory(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
