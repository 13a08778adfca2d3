package summary

// OtherCategory is the name of the synthetic bucket holding everything
// outside the top categories.
const OtherCategory = "Other"

// TopCategories is how many categories are reported individually.
const TopCategories = 3

// CategoryTotal is the net amount spent in one category.
type CategoryTotal struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// RollupCategories keeps the first TopCategories entries of cats, which must
// already be ordered by descending magnitude, and folds the signed sum of the
// remainder into a single OtherCategory entry. cats is not modified.
func RollupCategories(cats []CategoryTotal) []CategoryTotal {
	if len(cats) <= TopCategories {
		out := make([]CategoryTotal, len(cats))
		copy(out, cats)
		return out
	}

	out := make([]CategoryTotal, 0, TopCategories+1)
	out = append(out, cats[:TopCategories]...)

	var rest int64
	for _, c := range cats[TopCategories:] {
		rest += c.Value
	}
	return append(out, CategoryTotal{Name: OtherCategory, Value: rest})
}
