package admin

// applyColumnOrder reorders list columns to match the saved order. Columns
// named in the order come first, the rest keep their relative position.
func applyColumnOrder(columns []string, order []string) []string {
	if len(order) == 0 {
		return columns
	}
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[column] = true
	}
	out := make([]string, 0, len(columns))
	seen := make(map[string]bool, len(columns))
	for _, column := range order {
		if present[column] && !seen[column] {
			out = append(out, column)
			seen[column] = true
		}
	}
	for _, column := range columns {
		if !seen[column] {
			out = append(out, column)
		}
	}
	return out
}

// applyHiddenColumns drops columns the viewer hid.
func applyHiddenColumns(columns []string, hidden []string) []string {
	if len(hidden) == 0 {
		return columns
	}
	drop := make(map[string]bool, len(hidden))
	for _, column := range hidden {
		drop[column] = true
	}
	out := make([]string, 0, len(columns))
	for _, column := range columns {
		if !drop[column] {
			out = append(out, column)
		}
	}
	return out
}
