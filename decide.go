package csvcut

// Keep reports whether byte c belongs in the output. column and action are
// the column index and column action produced by the transition for c, so a
// structural delimiter is attributed to the column it opens.
func (s *Selection) Keep(c, delim byte, column int, action Action) bool {
	// Columns past the capacity are silently truncated.
	if column < 0 || column >= MaxColumns {
		return false
	}

	if s.Has(column) {
		// The delimiter opening the first kept column would lead the row.
		if action != ActionNextColumn || column != s.first {
			return true
		}
	}

	// Row separators survive even when column 0 is dropped.
	return column == 0 && c == '\n'
}
