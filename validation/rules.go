package validation

// OneOf reports whether value is one of the allowed choices. An empty
// value never matches, so blank filters stay no-ops.
func OneOf(value string, allowed []string) bool {
	for _, choice := range allowed {
		if value == choice {
			return true
		}
	}
	return false
}
