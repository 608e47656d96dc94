// Package fallback implements ordered candidate resolution. Every logical
// output field of the extraction engine is defined as a candidate list
// evaluated left to right; the first non-absent value wins. Keeping the
// combinator in one place makes each field's precedence auditable.
package fallback

// First returns the first non-empty candidate, or "" when all are empty.
func First(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// Texts filters the candidates down to the non-empty ones, preserving order.
func Texts(candidates ...string) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return kept
}
