package models

// RawCourse is a loosely-structured record as produced by an external
// collector. Any field may be missing, wrongly typed, or out of range; the
// cleaning pipeline is the single place these values become typed.
type RawCourse map[string]any

// Field returns the first present value among the given key spellings.
// Collectors are inconsistent about snake_case vs camelCase keys, so lookups
// usually pass both.
func (r RawCourse) Field(keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := r[key]; ok {
			return value, true
		}
	}

	return nil, false
}
