package listnav

// MapIndex projects an unbounded cursor onto [0, length) with wraparound.
// An empty list maps every cursor to 0; callers must still guard against
// indexing an empty list.
func MapIndex(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	r := cursor % length
	if r < 0 {
		r += length
	}
	return r
}
