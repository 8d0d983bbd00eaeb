package models

// BoolInt is the boolean-to-integer adapter for the SQLite boundary. SQLite
// has no boolean column type, so flags are stored and surfaced as 0/1.
type BoolInt int

// BoolFrom converts a request-level boolean into its stored form.
func BoolFrom(v bool) BoolInt {
	if v {
		return 1
	}
	return 0
}

func (b BoolInt) Bool() bool {
	return b != 0
}
