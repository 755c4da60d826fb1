package hpt

// BoundArg is an argument value fixed before the search starts, tagged with
// the slot it occupies in the full argument list handed to the evaluator.
type BoundArg struct {
	index int
	value any
}

// Bind creates a bound argument for slot index.
// The index is checked against the total argument count by NewCVFunction.
func Bind(index int, value any) BoundArg {
	return BoundArg{index: index, value: value}
}

// Index returns the 0-based slot of the argument.
func (b BoundArg) Index() int {
	return b.index
}

// Value returns the fixed argument value.
func (b BoundArg) Value() any {
	return b.value
}
