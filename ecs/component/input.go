package component

// Input stores the action state sampled for this tick.
type Input struct {
	Left  bool
	Right bool
	Up    bool
}

// Direction returns -1 for left, 1 for right and 0 when neither or both are
// held.
func (in Input) Direction() int {
	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	return dir
}

var InputComponent = NewComponent[Input]()
