package component

// Input stores the four logical buttons sampled once per tick.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

var InputComponent = NewComponent[Input]()
