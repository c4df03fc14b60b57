package nav

// Command is a single rover instruction token.
type Command string

const (
	MoveForward  Command = "F"
	MoveBackward Command = "B"
	RotateLeft   Command = "L"
	RotateRight  Command = "R"
)

func (c Command) Valid() bool {
	switch c {
	case MoveForward, MoveBackward, RotateLeft, RotateRight:
		return true
	}
	return false
}

// Commands converts string tokens into a command batch.
func Commands(tokens ...string) []Command {
	out := make([]Command, len(tokens))
	for i, t := range tokens {
		out[i] = Command(t)
	}
	return out
}
