package machine

// Command is one of the eight machine commands.
type Command int

//go:generate go tool stringer -linecomment -type=Command
const (
	CMD_MOVE_LEFT    = Command(0) // <
	CMD_MOVE_RIGHT   = Command(1) // >
	CMD_ADD_ONE      = Command(2) // +
	CMD_SUB_ONE      = Command(3) // -
	CMD_OUTPUT       = Command(4) // .
	CMD_INPUT        = Command(5) // ,
	CMD_JUMP_FORWARD = Command(6) // [
	CMD_JUMP_BACK    = Command(7) // ]
)

// ParseCommand returns the command for a source rune.
// ok is false for any rune outside the command alphabet.
func ParseCommand(r rune) (cmd Command, ok bool) {
	ok = true
	switch r {
	case '<':
		cmd = CMD_MOVE_LEFT
	case '>':
		cmd = CMD_MOVE_RIGHT
	case '+':
		cmd = CMD_ADD_ONE
	case '-':
		cmd = CMD_SUB_ONE
	case '.':
		cmd = CMD_OUTPUT
	case ',':
		cmd = CMD_INPUT
	case '[':
		cmd = CMD_JUMP_FORWARD
	case ']':
		cmd = CMD_JUMP_BACK
	default:
		ok = false
	}

	return
}
