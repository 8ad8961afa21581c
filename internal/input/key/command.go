package key

// Command is a NORMAL-mode command.
type Command uint8

const (
	// CommandNone is not a command.
	CommandNone Command = iota
	CommandLeft
	CommandDown
	CommandUp
	CommandRight
	CommandLineStart
	CommandLineEnd
	CommandDeleteChar
	CommandInsert
	CommandEscape
	CommandWordForward
	CommandWordEnd
	CommandWordBackward
)

// normalCommands maps key codes to NORMAL-mode commands.
var normalCommands = map[Code]Command{
	CodeH:      CommandLeft,
	CodeJ:      CommandDown,
	CodeK:      CommandUp,
	CodeL:      CommandRight,
	CodeZero:   CommandLineStart,
	CodeDollar: CommandLineEnd,
	CodeX:      CommandDeleteChar,
	CodeI:      CommandInsert,
	CodeEscape: CommandEscape,
	CodeW:      CommandWordForward,
	CodeE:      CommandWordEnd,
	CodeB:      CommandWordBackward,
}

// Lookup returns the NORMAL-mode command bound to code.
func Lookup(code Code) (Command, bool) {
	cmd, ok := normalCommands[code]
	return cmd, ok
}

// Code returns the key code bound to c, or false if none is.
func (c Command) Code() (Code, bool) {
	for code, cmd := range normalCommands {
		if cmd == c {
			return code, true
		}
	}
	return 0, false
}

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandLeft:
		return "left"
	case CommandDown:
		return "down"
	case CommandUp:
		return "up"
	case CommandRight:
		return "right"
	case CommandLineStart:
		return "line-start"
	case CommandLineEnd:
		return "line-end"
	case CommandDeleteChar:
		return "delete-char"
	case CommandInsert:
		return "insert"
	case CommandEscape:
		return "escape"
	case CommandWordForward:
		return "word-forward"
	case CommandWordEnd:
		return "word-end"
	case CommandWordBackward:
		return "word-backward"
	default:
		return "unknown"
	}
}
