/*
Package operation defines the closed set of actions the shell can perform.
*/
package operation

/*
Operation is one supported action. The set is closed: FileRead and FileCopy
are reachable through aliases, CommandRun is the fallback used when no alias
matches and runs the input as an external command.
*/
type Operation int

const (
	FileRead Operation = iota
	FileCopy
	CommandRun
)

// aliasable lists the operations that can be selected by alias, in resolution order.
var aliasable = [...]Operation{FileRead, FileCopy}

// All returns the alias-selectable operations in enumeration order.
// The fallback CommandRun is never part of the result.
func All() []Operation {
	ops := make([]Operation, len(aliasable))
	copy(ops, aliasable[:])
	return ops
}

// Fallback returns the operation used when no alias matches.
func Fallback() Operation {
	return CommandRun
}

func (o Operation) String() string {
	switch o {
	case FileRead:
		return "file-read"
	case FileCopy:
		return "file-copy"
	case CommandRun:
		return "command-run"
	default:
		return "unknown"
	}
}
