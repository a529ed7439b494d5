package parser

import (
	"strings"
)

// CommandKind identifies what a line of player input asks for.
type CommandKind int

const (
	MoveCommand CommandKind = iota
	QuitCommand
	NewGameCommand
	BoardCommand
	HelpCommand
)

// String returns the string representation of a command kind.
func (k CommandKind) String() string {
	names := []string{"move", "quit", "new", "board", "help"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Command is one parsed line of input.
type Command struct {
	Kind CommandKind
	Move Move // set for MoveCommand
}

// keywords maps control words to their command.
var keywords = map[string]CommandKind{
	"quit":  QuitCommand,
	"exit":  QuitCommand,
	"q":     QuitCommand,
	"new":   NewGameCommand,
	"reset": NewGameCommand,
	"board": BoardCommand,
	"show":  BoardCommand,
	"help":  HelpCommand,
	"?":     HelpCommand,
}

// ParseCommand reads a control word or, failing that, a move.
func ParseCommand(line string) (Command, error) {
	word := strings.ToLower(strings.TrimSpace(line))
	if kind, ok := keywords[word]; ok {
		return Command{Kind: kind}, nil
	}

	move, err := ParseMove(line)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: MoveCommand, Move: move}, nil
}

// HelpText describes the accepted input.
const HelpText = `Enter a move as "<from> <to>", for example "e2 e4".
Files are a-h, ranks are 1-8.
Commands: board, new, help, quit.`
