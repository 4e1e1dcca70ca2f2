// Where: internal/infra/ui/output.go
// What: High-level output surface used by commands and workflows.
// Why: Let workflows report progress without depending on a concrete writer.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by workflows.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, items []string)
}

// NewConsoleUI returns a UserInterface backed by a Console.
func NewConsoleUI(out io.Writer, emoji bool) UserInterface {
	if out == nil {
		out = io.Discard
	}
	return consoleUI{console: &Console{Out: out, EmojiEnabled: emoji}}
}

type consoleUI struct {
	console *Console
}

func (u consoleUI) Info(msg string)    { u.console.Info(msg) }
func (u consoleUI) Warn(msg string)    { u.console.Warn(msg) }
func (u consoleUI) Success(msg string) { u.console.Success(msg) }
func (u consoleUI) Error(msg string)   { u.console.Error(msg) }

func (u consoleUI) Block(emoji, title string, rows []KeyValue) {
	u.console.Header(emoji, title)
	for _, kv := range rows {
		u.console.Item(kv.Key, kv.Value)
	}
}

func (u consoleUI) List(emoji, title string, items []string) {
	u.console.Header(emoji, title)
	for _, item := range items {
		u.console.Bullet(item)
	}
}
