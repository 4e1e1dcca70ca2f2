// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emoji prefixes and key/value blocks across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// Header prints a section header, e.g. "📦 Fetched modules".
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix(emoji, ""), title)
}

// Item prints an indented, aligned key/value line.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-14s %v\n", key+":", value)
}

// Bullet prints an indented list entry.
func (c *Console) Bullet(msg string) {
	fmt.Fprintf(c.Out, "   - %s\n", msg)
}

func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✅", "[ok] "), msg)
}

func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("⚠️", "[warn] "), msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✗", "[error] "), msg)
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

func (c *Console) prefix(emoji, fallback string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return fallback
	}
	return emoji + " "
}
