package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	colorTitle    = color.New(color.FgCyan, color.Bold)
	colorPrompt   = color.New(color.Bold)
	colorHint     = color.New(color.FgYellow)
	colorCritical = color.New(color.FgRed, color.Bold)
	colorWarning  = color.New(color.FgYellow, color.Bold)
	colorInfo     = color.New(color.FgBlue, color.Bold)
	colorSuccess  = color.New(color.FgGreen)
	colorFailure  = color.New(color.FgRed)
)

// Console serialises writes from the quiz and from background notifiers
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole returns a Console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) printf(attr *color.Color, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if attr == nil {
		fmt.Fprintf(c.out, format, args...)
		return
	}
	attr.Fprintf(c.out, format, args...) //nolint:errcheck // terminal output
}
