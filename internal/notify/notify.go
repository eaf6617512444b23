// Package notify delivers non-blocking user notices.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

type Severity int

const (
	SeverityDefault Severity = iota
	SeverityDestructive
)

func (s Severity) String() string {
	switch s {
	case SeverityDestructive:
		return "destructive"
	default:
		return "default"
	}
}

type Notice struct {
	Title    string
	Message  string
	Severity Severity
}

// Notifier shows a notice to the user. Implementations must not block on user input.
type Notifier interface {
	Notify(notice Notice)
}

// TerminalNotifier prints notices to a writer, destructive ones in red.
type TerminalNotifier struct {
	mu          sync.Mutex
	writer      io.Writer
	bold        *color.Color
	destructive *color.Color
	info        *color.Color
}

func NewTerminalNotifier(writer io.Writer) *TerminalNotifier {
	return &TerminalNotifier{
		writer:      writer,
		bold:        color.New(color.Bold),
		destructive: color.New(color.FgRed),
		info:        color.New(color.FgYellow),
	}
}

func (n *TerminalNotifier) Notify(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()

	c := n.info
	if notice.Severity == SeverityDestructive {
		c = n.destructive
	}
	var err error
	if notice.Title != "" {
		_, err = c.Fprintf(n.writer, "%s %s\n", n.bold.Sprintf("%s:", notice.Title), notice.Message)
	} else {
		_, err = c.Fprintln(n.writer, notice.Message)
	}
	if err != nil {
		slog.Default().Warn("failed to write a notice",
			"title", notice.Title,
			"error", err,
		)
	}
}

// Collector keeps every notice it receives.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

func (c *Collector) Notify(notice Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, notice)
}

func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notice(nil), c.notices...)
}

// Discard drops every notice.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notice) {}

func (n Notice) String() string {
	if n.Title == "" {
		return n.Message
	}
	return fmt.Sprintf("%s: %s", n.Title, n.Message)
}
