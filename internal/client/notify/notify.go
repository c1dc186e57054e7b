// Package notify provides the user-facing message sink. Messages are fire
// and forget: nothing in the client depends on whether they were seen.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/auctionhub/internal/logging"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notifier shows a message with an optional title.
type Notifier interface {
	ShowSuccess(message string, title ...string)
	ShowError(message string, title ...string)
	ShowWarning(message string, title ...string)
	ShowInfo(message string, title ...string)
}

// Message is one shown notification.
type Message struct {
	Level   Level
	Title   string
	Message string
}

func newMessage(level Level, message string, title []string) Message {
	m := Message{Level: level, Message: message}
	if len(title) > 0 {
		m.Title = title[0]
	}
	return m
}

// Printer writes messages to a terminal and mirrors them to the log at debug
// level.
type Printer struct {
	mu  sync.Mutex
	w   io.Writer
	log logging.Logger
}

func NewPrinter(w io.Writer, log logging.Logger) *Printer {
	return &Printer{w: w, log: log}
}

var prefixes = map[Level]string{
	LevelSuccess: "[ok]",
	LevelError:   "[error]",
	LevelWarning: "[warn]",
	LevelInfo:    "[info]",
}

func (p *Printer) show(m Message) {
	p.log.Debug(context.Background(), "notification", "level", m.Level, "title", m.Title, "message", m.Message)

	p.mu.Lock()
	defer p.mu.Unlock()
	if m.Title != "" {
		fmt.Fprintf(p.w, "%s %s: %s\n", prefixes[m.Level], m.Title, m.Message)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", prefixes[m.Level], m.Message)
}

func (p *Printer) ShowSuccess(message string, title ...string) {
	p.show(newMessage(LevelSuccess, message, title))
}

func (p *Printer) ShowError(message string, title ...string) {
	p.show(newMessage(LevelError, message, title))
}

func (p *Printer) ShowWarning(message string, title ...string) {
	p.show(newMessage(LevelWarning, message, title))
}

func (p *Printer) ShowInfo(message string, title ...string) {
	p.show(newMessage(LevelInfo, message, title))
}

// Recorder keeps messages in memory. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) add(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
}

func (r *Recorder) ShowSuccess(message string, title ...string) {
	r.add(newMessage(LevelSuccess, message, title))
}

func (r *Recorder) ShowError(message string, title ...string) {
	r.add(newMessage(LevelError, message, title))
}

func (r *Recorder) ShowWarning(message string, title ...string) {
	r.add(newMessage(LevelWarning, message, title))
}

func (r *Recorder) ShowInfo(message string, title ...string) {
	r.add(newMessage(LevelInfo, message, title))
}

// Messages returns a copy of everything recorded so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Last returns the most recent message, if any.
func (r *Recorder) Last() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return Message{}, false
	}
	return r.messages[len(r.messages)-1], true
}
