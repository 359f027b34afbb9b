package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Bridge connects a widget's callbacks to a running Bubble Tea program. It
// implements board.Prompter and provides the OnChange hook.
//
// Changed and Alert never block: widget methods are also called from inside
// Update, where a synchronous Program.Send would deadlock. Confirm blocks,
// and is only reached from commands running off the event loop.
type Bridge struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// NewBridge returns a bridge that drops messages until Attach is called.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach routes messages to send, usually (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) sender() func(tea.Msg) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.send
}

// Changed notifies the program that a new snapshot was published.
func (b *Bridge) Changed() {
	if send := b.sender(); send != nil {
		go send(changedMsg{})
	}
}

// Alert shows message in a dismissable dialog.
func (b *Bridge) Alert(message string) {
	send := b.sender()
	if send == nil {
		log.Warn().Str("alert", message).Msg("ui not attached; alert dropped")
		return
	}
	go send(alertMsg{message: message})
}

// Confirm shows a yes/no dialog and waits for the answer. A cancelled
// context, or a bridge with no program attached, answers no.
func (b *Bridge) Confirm(ctx context.Context, message string) bool {
	send := b.sender()
	if send == nil {
		return false
	}
	reply := make(chan bool, 1)
	send(confirmRequestMsg{message: message, reply: reply})
	select {
	case yes := <-reply:
		return yes
	case <-ctx.Done():
		return false
	}
}

// Messages

type changedMsg struct{}

type alertMsg struct {
	message string
}

type confirmRequestMsg struct {
	message string
	reply   chan<- bool
}
