package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBridge_DetachedAnswersNo(t *testing.T) {
	b := NewBridge()
	b.Changed()
	b.Alert("ignored")
	if b.Confirm(context.Background(), "Delete?") {
		t.Fatalf("detached bridge confirmed")
	}
}

func TestBridge_ConfirmWaitsForReply(t *testing.T) {
	b := NewBridge()
	msgs := make(chan tea.Msg, 4)
	b.Attach(func(msg tea.Msg) { msgs <- msg })

	result := make(chan bool, 1)
	go func() { result <- b.Confirm(context.Background(), "Delete?") }()

	var req confirmRequestMsg
	select {
	case msg := <-msgs:
		var ok bool
		if req, ok = msg.(confirmRequestMsg); !ok {
			t.Fatalf("got %T, want confirmRequestMsg", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no confirm request sent")
	}
	if req.message != "Delete?" {
		t.Fatalf("message = %q", req.message)
	}

	req.reply <- true
	select {
	case got := <-result:
		if !got {
			t.Fatalf("Confirm = false, want true")
		}
	case <-time.After(time.Second):
		t.Fatal("Confirm did not return")
	}
}

func TestBridge_ConfirmCancelledContext(t *testing.T) {
	b := NewBridge()
	b.Attach(func(tea.Msg) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if b.Confirm(ctx, "Delete?") {
		t.Fatalf("cancelled confirm answered yes")
	}
}

func TestBridge_AlertAndChangedAreDelivered(t *testing.T) {
	b := NewBridge()
	msgs := make(chan tea.Msg, 4)
	b.Attach(func(msg tea.Msg) { msgs <- msg })

	b.Alert("Failed to save score: 400 - bad score")
	b.Changed()

	var sawAlert, sawChanged bool
	for i := 0; i < 2; i++ {
		select {
		case msg := <-msgs:
			switch m := msg.(type) {
			case alertMsg:
				sawAlert = m.message == "Failed to save score: 400 - bad score"
			case changedMsg:
				sawChanged = true
			}
		case <-time.After(time.Second):
			t.Fatal("message not delivered")
		}
	}
	if !sawAlert || !sawChanged {
		t.Fatalf("alert=%v changed=%v", sawAlert, sawChanged)
	}
}

func TestConfirmModal_AnswersOnce(t *testing.T) {
	reply := make(chan bool, 1)
	modal := newConfirmModal("Delete?", reply)
	keys := DefaultKeyMap()

	if _, _, closed := modal.Update(runes("q"), keys); closed {
		t.Fatalf("unrelated key closed the dialog")
	}
	if _, _, closed := modal.Update(runes("y"), keys); !closed {
		t.Fatalf("y should close the dialog")
	}
	// A second answer must not block or overwrite the first.
	modal.answer(false)

	if got := <-reply; !got {
		t.Fatalf("reply = false, want true")
	}
	select {
	case extra := <-reply:
		t.Fatalf("unexpected second reply %v", extra)
	default:
	}
}

func TestAlertModal_Dismiss(t *testing.T) {
	modal := &alertModal{message: "boom"}
	keys := DefaultKeyMap()
	if _, _, closed := modal.Update(runes("x"), keys); closed {
		t.Fatalf("x should not dismiss")
	}
	if _, _, closed := modal.Update(tea.KeyMsg{Type: tea.KeyEsc}, keys); !closed {
		t.Fatalf("esc should dismiss")
	}
}
