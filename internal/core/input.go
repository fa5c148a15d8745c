package core

// Intent is a logical player request, abstracted from physical keys.
// Front ends translate key presses into intents; the simulation consumes them.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentConfirm
	IntentCancel
	IntentJumpPressed
	IntentDuckPressed
	IntentDuckReleased
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentConfirm:
		return "Confirm"
	case IntentCancel:
		return "Cancel"
	case IntentJumpPressed:
		return "JumpPressed"
	case IntentDuckPressed:
		return "DuckPressed"
	case IntentDuckReleased:
		return "DuckReleased"
	default:
		return "Unknown"
	}
}

// IntentQueue buffers intents between ticks, preserving arrival order.
type IntentQueue struct {
	items []Intent
}

// Push appends an intent. IntentNone is dropped.
func (q *IntentQueue) Push(i Intent) {
	if i == IntentNone {
		return
	}
	q.items = append(q.items, i)
}

// Len returns the number of queued intents.
func (q *IntentQueue) Len() int {
	return len(q.items)
}

// Drain returns all queued intents in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *IntentQueue) Drain() []Intent {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]Intent, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}
