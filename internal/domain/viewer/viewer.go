package viewer

import (
	"sync"
	"time"

	"tarjeta/internal/domain/contact"
	"tarjeta/internal/errors"
)

// State of a Viewer.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// CloseReason records which exit path closed the viewer.
type CloseReason string

const (
	CloseBackdrop      CloseReason = "backdrop"
	CloseControl       CloseReason = "close_control"
	CloseFooterControl CloseReason = "footer_control"
	CloseUnmount       CloseReason = "unmount"
	CloseAfterAction   CloseReason = "after_action"
)

// ErrNotOpen is returned when an action is triggered on a closed viewer.
var ErrNotOpen = errors.New("viewer is not open")

// ErrNoAction is returned when the open content has no action control.
var ErrNoAction = errors.New("content has no action")

// Timer is the part of *time.Timer the viewer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithAfterFunc replaces the scheduler used for delayed closes.
func WithAfterFunc(fn AfterFunc) Option {
	return func(v *Viewer) { v.afterFunc = fn }
}

// WithOnClose registers a callback invoked after every close.
func WithOnClose(fn func(CloseReason)) Option {
	return func(v *Viewer) { v.onClose = fn }
}

// Viewer is a single overlay instance. It holds a scroll lease while open
// and gives it back on every close path.
type Viewer struct {
	mu         sync.Mutex
	lock       *ScrollLock
	lease      *Lease
	content    Content
	state      State
	pending    Timer
	generation uint64
	afterFunc  AfterFunc
	onClose    func(CloseReason)
}

// New creates a closed viewer sharing the page's scroll lock.
func New(lock *ScrollLock, opts ...Option) *Viewer {
	v := &Viewer{
		lock:      lock,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Open shows content. Opening an already open viewer swaps the content and keeps the lease.
func (v *Viewer) Open(content Content) Surface {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.stopPendingLocked()
	if v.state == StateClosed {
		v.lease = v.lock.Acquire()
		v.state = StateOpen
	}
	v.generation++
	v.content = content

	return content.Surface()
}

// Activate triggers the surface's single action. External buttons close at
// once; action panels close after ActionCloseDelay.
func (v *Viewer) Activate() (contact.Action, error) {
	v.mu.Lock()

	if v.state != StateOpen {
		v.mu.Unlock()

		return contact.Action{}, ErrNotOpen
	}

	surface := v.content.Surface()
	switch surface.Kind {
	case SurfaceExternalButton:
		v.closeLocked()
		onClose := v.onClose
		v.mu.Unlock()

		if onClose != nil {
			onClose(CloseAfterAction)
		}

		return surface.Action, nil
	case SurfaceActionPanel:
		v.stopPendingLocked()
		generation := v.generation
		v.pending = v.afterFunc(ActionCloseDelay, func() {
			v.closeGeneration(generation, CloseAfterAction)
		})
		v.mu.Unlock()

		return surface.Action, nil
	default:
		v.mu.Unlock()

		return contact.Action{}, ErrNoAction
	}
}

// Close releases the scroll lease. It is idempotent and never fails.
func (v *Viewer) Close(reason CloseReason) {
	v.mu.Lock()
	closed := v.closeLocked()
	onClose := v.onClose
	v.mu.Unlock()

	if closed && onClose != nil {
		onClose(reason)
	}
}

// closeGeneration closes only if the viewer has not been reopened since the
// delayed close was scheduled.
func (v *Viewer) closeGeneration(generation uint64, reason CloseReason) {
	v.mu.Lock()
	if v.generation != generation {
		v.mu.Unlock()

		return
	}
	closed := v.closeLocked()
	onClose := v.onClose
	v.mu.Unlock()

	if closed && onClose != nil {
		onClose(reason)
	}
}

// Unmount is the cleanup path for a viewer torn down without a user close.
func (v *Viewer) Unmount() {
	v.Close(CloseUnmount)
}

// State returns the current state.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

func (v *Viewer) closeLocked() bool {
	v.stopPendingLocked()
	v.lease.Release()
	v.lease = nil

	if v.state == StateClosed {
		return false
	}
	v.state = StateClosed
	v.content = Content{}

	return true
}

func (v *Viewer) stopPendingLocked() {
	if v.pending != nil {
		v.pending.Stop()
		v.pending = nil
	}
}
