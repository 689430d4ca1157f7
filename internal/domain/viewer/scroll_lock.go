package viewer

import "sync"

// ScrollLock is a reference-counted page scroll suspension. The page is
// locked while at least one lease is held.
type ScrollLock struct {
	mu    sync.Mutex
	count int
}

// NewScrollLock creates an unlocked ScrollLock.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{}
}

// Acquire takes a lease. Every lease must be released exactly once;
// extra Release calls on the same lease are ignored.
func (l *ScrollLock) Acquire() *Lease {
	l.mu.Lock()
	l.count++
	l.mu.Unlock()

	return &Lease{lock: l}
}

// Locked reports whether any lease is outstanding.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.count > 0
}

func (l *ScrollLock) release() {
	l.mu.Lock()
	if l.count > 0 {
		l.count--
	}
	l.mu.Unlock()
}

// Lease is one holder's share of a ScrollLock.
type Lease struct {
	lock *ScrollLock
	once sync.Once
}

// Release gives the lease back. Safe to call more than once.
func (le *Lease) Release() {
	if le == nil {
		return
	}
	le.once.Do(le.lock.release)
}
