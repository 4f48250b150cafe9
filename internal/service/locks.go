package service

import "sync"

// resourceLocks serializes the availability check and the insert for one
// parking id within this process. Entries are refcounted so the map does not
// grow with every parking ever booked.
type resourceLocks struct {
	mu sync.Mutex
	m  map[string]*resourceLock
}

type resourceLock struct {
	mu   sync.Mutex
	refs int
}

func newResourceLocks() *resourceLocks {
	return &resourceLocks{m: make(map[string]*resourceLock)}
}

func (l *resourceLocks) lock(key string) {
	l.mu.Lock()
	rl, ok := l.m[key]
	if !ok {
		rl = &resourceLock{}
		l.m[key] = rl
	}
	rl.refs++
	l.mu.Unlock()

	rl.mu.Lock()
}

func (l *resourceLocks) unlock(key string) {
	l.mu.Lock()
	rl := l.m[key]
	rl.refs--
	if rl.refs == 0 {
		delete(l.m, key)
	}
	l.mu.Unlock()

	rl.mu.Unlock()
}
