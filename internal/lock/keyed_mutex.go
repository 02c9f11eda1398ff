// Package lock provides a mutex keyed by entity ID so that concurrent
// operations on the same attempt serialize while unrelated attempts
// proceed independently.
package lock

import "sync"

type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uint]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[uint]*entry)}
}

// Lock blocks until the mutex for key is held by the caller.
func (k *KeyedMutex) Lock(key uint) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. The entry is dropped once no other
// goroutine is waiting on it.
func (k *KeyedMutex) Unlock(key uint) {
	k.mu.Lock()
	e := k.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
