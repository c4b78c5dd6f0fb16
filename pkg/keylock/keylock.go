package keylock

import "sync"

// KeyLock provides mutual exclusion per string key. Two callers locking the
// same key serialize; callers on different keys proceed independently.
// Locks are kept for the lifetime of the process, which is fine for a bounded
// key space such as (follower, followee) pairs.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*sync.Mutex),
	}
}

func (kl *KeyLock) get(key string) *sync.Mutex {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	m, ok := kl.locks[key]
	if !ok {
		m = &sync.Mutex{}
		kl.locks[key] = m
	}
	return m
}

func (kl *KeyLock) Lock(key string) {
	kl.get(key).Lock()
}

func (kl *KeyLock) Unlock(key string) {
	kl.get(key).Unlock()
}
