package usecase

import "sync"

// keyedLock hands out one mutex per key so reconciliation attempts for the
// same Stripe invoice are serialized across drivers. Entries are never
// evicted; the key space is bounded by the invoice volume, which is modest.
type keyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedLock) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	if m, ok := k.locks[key]; ok {
		return m
	}
	m := &sync.Mutex{}
	k.locks[key] = m
	return m
}
