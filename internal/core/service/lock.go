package service

import (
	"hash/fnv"
	"sync"
)

const defaultStripes = 64

// keyedMutex serializes critical sections per string key using a fixed set
// of striped locks. Keys are mapped to stripes by FNV hashing, so two calls
// with the same key always contend on the same mutex. Distinct keys may
// share a stripe; that costs throughput, never correctness.
type keyedMutex struct {
	stripes []sync.Mutex
}

// newKeyedMutex creates a keyedMutex with n stripes.
// If n <= 0, defaultStripes is used.
func newKeyedMutex(n int) *keyedMutex {
	if n <= 0 {
		n = defaultStripes
	}
	return &keyedMutex{stripes: make([]sync.Mutex, n)}
}

// Lock acquires the stripe for key and returns its unlock function.
func (m *keyedMutex) Lock(key string) func() {
	mu := &m.stripes[m.stripeIndex(key)]
	mu.Lock()
	return mu.Unlock
}

// stripeIndex maps a key deterministically to a stripe index.
func (m *keyedMutex) stripeIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(m.stripes)
}
