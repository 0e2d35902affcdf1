package atomic

import "sync/atomic"

// Uint64 is a counter that may be read from another goroutine while the
// owning session keeps incrementing it.
type Uint64 struct {
	value uint64
}

func (u64 *Uint64) Set(value uint64) {
	atomic.StoreUint64(&u64.value, value)
}

func (u64 *Uint64) Get() (value uint64) {
	return atomic.LoadUint64(&u64.value)
}

func (u64 *Uint64) Incr(delta uint64) (newValue uint64) {
	return atomic.AddUint64(&u64.value, delta)
}
