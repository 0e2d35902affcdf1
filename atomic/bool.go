package atomic

import "sync/atomic"

// Bool is a flag written by one goroutine and polled by another, like the
// session's closed flag.
type Bool struct {
	value uint32
}

func boolToUint32(value bool) uint32 {
	if value {
		return 1
	}
	return 0
}

func (b *Bool) Set(value bool) {
	atomic.StoreUint32(&b.value, boolToUint32(value))
}

func (b *Bool) Get() (val bool) {
	return atomic.LoadUint32(&b.value) == 1
}

// CompareAndSwap flips the flag only when it still holds old.
func (b *Bool) CompareAndSwap(old, value bool) (swapped bool) {
	return atomic.CompareAndSwapUint32(&b.value, boolToUint32(old), boolToUint32(value))
}
