package atomic

import "sync/atomic"

// Acquire lets exactly one caller through until Release.
type Acquire struct {
	value uint32
}

func (a *Acquire) Acquire() (acquired bool) {
	return atomic.CompareAndSwapUint32(&a.value, 0, 1)
}

func (a *Acquire) IsRelease() (release bool) {
	return atomic.LoadUint32(&a.value) == 0
}

func (a *Acquire) Release() {
	atomic.StoreUint32(&a.value, 0)
}
