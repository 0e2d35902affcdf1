package monitor

import "github.com/grpc-boot/carcare/atomic"

// Metric counts one kind of console operation.
type Metric struct {
	name  string
	value atomic.Uint64
}

func (m *Metric) Name() string {
	return m.name
}

func (m *Metric) Add(delta uint64) (newValue uint64) {
	return m.value.Incr(delta)
}

func (m *Metric) Set(val uint64) {
	m.value.Set(val)
}

func (m *Metric) Get() (val uint64) {
	return m.value.Get()
}

func (m *Metric) Sample() Sample {
	return Sample{Name: m.name, Value: m.value.Get()}
}
