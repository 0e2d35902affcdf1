package monitor

// Monitor holds the named operation counters of one demo session. Metrics
// are fixed at construction; unknown names are ignored.
type Monitor struct {
	appName    string
	nameList   []string
	metricList map[string]*Metric
}

type Sample struct {
	Name  string `yaml:"name" json:"name"`
	Value uint64 `yaml:"value" json:"value"`
}

func NewMonitor(appName string, nameList ...string) (m *Monitor) {
	m = &Monitor{
		appName:    appName,
		nameList:   make([]string, 0, len(nameList)),
		metricList: make(map[string]*Metric, len(nameList)),
	}

	for _, name := range nameList {
		if _, exists := m.metricList[name]; exists {
			continue
		}
		m.nameList = append(m.nameList, name)
		m.metricList[name] = &Metric{name: name}
	}

	return
}

func (m *Monitor) AppName() string {
	return m.appName
}

func (m *Monitor) Incr(name string) (newValue uint64, exists bool) {
	return m.Add(name, 1)
}

func (m *Monitor) Add(name string, val uint64) (newValue uint64, exists bool) {
	metric, exists := m.metricList[name]
	if exists {
		return metric.Add(val), exists
	}

	return 0, exists
}

func (m *Monitor) Set(name string, val uint64) {
	if metric, exists := m.metricList[name]; exists {
		metric.Set(val)
	}
}

func (m *Monitor) GetMetric(name string) (metric *Metric, exists bool) {
	metric, exists = m.metricList[name]
	return
}

func (m *Monitor) Get(name string) (val uint64, exists bool) {
	metric, exists := m.metricList[name]
	if !exists {
		return
	}
	return metric.Get(), true
}

// Snapshot lists every metric in registration order.
func (m *Monitor) Snapshot() (samples []Sample) {
	samples = make([]Sample, 0, len(m.nameList))
	for _, name := range m.nameList {
		samples = append(samples, m.metricList[name].Sample())
	}
	return samples
}
