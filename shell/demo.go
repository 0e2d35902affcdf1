package shell

import "github.com/pkg/errors"

const (
	DemoTasks          = "tasks"
	DemoDeque          = "deque"
	DemoOrders         = "orders"
	DemoPriorityOrders = "sorted-orders"
	DemoCatalog        = "catalog"
)

var DemoNames = []string{DemoTasks, DemoDeque, DemoOrders, DemoPriorityOrders, DemoCatalog}

// NewDemo builds the named demo with its structure seeded from conf.
func NewDemo(name string, conf *Config) (Demo, error) {
	if conf == nil {
		conf = DefaultConfig()
	}

	switch name {
	case DemoTasks:
		return NewTaskDemo(conf.Seed.Tasks), nil
	case DemoDeque:
		return NewDequeDemo(conf.Capacity, conf.Seed.Orders), nil
	case DemoOrders:
		return NewOrderDemo(conf.Seed.Orders), nil
	case DemoPriorityOrders:
		return NewPriorityOrderDemo(conf.Seed.PriorityOrders), nil
	case DemoCatalog:
		return NewCatalogDemo(), nil
	}

	return nil, errors.Wrap(ErrUnknownDemo, name)
}
