package carcare

type Priority int

func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return "Unknown"
}

// Task is a maintenance job ordered by Priority in the task tree.
type Task struct {
	Type     string `yaml:"type" json:"type"`
	Priority int    `yaml:"priority" json:"priority"`
	Customer string `yaml:"customer" json:"customer"`
}

func NewTask(taskType string, priority int, customer string) Task {
	return Task{
		Type:     taskType,
		Priority: priority,
		Customer: customer,
	}
}

type Order struct {
	OrderId  string `yaml:"order_id" json:"order_id"`
	Customer string `yaml:"customer" json:"customer"`
	Service  string `yaml:"service" json:"service"`
}

func NewOrder(orderId, customer, service string) Order {
	return Order{
		OrderId:  orderId,
		Customer: customer,
		Service:  service,
	}
}

type PriorityOrder struct {
	Order `yaml:",inline"`

	Priority Priority `yaml:"priority" json:"priority"`
}

func NewPriorityOrder(orderId, customer, service string, priority Priority) PriorityOrder {
	return PriorityOrder{
		Order:    NewOrder(orderId, customer, service),
		Priority: priority,
	}
}
