package shell

import (
	"strconv"

	"github.com/grpc-boot/carcare"
	"github.com/grpc-boot/carcare/container"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const MetricSorts = "sorts"

type PriorityOrderDemo struct {
	list *container.PriorityOrderList
}

func NewPriorityOrderDemo(seed []carcare.PriorityOrder) *PriorityOrderDemo {
	demo := &PriorityOrderDemo{list: container.NewPriorityOrderList()}
	for _, order := range seed {
		demo.list.AddOrder(order.OrderId, order.Customer, order.Service, order.Priority)
	}
	return demo
}

func (pd *PriorityOrderDemo) Name() string {
	return DemoPriorityOrders
}

func (pd *PriorityOrderDemo) Title() string {
	return "Car Maintenance Orders - Singly Linked List"
}

func (pd *PriorityOrderDemo) Metrics() []string {
	return []string{MetricOrdersAdded, MetricOrdersRemoved, MetricRemoveMisses, MetricSorts}
}

func (pd *PriorityOrderDemo) Usage() []Usage {
	return []Usage{
		{Command: "add <id|auto> <customer> <service> <priority>", Description: "append an order, priority 1-High, 2-Medium, 3-Low"},
		{Command: "sort", Description: "sort orders by priority"},
		{Command: "remove <id>", Description: "remove the first order with id"},
		{Command: "list", Description: "show orders"},
	}
}

func (pd *PriorityOrderDemo) List() *container.PriorityOrderList {
	return pd.list
}

func (pd *PriorityOrderDemo) Handle(s *Session, cmd Command) (handled bool, err error) {
	switch cmd.Name {
	case "add":
		return true, pd.add(s, cmd)
	case "sort":
		pd.list.SortByPriority()
		s.Monitor().Incr(MetricSorts)
		s.Logger().Debug("orders sorted", zap.Int("orders", pd.list.Len()))
		s.Renderer().Success("Orders sorted based on priority!")
		return true, pd.render(s)
	case "remove":
		return true, removeOrder(s, cmd, pd.list.RemoveOrder, func() error { return pd.render(s) })
	case "list", "refresh":
		return true, pd.render(s)
	}
	return false, nil
}

func (pd *PriorityOrderDemo) add(s *Session, cmd Command) error {
	if err := requireFields(cmd.Arg(0), cmd.Arg(1), cmd.Arg(2), cmd.Arg(3)); err != nil {
		return err
	}

	priority, err := parseOrderPriority(cmd.Arg(3))
	if err != nil {
		return err
	}

	orderId, err := s.OrderId(cmd.Arg(0))
	if err != nil {
		return err
	}

	pd.list.AddOrder(orderId, cmd.Arg(1), cmd.Arg(2), priority)
	s.Monitor().Incr(MetricOrdersAdded)
	s.Renderer().Success("Order added successfully!")
	return pd.render(s)
}

func (pd *PriorityOrderDemo) render(s *Session) error {
	orders := pd.list.Orders()
	return s.Renderer().RenderListing(Listing{
		Empty:  "No orders available.",
		Lines:  pd.list.DisplayOrders(),
		Header: append(append(table.Row{}, orderHeader...), "Priority"),
		Rows: lo.Map(orders, func(order carcare.PriorityOrder, _ int) table.Row {
			return table.Row{order.OrderId, order.Customer, order.Service, strconv.Itoa(int(order.Priority)) + " (" + order.Priority.String() + ")"}
		}),
		Items: orders,
	})
}
