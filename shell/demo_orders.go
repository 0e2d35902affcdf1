package shell

import (
	"github.com/grpc-boot/carcare"
	"github.com/grpc-boot/carcare/container"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type OrderDemo struct {
	list *container.OrderList
}

func NewOrderDemo(seed []carcare.Order) *OrderDemo {
	demo := &OrderDemo{list: container.NewOrderList()}
	for _, order := range seed {
		demo.list.AddOrder(order.OrderId, order.Customer, order.Service)
	}
	return demo
}

func (od *OrderDemo) Name() string {
	return DemoOrders
}

func (od *OrderDemo) Title() string {
	return "Car Maintenance Orders - Singly Linked List"
}

func (od *OrderDemo) Metrics() []string {
	return []string{MetricOrdersAdded, MetricOrdersRemoved, MetricRemoveMisses}
}

func (od *OrderDemo) Usage() []Usage {
	return []Usage{
		{Command: "add <id|auto> <customer> <service>", Description: "append an order"},
		{Command: "remove <id>", Description: "remove the first order with id"},
		{Command: "list", Description: "show orders in arrival order"},
	}
}

func (od *OrderDemo) List() *container.OrderList {
	return od.list
}

func (od *OrderDemo) Handle(s *Session, cmd Command) (handled bool, err error) {
	switch cmd.Name {
	case "add":
		if err = requireFields(cmd.Arg(0), cmd.Arg(1), cmd.Arg(2)); err != nil {
			return true, err
		}

		var orderId string
		if orderId, err = s.OrderId(cmd.Arg(0)); err != nil {
			return true, err
		}

		od.list.AddOrder(orderId, cmd.Arg(1), cmd.Arg(2))
		s.Monitor().Incr(MetricOrdersAdded)
		s.Renderer().Success("Order added successfully!")
		return true, od.render(s)
	case "remove":
		return true, removeOrder(s, cmd, od.list.RemoveOrder, func() error { return od.render(s) })
	case "list", "refresh":
		return true, od.render(s)
	}
	return false, nil
}

func (od *OrderDemo) render(s *Session) error {
	orders := od.list.Orders()
	return s.Renderer().RenderListing(Listing{
		Empty:  "No orders available.",
		Lines:  od.list.DisplayOrders(),
		Header: orderHeader,
		Rows: lo.Map(orders, func(order carcare.Order, _ int) table.Row {
			return table.Row{order.OrderId, order.Customer, order.Service}
		}),
		Items: orders,
	})
}

// removeOrder serves "remove <id>" for both linked list demos.
func removeOrder(s *Session, cmd Command, remove func(orderId string) bool, render func() error) error {
	orderId := cmd.Arg(0)
	if requireFields(orderId) != nil {
		return ErrMissingOrderId
	}

	if !remove(orderId) {
		s.Monitor().Incr(MetricRemoveMisses)
		if err := render(); err != nil {
			return err
		}
		return errors.Errorf("Order %s not found.", orderId)
	}

	s.Monitor().Incr(MetricOrdersRemoved)
	s.Renderer().Success("Order %s removed successfully!", orderId)
	return render()
}
