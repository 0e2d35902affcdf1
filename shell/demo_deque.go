package shell

import (
	"fmt"
	"strconv"

	"github.com/grpc-boot/carcare"
	"github.com/grpc-boot/carcare/container"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	MetricOrdersAdded   = "orders_added"
	MetricOrdersRemoved = "orders_removed"
	MetricEvictions     = "evictions"
	MetricRemoveMisses  = "remove_misses"
)

var orderHeader = table.Row{"Order ID", "Customer", "Service"}

type DequeDemo struct {
	deque *container.OrderDeque
}

func NewDequeDemo(capacity int, seed []carcare.Order) *DequeDemo {
	demo := &DequeDemo{deque: container.NewOrderDeque(capacity)}
	for _, order := range seed {
		demo.deque.AddRear(order)
	}
	return demo
}

func (dd *DequeDemo) Name() string {
	return DemoDeque
}

func (dd *DequeDemo) Title() string {
	return "Order Management - Deque"
}

func (dd *DequeDemo) Metrics() []string {
	return []string{MetricOrdersAdded, MetricOrdersRemoved, MetricEvictions, MetricRemoveMisses}
}

func (dd *DequeDemo) Usage() []Usage {
	return []Usage{
		{Command: "add-front <id|auto> <customer> <service>", Description: "add an order at the front"},
		{Command: "add-rear <id|auto> <customer> <service>", Description: "add an order at the rear"},
		{Command: "remove-front", Description: "remove the front order"},
		{Command: "remove-rear", Description: "remove the rear order"},
		{Command: "list", Description: "show orders front to rear"},
		{Command: "status", Description: "show size and capacity"},
	}
}

func (dd *DequeDemo) Deque() *container.OrderDeque {
	return dd.deque
}

func (dd *DequeDemo) Handle(s *Session, cmd Command) (handled bool, err error) {
	switch cmd.Name {
	case "add-front":
		return true, dd.add(s, cmd, true)
	case "add-rear":
		return true, dd.add(s, cmd, false)
	case "remove-front":
		return true, dd.remove(s, true)
	case "remove-rear":
		return true, dd.remove(s, false)
	case "list", "refresh":
		return true, dd.list(s)
	case "status":
		s.Renderer().Println("Orders: " + strconv.Itoa(dd.deque.Len()) + "/" + strconv.Itoa(dd.deque.Cap()))
		return true, nil
	}
	return false, nil
}

func (dd *DequeDemo) add(s *Session, cmd Command, front bool) error {
	if err := requireFields(cmd.Arg(0), cmd.Arg(1), cmd.Arg(2)); err != nil {
		return err
	}

	orderId, err := s.OrderId(cmd.Arg(0))
	if err != nil {
		return err
	}

	var (
		order   = carcare.NewOrder(orderId, cmd.Arg(1), cmd.Arg(2))
		evicted carcare.Order
		dropped bool
		end     = "rear"
	)

	if front {
		end = "front"
		evicted, dropped = dd.deque.AddFront(order)
	} else {
		evicted, dropped = dd.deque.AddRear(order)
	}

	s.Monitor().Incr(MetricOrdersAdded)
	if dropped {
		s.Monitor().Incr(MetricEvictions)
		s.Logger().Info("deque full, order evicted",
			zap.String("evicted", evicted.OrderId),
			zap.String("added", orderId),
			zap.Int("capacity", dd.deque.Cap()))
	}

	s.Renderer().Success("Order added to the %s!", end)
	return dd.list(s)
}

func (dd *DequeDemo) remove(s *Session, front bool) error {
	var (
		order  carcare.Order
		exists bool
		end    = "rear"
	)

	if front {
		end = "front"
		order, exists = dd.deque.RemoveFront()
	} else {
		order, exists = dd.deque.RemoveRear()
	}

	if !exists {
		s.Monitor().Incr(MetricRemoveMisses)
		if err := dd.list(s); err != nil {
			return err
		}
		return errors.Errorf("No orders to remove from %s.", end)
	}

	s.Monitor().Incr(MetricOrdersRemoved)
	s.Renderer().Success("Removed order from %s: %s", end, carcare.FormatOrder(order))
	return dd.list(s)
}

func (dd *DequeDemo) list(s *Session) error {
	orders := dd.deque.DisplayOrders()
	return s.Renderer().RenderListing(Listing{
		Empty: "No orders available.",
		Lines: lo.Map(orders, func(order carcare.Order, index int) string {
			return fmt.Sprintf("%d. %s", index+1, carcare.FormatOrder(order))
		}),
		Header: append(table.Row{"#"}, orderHeader...),
		Rows: lo.Map(orders, func(order carcare.Order, index int) table.Row {
			return table.Row{index + 1, order.OrderId, order.Customer, order.Service}
		}),
		Items: orders,
	})
}
