package container

import "github.com/grpc-boot/carcare"

type priorityOrderNode struct {
	order carcare.PriorityOrder
	next  *priorityOrderNode
}

// PriorityOrderList is a singly linked list of orders that can be reordered
// by priority with a stable insertion sort.
type PriorityOrderList struct {
	head   *priorityOrderNode
	length int
}

func NewPriorityOrderList() *PriorityOrderList {
	return &PriorityOrderList{}
}

func (pl *PriorityOrderList) AddOrder(orderId, customer, service string, priority carcare.Priority) {
	node := &priorityOrderNode{order: carcare.NewPriorityOrder(orderId, customer, service, priority)}
	if pl.head == nil {
		pl.head = node
	} else {
		current := pl.head
		for current.next != nil {
			current = current.next
		}
		current.next = node
	}
	pl.length++
}

// SortByPriority moves every node, head to tail, into a new list in front of
// the first node with a strictly greater priority. Equal priorities keep
// their relative order.
func (pl *PriorityOrderList) SortByPriority() {
	var sorted *priorityOrderNode

	for current := pl.head; current != nil; {
		next := current.next

		link := &sorted
		for *link != nil && (*link).order.Priority <= current.order.Priority {
			link = &(*link).next
		}
		current.next = *link
		*link = current

		current = next
	}

	pl.head = sorted
}

// Sorted reports whether priorities are non-decreasing head to tail.
func (pl *PriorityOrderList) Sorted() bool {
	for current := pl.head; current != nil && current.next != nil; current = current.next {
		if current.next.order.Priority < current.order.Priority {
			return false
		}
	}
	return true
}

func (pl *PriorityOrderList) RemoveOrder(orderId string) (removed bool) {
	for link := &pl.head; *link != nil; link = &(*link).next {
		if (*link).order.OrderId == orderId {
			*link = (*link).next
			pl.length--
			return true
		}
	}
	return false
}

func (pl *PriorityOrderList) Orders() (orders []carcare.PriorityOrder) {
	orders = make([]carcare.PriorityOrder, 0, pl.length)
	for current := pl.head; current != nil; current = current.next {
		orders = append(orders, current.order)
	}
	return orders
}

func (pl *PriorityOrderList) DisplayOrders() (lines []string) {
	lines = make([]string, 0, pl.length)
	for current := pl.head; current != nil; current = current.next {
		lines = append(lines, carcare.FormatPriorityOrder(current.order))
	}
	return lines
}

func (pl *PriorityOrderList) Len() int {
	return pl.length
}
