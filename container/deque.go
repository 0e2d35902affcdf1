package container

import "github.com/grpc-boot/carcare"

// OrderDeque is a fixed-capacity double-ended queue on a ring buffer.
// Pushing onto a full deque drops the order at the opposite end.
type OrderDeque struct {
	items  []carcare.Order
	head   int
	length int
}

func NewOrderDeque(capacity int) *OrderDeque {
	if capacity < 0 {
		panic("param capacity must not be negative")
	}

	return &OrderDeque{
		items: make([]carcare.Order, capacity),
	}
}

func (od *OrderDeque) AddFront(order carcare.Order) (evicted carcare.Order, dropped bool) {
	capacity := len(od.items)
	if capacity == 0 {
		return order, true
	}

	if od.length == capacity {
		evicted, dropped = od.RemoveRear()
	}

	od.head = (od.head - 1 + capacity) % capacity
	od.items[od.head] = order
	od.length++
	return
}

func (od *OrderDeque) AddRear(order carcare.Order) (evicted carcare.Order, dropped bool) {
	capacity := len(od.items)
	if capacity == 0 {
		return order, true
	}

	if od.length == capacity {
		evicted, dropped = od.RemoveFront()
	}

	od.items[od.index(od.length)] = order
	od.length++
	return
}

func (od *OrderDeque) RemoveFront() (order carcare.Order, exists bool) {
	if od.length == 0 {
		return
	}

	order = od.items[od.head]
	od.items[od.head] = carcare.Order{}
	od.head = (od.head + 1) % len(od.items)
	od.length--
	return order, true
}

func (od *OrderDeque) RemoveRear() (order carcare.Order, exists bool) {
	if od.length == 0 {
		return
	}

	rear := od.index(od.length - 1)
	order = od.items[rear]
	od.items[rear] = carcare.Order{}
	od.length--
	return order, true
}

// DisplayOrders copies the orders front to rear.
func (od *OrderDeque) DisplayOrders() (orders []carcare.Order) {
	orders = make([]carcare.Order, od.length)
	for index := 0; index < od.length; index++ {
		orders[index] = od.items[od.index(index)]
	}
	return orders
}

func (od *OrderDeque) Len() int {
	return od.length
}

func (od *OrderDeque) Cap() int {
	return len(od.items)
}

func (od *OrderDeque) Full() bool {
	return od.length == len(od.items)
}

func (od *OrderDeque) index(offset int) int {
	return (od.head + offset) % len(od.items)
}
