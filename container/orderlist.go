package container

import "github.com/grpc-boot/carcare"

type orderNode struct {
	order carcare.Order
	next  *orderNode
}

// OrderList is a singly linked list of orders kept in arrival order.
type OrderList struct {
	head   *orderNode
	length int
}

func NewOrderList() *OrderList {
	return &OrderList{}
}

// AddOrder walks to the tail and appends.
func (ol *OrderList) AddOrder(orderId, customer, service string) {
	node := &orderNode{order: carcare.NewOrder(orderId, customer, service)}
	if ol.head == nil {
		ol.head = node
	} else {
		current := ol.head
		for current.next != nil {
			current = current.next
		}
		current.next = node
	}
	ol.length++
}

// RemoveOrder unlinks the first order with orderId.
func (ol *OrderList) RemoveOrder(orderId string) (removed bool) {
	for link := &ol.head; *link != nil; link = &(*link).next {
		if (*link).order.OrderId == orderId {
			*link = (*link).next
			ol.length--
			return true
		}
	}
	return false
}

func (ol *OrderList) FindOrder(orderId string) (order carcare.Order, exists bool) {
	for current := ol.head; current != nil; current = current.next {
		if current.order.OrderId == orderId {
			return current.order, true
		}
	}
	return
}

func (ol *OrderList) Orders() (orders []carcare.Order) {
	orders = make([]carcare.Order, 0, ol.length)
	for current := ol.head; current != nil; current = current.next {
		orders = append(orders, current.order)
	}
	return orders
}

func (ol *OrderList) DisplayOrders() (lines []string) {
	lines = make([]string, 0, ol.length)
	for current := ol.head; current != nil; current = current.next {
		lines = append(lines, carcare.FormatOrder(current.order))
	}
	return lines
}

func (ol *OrderList) Len() int {
	return ol.length
}
