package carcare

import (
	"fmt"
	"strings"
)

func FormatTask(task Task) string {
	return fmt.Sprintf("Task: %s, Priority: %d, Customer: %s", task.Type, task.Priority, task.Customer)
}

func FormatOrder(order Order) string {
	return fmt.Sprintf("Order ID: %s, Customer: %s, Service: %s", order.OrderId, order.Customer, order.Service)
}

func FormatPriorityOrder(order PriorityOrder) string {
	return fmt.Sprintf("%s, Priority: %d", FormatOrder(order.Order), order.Priority)
}

// FormatCatalogLine renders one catalog node at the given depth, e.g. "    - Oil Change".
func FormatCatalogLine(name string, depth int) string {
	return strings.Repeat(CatalogIndent, depth) + "- " + name
}
