package container

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderList_AddAndDisplay(t *testing.T) {
	list := NewOrderList()
	if lines := list.DisplayOrders(); len(lines) != 0 {
		t.Fatalf("want empty, got %v", lines)
	}

	list.AddOrder("1", "Jane", "Oil Change")
	list.AddOrder("2", "John", "Tire Rotation")

	want := []string{
		"Order ID: 1, Customer: Jane, Service: Oil Change",
		"Order ID: 2, Customer: John, Service: Tire Rotation",
	}
	if diff := cmp.Diff(want, list.DisplayOrders()); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}

	if list.Len() != 2 {
		t.Fatalf("want 2, got %d", list.Len())
	}
}

func TestOrderList_RemoveOrder(t *testing.T) {
	list := NewOrderList()
	for _, id := range []string{"1", "2", "3", "2"} {
		list.AddOrder(id, "c", "s")
	}

	// head
	if !list.RemoveOrder("1") {
		t.Fatal("want true, got false")
	}

	// first duplicate only
	if !list.RemoveOrder("2") {
		t.Fatal("want true, got false")
	}

	if diff := cmp.Diff([]string{"3", "2"}, orderIds(list.Orders())); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}

	// tail
	if !list.RemoveOrder("2") {
		t.Fatal("want true, got false")
	}

	if _, exists := list.FindOrder("2"); exists {
		t.Fatal("want false, got true")
	}

	if list.RemoveOrder("missing") {
		t.Fatal("want false, got true")
	}

	if diff := cmp.Diff([]string{"3"}, orderIds(list.Orders())); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}

	if !list.RemoveOrder("3") || list.Len() != 0 {
		t.Fatalf("want empty list, got %d", list.Len())
	}

	if list.RemoveOrder("3") {
		t.Fatal("want false on empty list, got true")
	}
}

func TestOrderList_FindOrder(t *testing.T) {
	list := NewOrderList()
	list.AddOrder("7", "Jane", "Engine Diagnosis")

	order, exists := list.FindOrder("7")
	if !exists || order.Service != "Engine Diagnosis" {
		t.Fatalf("want order 7, got %+v %t", order, exists)
	}
}
