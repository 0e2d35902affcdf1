package container

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grpc-boot/carcare"
)

func orderIds(orders []carcare.Order) []string {
	ids := make([]string, len(orders))
	for index, order := range orders {
		ids[index] = order.OrderId
	}
	return ids
}

func order(id string) carcare.Order {
	return carcare.NewOrder(id, "customer "+id, "service "+id)
}

func TestOrderDeque_AddRearEvictsFront(t *testing.T) {
	deque := NewOrderDeque(3)
	for _, id := range []string{"A", "B", "C"} {
		if _, dropped := deque.AddRear(order(id)); dropped {
			t.Fatalf("want no eviction for %s", id)
		}
	}

	evicted, dropped := deque.AddRear(order("D"))
	if !dropped || evicted.OrderId != "A" {
		t.Fatalf("want A evicted, got %+v %t", evicted, dropped)
	}

	if diff := cmp.Diff([]string{"B", "C", "D"}, orderIds(deque.DisplayOrders())); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderDeque_AddFrontEvictsRear(t *testing.T) {
	deque := NewOrderDeque(3)
	deque.AddRear(order("A"))
	deque.AddRear(order("B"))
	deque.AddRear(order("C"))

	evicted, dropped := deque.AddFront(order("Z"))
	if !dropped || evicted.OrderId != "C" {
		t.Fatalf("want C evicted, got %+v %t", evicted, dropped)
	}

	if diff := cmp.Diff([]string{"Z", "A", "B"}, orderIds(deque.DisplayOrders())); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}

	if !deque.Full() || deque.Len() != 3 || deque.Cap() != 3 {
		t.Fatalf("want full 3/3, got %d/%d", deque.Len(), deque.Cap())
	}
}

func TestOrderDeque_RemoveBothEnds(t *testing.T) {
	deque := NewOrderDeque(5)
	deque.AddFront(order("B"))
	deque.AddFront(order("A"))
	deque.AddRear(order("C"))

	front, exists := deque.RemoveFront()
	if !exists || front.OrderId != "A" {
		t.Fatalf("want A, got %+v", front)
	}

	rear, exists := deque.RemoveRear()
	if !exists || rear.OrderId != "C" {
		t.Fatalf("want C, got %+v", rear)
	}

	if diff := cmp.Diff([]string{"B"}, orderIds(deque.DisplayOrders())); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderDeque_Empty(t *testing.T) {
	deque := NewOrderDeque(2)

	if _, exists := deque.RemoveFront(); exists {
		t.Fatal("want false, got true")
	}

	if _, exists := deque.RemoveRear(); exists {
		t.Fatal("want false, got true")
	}

	if deque.Len() != 0 {
		t.Fatalf("want 0, got %d", deque.Len())
	}

	if orders := deque.DisplayOrders(); len(orders) != 0 {
		t.Fatalf("want empty, got %v", orders)
	}
}

func TestOrderDeque_ZeroCapacity(t *testing.T) {
	deque := NewOrderDeque(0)

	evicted, dropped := deque.AddFront(order("A"))
	if !dropped || evicted.OrderId != "A" {
		t.Fatalf("want A dropped, got %+v %t", evicted, dropped)
	}

	if deque.Len() != 0 {
		t.Fatalf("want 0, got %d", deque.Len())
	}
}

func TestOrderDeque_NegativeCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want panic, got none")
		}
	}()

	NewOrderDeque(-1)
}

func TestOrderDeque_KeepsMostRecent(t *testing.T) {
	const capacity = 4
	deque := NewOrderDeque(capacity)

	var added []string
	for index := 0; index < 11; index++ {
		id := string(rune('a' + index))
		deque.AddRear(order(id))
		added = append(added, id)

		if deque.Len() > capacity {
			t.Fatalf("want <= %d, got %d", capacity, deque.Len())
		}
	}

	if diff := cmp.Diff(added[len(added)-capacity:], orderIds(deque.DisplayOrders())); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderDeque_DisplayDoesNotMutate(t *testing.T) {
	deque := NewOrderDeque(2)
	deque.AddRear(order("A"))

	orders := deque.DisplayOrders()
	orders[0].OrderId = "changed"

	if front, _ := deque.RemoveFront(); front.OrderId != "A" {
		t.Fatalf("want A, got %s", front.OrderId)
	}
}

func BenchmarkOrderDeque_AddRear(b *testing.B) {
	deque := NewOrderDeque(carcare.DefaultDequeCapacity)
	o := order("A")
	b.ResetTimer()
	for index := 0; index < b.N; index++ {
		deque.AddRear(o)
	}
}
