package domain

import "testing"

func TestCanTransitionChain(t *testing.T) {
	chain := []OrderStatus{
		OrderStatusNew,
		OrderStatusInProgress,
		OrderStatusReady,
		OrderStatusOnTheWay,
		OrderStatusDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		if !CanTransition(chain[i], chain[i+1]) {
			t.Fatalf("%s -> %s must be allowed", chain[i], chain[i+1])
		}
	}
}

func TestCanTransitionCompletedFromAnyNonTerminal(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusNew, OrderStatusInProgress, OrderStatusReady, OrderStatusOnTheWay} {
		if !CanTransition(from, OrderStatusCompleted) {
			t.Fatalf("%s -> completed must be allowed", from)
		}
	}
}

func TestCanTransitionTerminalStates(t *testing.T) {
	targets := []OrderStatus{
		OrderStatusNew, OrderStatusInProgress, OrderStatusReady,
		OrderStatusOnTheWay, OrderStatusDelivered, OrderStatusCompleted,
	}
	for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCompleted} {
		for _, to := range targets {
			if CanTransition(from, to) {
				t.Fatalf("%s -> %s must be rejected, %s is terminal", from, to, from)
			}
		}
	}
}

func TestCanTransitionNoSkipsOrBackwards(t *testing.T) {
	cases := []struct{ from, to OrderStatus }{
		{OrderStatusNew, OrderStatusReady},
		{OrderStatusNew, OrderStatusDelivered},
		{OrderStatusInProgress, OrderStatusNew},
		{OrderStatusOnTheWay, OrderStatusReady},
		{OrderStatusReady, OrderStatusDelivered},
	}
	for _, tc := range cases {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("%s -> %s must be rejected", tc.from, tc.to)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	if !ValidOrderStatus(OrderStatusOnTheWay) {
		t.Fatalf("on_the_way is a valid status")
	}
	if ValidOrderStatus("shipped") {
		t.Fatalf("unknown status must be invalid")
	}
}
