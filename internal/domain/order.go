package domain

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusOnTheWay   OrderStatus = "on_the_way"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
)

// BuyingType selects between self-pickup and courier delivery.
type BuyingType string

const (
	BuyingTypeSelf     BuyingType = "self"
	BuyingTypeDelivery BuyingType = "delivery"
)

// statusSuccessor maps each status to the next step of the fulfilment chain.
// "completed" is additionally reachable from every non-terminal status;
// "delivered" and "completed" are terminal.
var statusSuccessor = map[OrderStatus]OrderStatus{
	OrderStatusNew:        OrderStatusInProgress,
	OrderStatusInProgress: OrderStatusReady,
	OrderStatusReady:      OrderStatusOnTheWay,
	OrderStatusOnTheWay:   OrderStatusDelivered,
}

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusReady,
		OrderStatusOnTheWay, OrderStatusDelivered, OrderStatusCompleted:
		return true
	}
	return false
}

// ValidBuyingType reports whether t is a known buying type.
func ValidBuyingType(t BuyingType) bool {
	return t == BuyingTypeSelf || t == BuyingTypeDelivery
}

// CanTransition reports whether an order may move from one status to the next.
func CanTransition(from, to OrderStatus) bool {
	if from == OrderStatusDelivered || from == OrderStatusCompleted {
		return false
	}
	if to == OrderStatusCompleted {
		return true
	}
	return statusSuccessor[from] == to
}

// Order is an immutable snapshot of a cart converted into a purchase.
// Everything except Status is append-only.
type Order struct {
	ID             string      `json:"id"`
	Number         string      `json:"number"`
	CustomerID     string      `json:"customerId"`
	CartID         string      `json:"cartId"`
	Status         OrderStatus `json:"status"`
	BuyingType     BuyingType  `json:"buyingType"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address,omitempty"`
	Comment        string      `json:"comment,omitempty"`
	OrderDate      *time.Time  `json:"orderDate,omitempty"`
	OrderCostCents int64       `json:"orderCostCents"`
	CreatedAt      time.Time   `json:"createdAt"`
}
