package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	ordersvc "storefront/internal/service/order"
)

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func createOrderHandler(customers CustomerService, orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, customers)
		if !ok {
			return
		}
		var req ordersvc.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		o, err := orders.Create(c.Request.Context(), customer.ID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func listOrdersHandler(customers CustomerService, orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, customers)
		if !ok {
			return
		}
		list, err := orders.ListByCustomer(c.Request.Context(), customer.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func getOrderHandler(customers CustomerService, orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, customers)
		if !ok {
			return
		}
		o, err := orders.Get(c.Request.Context(), customer.ID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler is the staff-driven transition endpoint; legality
// of the transition is decided by the order service.
func updateOrderStatusHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "status required")
			return
		}
		o, err := orders.TransitionStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
