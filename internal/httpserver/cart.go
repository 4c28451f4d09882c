package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type changeQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func getCartHandler(customers CustomerService, carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, customers)
		if !ok {
			return
		}
		cart, err := carts.OpenCart(c.Request.Context(), customer.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(customers CustomerService, carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, customers)
		if !ok {
			return
		}
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "productId required")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		cart, err := carts.AddItem(c.Request.Context(), customer.ID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func changeCartItemHandler(customers CustomerService, carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, customers)
		if !ok {
			return
		}
		var req changeQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "quantity required")
			return
		}
		cart, err := carts.ChangeQuantity(c.Request.Context(), customer.ID, c.Param("itemID"), req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeCartItemHandler(customers CustomerService, carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, customers)
		if !ok {
			return
		}
		cart, err := carts.RemoveItem(c.Request.Context(), customer.ID, c.Param("itemID"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
