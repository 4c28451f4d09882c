package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	customersvc "storefront/internal/service/customer"
)

const authUserKey = "authUser"

// authMiddleware resolves a Bearer token to its identity account and aborts
// with 401 otherwise. Customer profiles are not created here; handlers
// resolve them explicitly.
func authMiddleware(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		u, err := svc.LookupByToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(authUserKey, u)
		c.Next()
	}
}

func authUser(c *gin.Context) *domain.User {
	v, ok := c.Get(authUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

// resolveCustomer returns the customer profile of the authenticated user,
// creating it on first access.
func resolveCustomer(c *gin.Context, svc CustomerService) (*domain.Customer, bool) {
	u := authUser(c)
	if u == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}
	customer, err := svc.GetOrCreate(c.Request.Context(), u.ID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return customer, true
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customersvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		customer, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"customer": customer})
	}
}

func loginHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "email and password required")
			return
		}
		u, access, refresh, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"accessToken":  access,
			"refreshToken": refresh,
			"expiresIn":    svc.AccessTTLSeconds(),
			"user":         u,
		})
	}
}

func meHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := resolveCustomer(c, svc)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":     authUser(c),
			"customer": customer,
		})
	}
}
