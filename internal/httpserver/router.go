package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
	catalogsvc "storefront/internal/service/catalog"
	customersvc "storefront/internal/service/customer"
	ordersvc "storefront/internal/service/order"
)

// CustomerService is the identity surface consumed by the handlers.
type CustomerService interface {
	Register(ctx context.Context, in customersvc.RegisterInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	GetOrCreate(ctx context.Context, userID string) (*domain.Customer, error)
	AccessTTLSeconds() int
}

// CatalogService serves category and product reads.
type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Category(ctx context.Context, id, brandID string) (*catalogsvc.CategoryView, error)
	LatestProducts(ctx context.Context, limit int) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
}

// CartService mutates the authenticated customer's open cart.
type CartService interface {
	OpenCart(ctx context.Context, customerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, customerID, itemID string) (*domain.Cart, error)
	ChangeQuantity(ctx context.Context, customerID, itemID string, quantity int) (*domain.Cart, error)
}

// OrderService creates orders and drives their status lifecycle.
type OrderService interface {
	Create(ctx context.Context, customerID string, in ordersvc.CreateInput) (*domain.Order, error)
	Get(ctx context.Context, customerID, orderID string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	TransitionStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error)
}

// Deps bundles the services the router needs.
type Deps struct {
	CustomerSvc CustomerService
	CatalogSvc  CatalogService
	CartSvc     CartService
	OrderSvc    OrderService
}

func (d Deps) validate() error {
	if d.CustomerSvc == nil {
		return errors.New("customer service required")
	}
	if d.CatalogSvc == nil {
		return errors.New("catalog service required")
	}
	if d.CartSvc == nil {
		return errors.New("cart service required")
	}
	if d.OrderSvc == nil {
		return errors.New("order service required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	auth := router.Group("/auth")
	{
		auth.POST("/register", registerHandler(deps.CustomerSvc))
		auth.POST("/login", loginHandler(deps.CustomerSvc))
	}

	router.GET("/categories", listCategoriesHandler(deps.CatalogSvc))
	router.GET("/categories/:id", getCategoryHandler(deps.CatalogSvc))
	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/:id", getProductHandler(deps.CatalogSvc))

	authed := router.Group("/", authMiddleware(deps.CustomerSvc))
	{
		authed.GET("/me", meHandler(deps.CustomerSvc))

		authed.GET("/cart", getCartHandler(deps.CustomerSvc, deps.CartSvc))
		authed.POST("/cart/items", addCartItemHandler(deps.CustomerSvc, deps.CartSvc))
		authed.PATCH("/cart/items/:itemID", changeCartItemHandler(deps.CustomerSvc, deps.CartSvc))
		authed.DELETE("/cart/items/:itemID", removeCartItemHandler(deps.CustomerSvc, deps.CartSvc))

		authed.POST("/orders", createOrderHandler(deps.CustomerSvc, deps.OrderSvc))
		authed.GET("/orders", listOrdersHandler(deps.CustomerSvc, deps.OrderSvc))
		authed.GET("/orders/:id", getOrderHandler(deps.CustomerSvc, deps.OrderSvc))
		authed.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))
	}

	return router, nil
}
