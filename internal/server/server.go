package server

import (
	"grocery-bazaar-backend/internal/handler"
	appmw "grocery-bazaar-backend/internal/middleware"
	"grocery-bazaar-backend/internal/repository"
	"grocery-bazaar-backend/internal/service"
	"grocery-bazaar-backend/internal/token"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	tokens         *token.Service
	userRepo       repository.UserRepository
	userHandler    *handler.UserHandler
	paymentHandler *handler.PaymentHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
}

func NewServer(
	tokens *token.Service,
	userRepo repository.UserRepository,
	userService service.UserService,
	paymentService service.PaymentService,
	catalogService service.CatalogService,
	cartService service.CartService,
	clientURL string,
) *Server {
	e := echo.New()

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		tokens:         tokens,
		userRepo:       userRepo,
		userHandler:    handler.NewUserHandler(userService, tokens),
		paymentHandler: handler.NewPaymentHandler(paymentService, clientURL),
		catalogHandler: handler.NewCatalogHandler(catalogService),
		cartHandler:    handler.NewCartHandler(cartService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo
	requireAuth := appmw.RequireAuth(s.tokens)
	requireAdmin := appmw.RequireAdmin(s.userRepo)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is up and running")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/jwt", s.userHandler.IssueToken)

	// -------- users --------
	e.POST("/users", s.userHandler.Register)
	e.GET("/users", s.userHandler.GetUsers, requireAuth, requireAdmin)
	e.GET("/users/admin/:email", s.userHandler.AdminStatus, requireAuth)
	e.PATCH("/users/admin/:id", s.userHandler.PromoteToAdmin, requireAuth)
	e.DELETE("/users/:id", s.userHandler.DeleteUser, requireAuth, requireAdmin)

	// -------- products / catalog --------
	e.POST("/products", s.catalogHandler.CreateProduct, requireAuth, requireAdmin)
	e.GET("/products", s.catalogHandler.GetProducts)
	e.DELETE("/products/:id", s.catalogHandler.DeleteProduct, requireAuth, requireAdmin)
	e.GET("/menu", s.catalogHandler.GetMenu)
	e.GET("/reviews", s.catalogHandler.GetReviews)

	// -------- orders --------
	e.POST("/orders", s.paymentHandler.SubmitOrder, requireAuth)
	e.GET("/orders", s.paymentHandler.GetOrders)
	e.GET("/orders/transaction/:id", s.paymentHandler.GetOrderByTransactionID)
	e.GET("/orders/:id", s.paymentHandler.GetOrderByID)

	// -------- gateway callbacks --------
	e.POST("/payment/success", s.paymentHandler.HandleSuccess)
	e.POST("/payment/fail", s.paymentHandler.HandleFail)
	e.POST("/payment/cancel", s.paymentHandler.HandleCancel)

	// -------- carts --------
	e.GET("/carts", s.cartHandler.GetCarts, requireAuth)
	e.POST("/carts", s.cartHandler.AddToCart)
	e.DELETE("/carts/:id", s.cartHandler.DeleteFromCart)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
