package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nilkanthplet/BP-1.0/internal/config"
	domainRepo "github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/handler"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/middleware"
	"github.com/nilkanthplet/BP-1.0/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	User       *handler.UserHandler
	ReturnItem *handler.ReturnItemHandler
	Inventory  *handler.InventoryHandler
	Bill       *handler.BillHandler
	Printer    *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
	// HealthCheck reports whether the store is reachable
	HealthCheck func() error
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(); err != nil {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfigFor(
			deps.Cfg.RateLimit.Requests,
			time.Duration(deps.Cfg.RateLimit.Duration)*time.Second,
		))
		protected.Use(rateLimiter.Middleware())

		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
			Log:  deps.Logger,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	registerUserRoutes(protected, h)
	registerReturnItemRoutes(protected, h)
	registerInventoryRoutes(protected, h)
	registerBillRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission(middleware.PermissionManageUsers))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/search", h.User.Search)
		users.GET("/:userId", h.User.Get)
		users.PUT("/:userId", h.User.Update)
		users.DELETE("/:userId", h.User.Delete)
	}
}

func registerReturnItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/return-items")
	items.Use(middleware.RequirePermission(middleware.PermissionManageReceipts))
	{
		items.GET("", h.ReturnItem.List)
		items.POST("", h.ReturnItem.Create)
		items.GET("/:receiptNumber", h.ReturnItem.Get)
		items.PUT("/:receiptNumber", h.ReturnItem.Update)
		items.DELETE("/:receiptNumber", h.ReturnItem.Delete)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	inventory.Use(middleware.RequirePermission(middleware.PermissionManageInventory))
	{
		inventory.GET("", h.Inventory.Get)
		inventory.PUT("", h.Inventory.Update)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers) {
	bills := protected.Group("/bills")
	bills.Use(middleware.RequirePermission(middleware.PermissionManageBills))
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		bills.GET("/:billNumber", h.Bill.Get)
		bills.POST("/:billNumber/payments", h.Bill.AddPayment)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printer := protected.Group("/printer")
	printer.Use(middleware.RequirePermission(middleware.PermissionPrint))
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/return-items/:receiptNumber", h.Printer.PrintReturnItem)
		printer.POST("/bills/:billNumber", h.Printer.PrintBill)
	}
}
