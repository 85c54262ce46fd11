package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bonison01/invoice-cargo/internal/config"
	"github.com/bonison01/invoice-cargo/internal/handler"
	"github.com/bonison01/invoice-cargo/internal/middleware"
	"github.com/bonison01/invoice-cargo/internal/pdf"
	"github.com/bonison01/invoice-cargo/internal/repository"
	"github.com/bonison01/invoice-cargo/internal/service"
	"github.com/bonison01/invoice-cargo/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories / services / handlers ───────────────────────────────────
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, pdf.NewGenerator(), dispatcher)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		v1.POST("/invoices", invoicesH.CreateInvoice)
		v1.GET("/invoices", invoicesH.ListInvoices)
		v1.GET("/invoices/:id", invoicesH.GetInvoice)
		v1.PUT("/invoices/:id", invoicesH.UpdateInvoice)
		v1.DELETE("/invoices/:id", invoicesH.DeleteInvoice)
		v1.GET("/invoices/:id/pdf", invoicesH.ExportPDF)
		v1.POST("/invoices/:id/send", invoicesH.SendPDF)
	}

	return r
}
