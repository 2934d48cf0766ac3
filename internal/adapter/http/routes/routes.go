package routes

import (
	"html/template"
	"log"
	_ "mp_checkout/docs" // generated by swag init
	"mp_checkout/internal/adapter/http/handlers"
	"mp_checkout/internal/adapter/persistence/repository"
	"mp_checkout/internal/config"
	"mp_checkout/internal/infrastructure/database"
	"mp_checkout/internal/infrastructure/metrics"
	"mp_checkout/internal/infrastructure/payments"
	"mp_checkout/internal/usecase"
	"mp_checkout/internal/usecase/interfaces"
	"mp_checkout/web"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the Mercado Pago gateway and starts the server on config.PORT.
func Run(cfg config.Config) {
	records := newPaymentRecordRepository(cfg)
	router := NewRouter(cfg, newProcessPaymentUseCase(cfg, records), usecase.NewPaymentRecordUseCase(records))

	log.Printf("Servidor inicializado na porta: %d", config.PORT)
	err := router.Run(":" + strconv.Itoa(config.PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the HTTP surface around already wired use cases.
func NewRouter(cfg config.Config, paymentUseCase usecase.IProcessPaymentUseCase, recordUseCase usecase.IPaymentRecordUseCase) *gin.Engine {
	router := gin.New()
	serverMetrics := metrics.NewServerMetrics("api")
	setMiddlewares(router, serverMetrics)

	router.SetHTMLTemplate(template.Must(web.Templates()))
	staticFS, err := web.Static()
	if err != nil {
		log.Fatalf("failed loading static assets: %v", err)
	}
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/metrics", gin.WrapH(serverMetrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	checkoutHandler := handlers.NewCheckoutHandler(paymentUseCase, cfg.PublicKey)
	addCheckoutRoutes(router, checkoutHandler)

	recordHandler := handlers.NewPaymentRecordHandler(recordUseCase)
	addPaymentRecordRoutes(router, recordHandler)
	return router
}

func newProcessPaymentUseCase(cfg config.Config, records interfaces.IPaymentRecordRepository) *usecase.ProcessPaymentUseCase {
	gateway, err := payments.NewMercadoPagoGateway(cfg.AccessToken, cfg.GatewayMock)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}
	return usecase.NewProcessPaymentUseCase(gateway, records)
}

// newPaymentRecordRepository returns a nil interface when recording is off.
func newPaymentRecordRepository(cfg config.Config) interfaces.IPaymentRecordRepository {
	if !cfg.RecordsPayments() {
		return nil
	}
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)
	log.Printf("[payment][records] recording payments table=%s", cfg.PaymentsTable)
	return repository.NewPaymentRecordDynamoRepository(ddb, cfg.PaymentsTable)
}

func setMiddlewares(router *gin.Engine, serverMetrics *metrics.ServerMetrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(serverMetrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
}
