package routes

import (
	"context"
	"log"

	"meditrack/internal/adapter/http/handlers"
	"meditrack/internal/adapter/http/middleware"
	"meditrack/internal/adapter/persistence/repository"
	"meditrack/internal/config"
	"meditrack/internal/domain/billing"
	"meditrack/internal/infrastructure/database"
	"meditrack/internal/infrastructure/idgen"
	"meditrack/internal/infrastructure/metrics"
	"meditrack/internal/infrastructure/payments"
	"meditrack/internal/usecase"
	"meditrack/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	router := NewRouter(cfg, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the engine with every dependency wired from cfg.
// Metrics register on reg and /metrics serves gatherer.
func NewRouter(cfg *config.Config, reg prometheus.Registerer, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	m := metrics.NewClinicMetrics(reg)

	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	getRoutes(router, cfg, m)
	return router
}

func getRoutes(router *gin.Engine, cfg *config.Config, m *metrics.ClinicMetrics) {
	ids := idgen.Shared(cfg.IDStart)

	doctorRepo := repository.NewDoctorMemoryRepository()
	patientRepo := repository.NewPatientMemoryRepository()
	appointmentRepo := repository.NewAppointmentMemoryRepository()
	billRepo := repository.NewBillMemoryRepository()
	paymentRepo := repository.NewBillPaymentMemoryRepository()

	factory := billing.NewFactory(ids, cfg.DefaultTaxRate, cfg.DefaultCurrency)
	strategies := billing.NewRegistry(cfg.DefaultTaxRate, cfg.SeniorDiscountRate)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("[payment][routes] Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var archive interfaces.IBillingArchive
	if cfg.Archive.Enabled {
		ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Dynamo)
		if err != nil {
			log.Printf("[archive][routes] billing archive disabled: %v", err)
		} else {
			archive = repository.NewBillingDynamoArchive(ddb, cfg.Archive.BillsTable, cfg.Archive.PaymentsTable)
		}
	}

	doctorUseCase := usecase.NewDoctorUseCase(doctorRepo, ids, nil)
	patientUseCase := usecase.NewPatientUseCase(patientRepo, ids, nil)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, doctorRepo, patientRepo, ids, m, nil)
	billingUseCase := usecase.NewBillingUseCase(billRepo, paymentRepo, appointmentRepo, factory, strategies,
		paymentGateway, archive, m, usecase.PaymentOptions{
			MockMode:        cfg.Payments.MockMode,
			Sandbox:         cfg.Payments.Sandbox(),
			TestPayerEmail:  cfg.Payments.TestPayerEmail,
			TestPayerUserID: cfg.Payments.TestPayerUserID,
		})
	recommendationUseCase := usecase.NewRecommendationUseCase(doctorRepo, m)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClinicRoutes(v1,
		handlers.NewDoctorHandler(doctorUseCase),
		handlers.NewPatientHandler(patientUseCase),
		handlers.NewAppointmentHandler(appointmentUseCase, billingUseCase),
		handlers.NewRecommendationHandler(recommendationUseCase),
	)
	addBillingRoutes(v1, handlers.NewBillHandler(billingUseCase, cfg.Payments.MockMode))
}

func setMiddlewares(router *gin.Engine, m *metrics.ClinicMetrics) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RequestMetrics(m))
}
