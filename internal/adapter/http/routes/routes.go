package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "truga_booking/docs" // This will be auto-generated
	"truga_booking/internal/adapter/http/handlers"
	repository2 "truga_booking/internal/adapter/persistence/repository"
	"truga_booking/internal/infrastructure/database"
	"truga_booking/internal/infrastructure/email"
	"truga_booking/internal/usecase"
	"truga_booking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	boxRepo := newRoofBoxRepository()
	sessionStore := repository2.NewWizardSessionMemoryStore()

	catalogUseCase := usecase.NewCatalogUseCase(boxRepo)

	var inquiryGateway interfaces.IInquiryGateway
	resendGateway, err := email.NewResendGateway(os.Getenv("RESEND_API_KEY"), os.Getenv("INQUIRY_EMAIL"))
	if err != nil {
		log.Printf("Resend inquiry gateway not configured: %v", err)
	} else {
		inquiryGateway = resendGateway
	}

	wizardUseCase := usecase.NewWizardUseCase(sessionStore, boxRepo, inquiryGateway, submitTimeoutFromEnv())

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	wizardHandler := handlers.NewWizardHandler(wizardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReservationRoutes(v1, catalogHandler, wizardHandler)
}

// newRoofBoxRepository picks the catalog backend. CATALOG_SOURCE=dynamodb
// switches to DynamoDB and seeds the table with the default catalog on first
// boot; anything else runs off the built-in in-memory catalog.
func newRoofBoxRepository() interfaces.IRoofBoxRepository {
	source := strings.ToLower(strings.TrimSpace(os.Getenv("CATALOG_SOURCE")))
	if source != "dynamodb" {
		log.Printf("[catalog][routes] using in-memory catalog")
		return repository2.NewRoofBoxMemoryRepository(repository2.DefaultRoofBoxes)
	}

	ddb := database.ConnectDynamoDB()
	repo := repository2.NewRoofBoxDynamoRepository(ddb)
	if err := repo.Seed(context.Background(), repository2.DefaultRoofBoxes); err != nil {
		log.Printf("[catalog][routes] seed failed: %v", err)
	}
	log.Printf("[catalog][routes] using dynamodb catalog")
	return repo
}

func submitTimeoutFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("INQUIRY_TIMEOUT_SECONDS"))
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("[wizard][routes] ignoring invalid INQUIRY_TIMEOUT_SECONDS=%q", raw)
		return 0
	}
	return time.Duration(secs) * time.Second
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
