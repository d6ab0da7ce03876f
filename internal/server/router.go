package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"stylecraft-backend/internal/handlers"
	"stylecraft-backend/internal/middleware"
)

// Store is everything the handlers need from the database.
type Store interface {
	handlers.DesignStore
	handlers.OrderStore
}

type Deps struct {
	Logger         logrus.FieldLogger
	JWTSecret      string
	AllowedOrigins []string
	MaxUploadBytes int64

	Store    Store
	Storage  handlers.ObjectStorage
	AI       handlers.FashionAI
	Profiles handlers.ProfileStore
	Verifier handlers.PhoneVerifier
	Payments handlers.PaymentProcessor

	// Readiness checks by name, e.g. "database".
	Checks map[string]handlers.Pinger
}

func NewRouter(d Deps) *gin.Engine {
	handlers.RegisterValidators()

	router := gin.New()
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.CORS(d.AllowedOrigins))
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health checks (no auth)
	router.GET("/health", handlers.HealthHandler)
	router.GET("/health/ready", handlers.NewReadinessHandler(d.Checks).Ready)

	public := router.Group("/api/v1")
	public.GET("/catalog/colors", handlers.ListColors)
	public.GET("/catalog/options", handlers.ListOptions)

	proxyHandler := handlers.NewProxyHandler(d.AI)
	uploadHandler := handlers.NewUploadHandler(d.Store, d.Storage, d.MaxUploadBytes)
	itemHandler := handlers.NewItemHandler(d.Store, d.AI)
	designHandler := handlers.NewDesignHandler(d.Store, d.Storage, d.AI)
	checkoutHandler := handlers.NewCheckoutHandler(d.Store, d.Verifier)
	ordersHandler := handlers.NewOrdersHandler(d.Store, d.Payments)
	profilesHandler := handlers.NewProfilesHandler(d.Profiles)

	inflight := middleware.NewInFlight()

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(d.JWTSecret))

	// AI gateway proxies
	api.POST("/analyze", inflight.Guard("analyze"), proxyHandler.Analyze)
	api.POST("/generate-design", inflight.Guard("customize"), proxyHandler.GenerateDesign)

	// Uploads and analysis
	api.POST("/uploads", inflight.Guard("upload"), uploadHandler.Upload)
	api.GET("/uploads", uploadHandler.ListUploads)
	api.GET("/uploads/:upload_id", uploadHandler.GetUpload)
	api.POST("/uploads/:upload_id/analyze", inflight.Guard("analyze"), itemHandler.AnalyzeUpload)
	api.GET("/items/:item_id", itemHandler.GetItem)

	// Customization
	api.POST("/items/:item_id/designs", inflight.Guard("customize"), designHandler.CreateDesign)
	api.POST("/items/:item_id/recolor", inflight.Guard("customize"), designHandler.Recolor)
	api.GET("/designs", designHandler.ListDesigns)
	api.GET("/designs/:design_id", designHandler.GetDesign)

	// Checkout and payment
	api.POST("/checkout/otp/send", checkoutHandler.SendOTP)
	api.POST("/checkout/otp/verify", checkoutHandler.VerifyOTP)
	api.POST("/orders", inflight.Guard("checkout"), checkoutHandler.CreateOrder)
	api.GET("/orders", ordersHandler.ListOrders)
	api.GET("/orders/:order_id", ordersHandler.GetOrder)
	api.POST("/orders/:order_id/pay", inflight.Guard("pay"), ordersHandler.PayOrder)

	// Profile
	api.GET("/profile", profilesHandler.GetProfile)
	api.PUT("/profile", profilesHandler.UpdateProfile)

	return router
}
