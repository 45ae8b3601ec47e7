// main.go
package main

import (
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/auth"
	"go-campus-events/config"
	"go-campus-events/controllers"
	"go-campus-events/logger"
	"go-campus-events/middleware"
	"go-campus-events/models"
	"go-campus-events/services"
	"go-campus-events/websocket"

	"time"
)

func main() {
	cfg := config.Load("config.yaml")
	logger.SetLogLevel(cfg.Env)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Backend client and the session machinery every request runs through.
	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	manager := auth.NewManager(client)

	controllers.SetConfig(cfg.ApplicationURL, cfg.WebsocketURL, cfg.Env)
	websocket.AllowOrigin(cfg.ApplicationURL)
	websocket.OnConnectionCountChange(func(count int) {
		services.PublishLiveConnections(count, cfg.Env)
	})

	// Health check for the load balancer, before any session work.
	router.GET("/health", controllers.Health)

	// Session store backing the credential and cached principal.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("campussession", store))
	router.Use(middleware.ResolveSession(manager))

	// Determine the absolute path to the templates directory.
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	templatesDir := filepath.Join(basepath, "templates", "*.html")

	fmt.Println("Templates Path:", templatesDir)
	router.LoadHTMLGlob(templatesDir)

	router.Static("/static", "./static")
	router.GET("/favicon.ico", func(c *gin.Context) {
		c.File("./static/images/favicon.ico")
	})

	// Controllers.
	authController := controllers.NewAuthController(manager)
	pageController := controllers.NewPageController(client)
	eventController := controllers.NewEventController(client, client)
	profileController := controllers.NewProfileController(client)
	adminController := controllers.NewAdminController(client)
	notificationController := controllers.NewNotificationController(client, websocket.DefaultMessenger)
	messageController := controllers.NewMessageController(client, websocket.DefaultMessenger)
	motivationController := controllers.NewMotivationController(client)
	paymentController := controllers.NewPaymentController(client, cfg.UPIID, cfg.UPIPayeeName)

	// A double-clicked submit gets throttled before it reaches the backend.
	loginThrottle := middleware.NewThrottle(2*time.Second, 3)

	// Public routes.
	router.GET("/", pageController.Home)
	router.GET("/about", pageController.About)
	router.GET("/privacy-policy", pageController.PrivacyPolicy)
	router.GET("/login", authController.ShowLoginPage)
	router.POST("/login", loginThrottle.Handler("login.html"), authController.PerformLogin)
	router.GET("/register", authController.ShowRegisterPage)
	router.POST("/register", loginThrottle.Handler("register.html"), authController.PerformRegister)
	router.GET("/logout", authController.Logout)
	router.GET("/events", eventController.ShowEvents)
	router.GET("/events/:id", eventController.ShowEventDetails)
	router.GET("/community", messageController.ShowCommunity)
	router.GET("/motivation", motivationController.ShowMotivation)
	router.POST("/motivation", motivationController.GenerateMotivation)

	// Routes for any signed-in user.
	authed := router.Group("/", middleware.AuthRequired)
	{
		authed.GET("/profile", profileController.ShowProfile)
		authed.GET("/notifications", notificationController.ShowNotifications)
		authed.POST("/notifications/:id/read", notificationController.MarkRead)
		authed.POST("/notifications/:id/delete", notificationController.Delete)
		authed.POST("/events/:id/book", eventController.BookEvent)
		authed.POST("/events/:id/cancel", eventController.CancelBooking)
		authed.POST("/events/:id/register", eventController.RegisterForEvent)
		authed.POST("/community", messageController.PostMessage)
		authed.GET("/payment", paymentController.ShowPayment)
		authed.GET("/payment/qrcode", paymentController.PaymentQRCode)
		authed.POST("/payment/verify", paymentController.VerifyPayment)
	}

	// Routes for organizers and admins.
	organizer := router.Group("/", middleware.RolesRequired(models.RoleAdmin, models.RoleOrganizer))
	{
		organizer.GET("/create-event", eventController.ShowCreateEvent)
		organizer.POST("/create-event", eventController.PerformCreateEvent)
		organizer.POST("/events/:id/motivation/generate", eventController.GenerateEventMotivation)
		organizer.POST("/events/:id/motivation", eventController.UpdateEventMotivation)
		organizer.POST("/community/:id/delete", messageController.DeleteMessage)
	}

	// Admin only.
	admin := router.Group("/", middleware.RolesRequired(models.RoleAdmin))
	{
		admin.GET("/admin", adminController.ShowDashboard)
		admin.POST("/admin/events/:id/delete", adminController.DeleteEvent)
	}

	// Live updates.
	router.GET("/live-updates", func(c *gin.Context) {
		websocket.ServeWs(c.Writer, c.Request)
	})
	go websocket.HandleMessages()

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error.Fatalf("Failed to run server: %v", err)
	}
}
