// Package router assembles the HTTP routes and middleware chain.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finboard/internal/handlers"
	"finboard/internal/middleware"
	"finboard/internal/services"
)

// Deps are the services the routes are served by.
type Deps struct {
	Users        services.UserServicer
	Sessions     services.SessionServicer
	Accounts     services.AccountServicer
	Categories   services.CategoryServicer
	Transactions services.TransactionServicer
	Summary      services.SummaryServicer
	Audit        services.AuditServicer
	Cookie       middleware.SessionCookie

	// Swagger mounts the API docs under /swagger.
	Swagger bool
}

// New builds the gin engine.
func New(deps Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Sessions, deps.Audit, deps.Cookie)
	accountHandler := handlers.NewAccountHandler(deps.Accounts, deps.Audit)
	categoryHandler := handlers.NewCategoryHandler(deps.Categories, deps.Audit)
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions, deps.Audit)
	summaryHandler := handlers.NewSummaryHandler(deps.Summary)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.LoadSession(deps.Sessions, deps.Cookie))

	if deps.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Form actions
	auth := router.Group("/auth")
	auth.POST("/sign-up", authHandler.SignUp)
	auth.POST("/sign-in", authHandler.SignIn)
	auth.POST("/sign-out", authHandler.SignOut)

	api := router.Group("/api")
	api.GET("/auth/session", authHandler.GetSession)

	protected := api.Group("/")
	protected.Use(middleware.RequireAuth())

	accounts := protected.Group("/accounts")
	accounts.GET("", accountHandler.ListAccounts)
	accounts.POST("", accountHandler.CreateAccount)
	accounts.POST("/bulk-delete", accountHandler.BulkDeleteAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PATCH("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.POST("/bulk-delete", categoryHandler.BulkDeleteCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/bulk-create", transactionHandler.BulkCreateTransactions)
	transactions.POST("/bulk-delete", transactionHandler.BulkDeleteTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	protected.GET("/summary", summaryHandler.GetSummary)

	router.NoRoute(handlers.NotFound)

	return router
}
