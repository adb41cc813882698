package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/finsight-app/finsight-api/handlers"
	"github.com/finsight-app/finsight-api/services"
	"github.com/finsight-app/finsight-api/store"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, s *store.Store) {
	authHandler := &handlers.AuthHandler{Users: services.NewUserService(s)}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupNewsRoutes sets up the public news feed route.
func SetupNewsRoutes(rg *gin.RouterGroup, sources []string) {
	newsHandler := &handlers.NewsHandler{News: services.NewNewsService(sources)}

	rg.GET("/news", newsHandler.GetNews)
}

// SetupExpenseRoutes sets up protected expense CRUD routes.
func SetupExpenseRoutes(rg *gin.RouterGroup, s *store.Store, ws *handlers.WSHandler) {
	h := &handlers.ExpenseHandler{Expenses: services.NewExpenseService(s), WS: ws}

	rg.GET("/expenses", h.GetExpenses)
	rg.POST("/expenses", h.CreateExpense)
	rg.PUT("/expenses/:id", h.UpdateExpense)
	rg.DELETE("/expenses/:id", h.DeleteExpense)
}

// SetupBudgetRoutes sets up protected budget CRUD routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, s *store.Store, ws *handlers.WSHandler) {
	h := &handlers.BudgetHandler{Budgets: services.NewBudgetService(s), WS: ws}

	rg.GET("/budgets", h.GetBudgets)
	rg.POST("/budgets", h.CreateBudget)
	rg.PUT("/budgets/:id", h.UpdateBudget)
	rg.DELETE("/budgets/:id", h.DeleteBudget)
}

// SetupInsightsRoutes sets up the protected expense summary route.
func SetupInsightsRoutes(rg *gin.RouterGroup, s *store.Store, averages map[string]float64) {
	h := &handlers.InsightsHandler{
		Insights: services.NewInsightsService(services.NewExpenseService(s), averages),
	}

	rg.GET("/insights/summary", h.GetSummary)
}

// SetupUserRoutes sets up protected user profile and 2FA routes.
func SetupUserRoutes(rg *gin.RouterGroup, s *store.Store) {
	userHandler := &handlers.UserHandler{Users: services.NewUserService(s)}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
}
