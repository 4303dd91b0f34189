package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"caja-api/internal/handler/api"
	"caja-api/internal/handler/middleware"
	"caja-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Coworking *api.CoworkingHandler
	Cashier   *api.CashierHandler
	Order     *api.OrderHandler
	Product   *api.ProductHandler
	Expense   *api.ExpenseHandler
	Ledger    *api.LedgerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		members := apiGroup.Group("/members")
		members.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(members, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Auth.ListMembers},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Auth.ApproveMember},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Auth.DeleteMember},
			})
		}

		coworking := apiGroup.Group("/coworking/sessions")
		coworking.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coworking, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Coworking.StartSession},
				{Method: http.MethodGet, Path: "", Handler: h.Coworking.ListActive},
				{Method: http.MethodGet, Path: "/history", Handler: h.Coworking.ListFinished},
				{Method: http.MethodPost, Path: "/:id/extras", Handler: h.Coworking.AddExtra},
				{Method: http.MethodDelete, Path: "/:id/extras/:productId", Handler: h.Coworking.RemoveExtra},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Coworking.Quote},
				{Method: http.MethodPost, Path: "/:id/finish", Handler: h.Coworking.FinishSession},
			})
		}

		cashSessions := apiGroup.Group("/cash-sessions")
		cashSessions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cashSessions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Cashier.OpenDay},
				{Method: http.MethodGet, Path: "", Handler: h.Cashier.History},
				{Method: http.MethodGet, Path: "/current", Handler: h.Cashier.CurrentReport},
				{Method: http.MethodPost, Path: "/close", Handler: h.Cashier.CloseDay},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Checkout},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.GetOrder},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.GetProduct},
			})

			adminOnly := products.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Product.CreateProduct},
				{Method: http.MethodPost, Path: "/import", Handler: h.Product.ImportProducts},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Product.UpdateProduct},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.DeleteProduct},
			})
		}

		expenses := apiGroup.Group("/expenses")
		expenses.Use(authMiddleware.RequireAuth())
		{
			addRoutes(expenses, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Expense.CreateExpense},
				{Method: http.MethodGet, Path: "", Handler: h.Expense.ListExpenses},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Expense.UpdateExpense},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Expense.DeleteExpense},
			})
		}

		transactions := apiGroup.Group("/transactions")
		transactions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(transactions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Ledger.CreateTransaction},
				{Method: http.MethodGet, Path: "", Handler: h.Ledger.ListTransactions},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Ledger.UpdateTransaction},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Ledger.DeleteTransaction},
			})
		}

		categories := apiGroup.Group("/categories")
		categories.Use(authMiddleware.RequireAuth())
		{
			addRoutes(categories, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Ledger.CreateCategory},
				{Method: http.MethodGet, Path: "", Handler: h.Ledger.ListCategories},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Ledger.DeleteCategory},
				{Method: http.MethodPut, Path: "/:id/budget", Handler: h.Ledger.SetBudget},
			})
		}

		ledger := apiGroup.Group("/ledger")
		ledger.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ledger, []route{
				{Method: http.MethodGet, Path: "/budgets", Handler: h.Ledger.ListBudgets},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Ledger.MonthlySummary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
