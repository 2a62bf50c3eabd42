package api

import (
	"context"
	"net/http"
	"time"

	assistantHandler "agent-server/internal/assistant/handler"
	authHandler "agent-server/internal/auth/handler"
	workflowHandler "agent-server/internal/automation/handler"
	campaignHandler "agent-server/internal/campaign/handler"
	dashboardHandler "agent-server/internal/dashboard/handler"
	leadHandler "agent-server/internal/leads/handler"
	taskHandler "agent-server/internal/tasks/handler"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing service answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handlers groups every resource handler served under /api.
type Handlers struct {
	Auth      authHandler.Handler
	Leads     leadHandler.Handler
	Campaigns campaignHandler.Handler
	Workflows workflowHandler.Handler
	Tasks     taskHandler.Handler
	Dashboard dashboardHandler.Handler
	Assistant assistantHandler.Handler

	// AuthRateLimit guards login and signup; nil disables it.
	AuthRateLimit gin.HandlerFunc
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
	health   HealthChecker
}

func New(router *gin.RouterGroup, handlers Handlers, health HealthChecker) API {
	return API{
		router:   router,
		handlers: handlers,
		health:   health,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		if a.handlers.AuthRateLimit != nil {
			authGroup.Use(a.handlers.AuthRateLimit)
		}
		authGroup.POST("/login", a.handlers.Auth.HandleLogin)
		authGroup.POST("/signup", a.handlers.Auth.HandleSignup)
	}

	protectedGroup := apiGroup.Group("", a.handlers.Auth.HandleJWTMiddleware)
	protectedGroup.GET("/me", a.handlers.Auth.GetUserInfo)

	leadsGroup := protectedGroup.Group("/leads")
	{
		leadsGroup.GET("", a.handlers.Leads.HandleListLeads)
		leadsGroup.POST("", a.handlers.Leads.HandleCreateLead)
		leadsGroup.GET("/board", a.handlers.Leads.HandleGetBoard)
		leadsGroup.GET("/:lead_id", a.handlers.Leads.HandleGetLead)
		leadsGroup.PATCH("/:lead_id", a.handlers.Leads.HandleUpdateLead)
		leadsGroup.PATCH("/:lead_id/status", a.handlers.Leads.HandleUpdateLeadStatus)
		leadsGroup.DELETE("/:lead_id", a.handlers.Leads.HandleDeleteLead)
		leadsGroup.GET("/:lead_id/activity", a.handlers.Leads.HandleListLeadActivity)
	}

	campaignsGroup := protectedGroup.Group("/campaigns")
	{
		campaignsGroup.GET("", a.handlers.Campaigns.HandleListCampaigns)
		campaignsGroup.POST("", a.handlers.Campaigns.HandleCreateCampaign)
		campaignsGroup.GET("/stats", a.handlers.Campaigns.HandleGetCampaignStats)
		campaignsGroup.GET("/:campaign_id", a.handlers.Campaigns.HandleGetCampaign)
		campaignsGroup.PATCH("/:campaign_id", a.handlers.Campaigns.HandleUpdateCampaign)
		campaignsGroup.DELETE("/:campaign_id", a.handlers.Campaigns.HandleDeleteCampaign)
	}

	workflowsGroup := protectedGroup.Group("/workflows")
	{
		workflowsGroup.GET("", a.handlers.Workflows.HandleListWorkflows)
		workflowsGroup.POST("", a.handlers.Workflows.HandleCreateWorkflow)
		workflowsGroup.POST("/draft", a.handlers.Workflows.HandleSaveDraft)
		workflowsGroup.GET("/stats", a.handlers.Workflows.HandleGetWorkflowStats)
		workflowsGroup.GET("/action-templates", a.handlers.Workflows.HandleListActionTemplates)
		workflowsGroup.GET("/:workflow_id", a.handlers.Workflows.HandleGetWorkflow)
		workflowsGroup.PATCH("/:workflow_id", a.handlers.Workflows.HandleUpdateWorkflow)
		workflowsGroup.PATCH("/:workflow_id/active", a.handlers.Workflows.HandleSetWorkflowActive)
		workflowsGroup.DELETE("/:workflow_id", a.handlers.Workflows.HandleDeleteWorkflow)
	}

	tasksGroup := protectedGroup.Group("/tasks")
	{
		tasksGroup.GET("", a.handlers.Tasks.HandleListTasks)
		tasksGroup.POST("", a.handlers.Tasks.HandleCreateTask)
		tasksGroup.GET("/upcoming", a.handlers.Tasks.HandleListUpcomingTasks)
		tasksGroup.GET("/:task_id", a.handlers.Tasks.HandleGetTask)
		tasksGroup.PATCH("/:task_id", a.handlers.Tasks.HandleUpdateTask)
		tasksGroup.PATCH("/:task_id/completed", a.handlers.Tasks.HandleSetTaskCompleted)
		tasksGroup.DELETE("/:task_id", a.handlers.Tasks.HandleDeleteTask)
	}

	dashboardGroup := protectedGroup.Group("/dashboard")
	{
		dashboardGroup.GET("/overview", a.handlers.Dashboard.HandleGetOverview)
		dashboardGroup.GET("/analytics", a.handlers.Dashboard.HandleGetAnalytics)
	}

	assistantGroup := protectedGroup.Group("/assistant")
	{
		assistantGroup.GET("/prompts", a.handlers.Assistant.HandleGetPrompts)
		assistantGroup.POST("/chat", a.handlers.Assistant.HandleChat)
	}
}

// Health answers 200 while the database responds, 503 otherwise.
func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if a.health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := a.health.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
