package handlers

import (
	_ "employee_api/docs" // registers the OpenAPI document with swag
	"employee_api/internal/logger"
	"employee_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerEmployeeRoutes(router)

	return router
}

func (h *Handler) registerEmployeeRoutes(r *gin.Engine) {
	employee := r.Group("/employee")
	{
		employee.POST("/create/", h.createEmployee)
		employee.POST("/token/", h.obtainToken)
		employee.GET("/me/", h.tokenAuthMiddleware, h.me)
	}
}
