package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stroytechnika/pumpdesk/internal/catalog"
	"github.com/stroytechnika/pumpdesk/internal/clients"
	"github.com/stroytechnika/pumpdesk/internal/leads"
	"github.com/stroytechnika/pumpdesk/internal/metrics"
	"github.com/stroytechnika/pumpdesk/internal/pages"
	"go.uber.org/zap"
)

var (
	errMissingCatalogService = errors.New("catalog service dependency required")
	errMissingLeadsService   = errors.New("leads service dependency required")
	errMissingClientsService = errors.New("clients service dependency required")
	errMissingPagesService   = errors.New("pages service dependency required")
)

// Dependencies wires the resource services into the HTTP layer.
type Dependencies struct {
	CatalogService *catalog.Service
	LeadsService   *leads.Service
	ClientsService *clients.Service
	PagesService   *pages.Service
	Metrics        *metrics.Registry
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewHTTPHandler assembles the REST surface of the back office.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.CatalogService == nil {
		return nil, errMissingCatalogService
	}
	if deps.LeadsService == nil {
		return nil, errMissingLeadsService
	}
	if deps.ClientsService == nil {
		return nil, errMissingClientsService
	}
	if deps.PagesService == nil {
		return nil, errMissingPagesService
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(requestLogger(logger))
	if deps.Metrics != nil {
		router.Use(observeRequests(deps.Metrics))
	}

	handler := &httpHandler{
		catalogService: deps.CatalogService,
		leadsService:   deps.LeadsService,
		clientsService: deps.ClientsService,
		pagesService:   deps.PagesService,
		logger:         logger,
	}

	api := router.Group("/api")
	api.GET("/models", handler.handleModels)
	api.POST("/models", handler.handleCreateModel)
	api.PUT("/models", handler.handleReplaceModel)
	api.PATCH("/models", handler.handlePatchModel)
	api.DELETE("/models", handler.handleDeleteModel)

	api.GET("/leads", handler.handleLeads)
	api.POST("/leads", handler.handleCreateLead)
	api.PUT("/leads", handler.handleUpdateLead)
	api.DELETE("/leads", handler.handleDeleteLead)

	api.GET("/clients", handler.handleClients)
	api.POST("/clients", handler.handleCreateClient)
	api.PUT("/clients", handler.handleUpdateClient)
	api.DELETE("/clients", handler.handleDeleteClient)

	api.GET("/pages", handler.handlePages)
	api.POST("/pages", handler.handleCreatePage)
	api.PUT("/pages", handler.handleUpdatePage)
	api.DELETE("/pages", handler.handleDeletePage)

	router.GET("/healthz", handleHealth)
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	return router, nil
}

type httpHandler struct {
	catalogService *catalog.Service
	leadsService   *leads.Service
	clientsService *clients.Service
	pagesService   *pages.Service
	logger         *zap.Logger
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
