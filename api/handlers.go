// Package api exposes the matching engine over HTTP. The engine itself is
// usable purely in-process; this layer is a thin deployment surface for
// callers that want the ranking computation server-side.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/voluntariado/match-engine/internal/errors"
	"github.com/voluntariado/match-engine/model"
	"github.com/voluntariado/match-engine/services"
)

// API holds the handler dependencies.
type API struct {
	searcher    services.Searcher
	recommender services.Recommender
}

// NewAPI creates a new API handler set.
func NewAPI(searcher services.Searcher, recommender services.Recommender) *API {
	return &API{searcher: searcher, recommender: recommender}
}

// SetupRoutes configures all API routes. The Prometheus gatherer serves
// /metrics; pass prometheus.DefaultGatherer unless a custom registry is in
// use.
func SetupRoutes(router *gin.Engine, searcher services.Searcher, recommender services.Recommender, gatherer prometheus.Gatherer) {
	apiHandler := NewAPI(searcher, recommender)

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiRoutes := router.Group("/api")
	{
		apiRoutes.POST("/search", apiHandler.SearchHandler)                  // Filter-driven search
		apiRoutes.POST("/recommendations", apiHandler.RecommendationHandler) // Profile-driven recommendations
	}
}

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query     string   `json:"query"`
	Skills    []string `json:"skills"`
	MinHours  float64  `json:"min_hours"`
	MaxHours  float64  `json:"max_hours"`
	Locations []string `json:"locations"`
}

// RecommendationRequest defines the structure for recommendation queries.
// Skills arrives as the product's free-form comma-separated list.
type RecommendationRequest struct {
	Bio       string   `json:"bio"`
	Skills    string   `json:"skills"`
	Locations []string `json:"locations"`
}

// SearchHandler handles filter-driven search requests.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	result, err := api.searcher.Search(c.Request.Context(), services.SearchFilter{
		Query:     req.Query,
		Skills:    req.Skills,
		MinHours:  req.MinHours,
		MaxHours:  req.MaxHours,
		Locations: req.Locations,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrFetchFailed) {
			SendFetchFailedError(c, err)
			return
		}
		SendInternalError(c, "execute search", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecommendationHandler handles profile-driven recommendation requests.
// Request Body: RecommendationRequest
func (api *API) RecommendationHandler(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	result, err := api.recommender.Recommend(c.Request.Context(), model.VolunteerProfile{
		Bio:       req.Bio,
		Skills:    req.Skills,
		Locations: req.Locations,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrFetchFailed) {
			SendFetchFailedError(c, err)
			return
		}
		SendInternalError(c, "compute recommendations", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
