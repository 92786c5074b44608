package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kapu/brandlens-go/internal/domain"
	"go.uber.org/zap"
)

// BrandStore is the mutation surface behind the description endpoint.
type BrandStore interface {
	UpdateDescription(ctx context.Context, brandID, description string) (*domain.Brand, error)
}

// ReportProvider serves assembled visibility reports.
type ReportProvider interface {
	GetReport(ctx context.Context, brandID string) (*domain.VisibilityReport, error)
	InvalidateReport(ctx context.Context, brandID string) error
}

// HealthChecker reports whether a backing connection is alive.
type HealthChecker interface {
	IsConnected(ctx context.Context) bool
}

type BrandHandler struct {
	store   BrandStore
	reports ReportProvider
	health  HealthChecker
	logger  *zap.Logger
}

func NewBrandHandler(store BrandStore, reports ReportProvider, health HealthChecker, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{
		store:   store,
		reports: reports,
		health:  health,
		logger:  logger,
	}
}

// Register mounts the brand routes on the router.
func (h *BrandHandler) Register(r *gin.Engine) {
	r.GET("/health", h.GetHealth)
	api := r.Group("/api/brands")
	api.GET("/:brandId/report", h.GetReport)
	api.PUT("/:brandId/description", h.UpdateDescription)
}

func (h *BrandHandler) GetReport(c *gin.Context) {
	brandID := c.Param("brandId")

	report, err := h.reports.GetReport(c.Request.Context(), brandID)
	if err != nil {
		h.logger.Error("Failed to assemble report",
			zap.String("brand_id", brandID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load report"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Brand not found"})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

func (h *BrandHandler) UpdateDescription(c *gin.Context) {
	brandID := c.Param("brandId")

	var req UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Description must not be empty"})
		return
	}

	brand, err := h.store.UpdateDescription(c.Request.Context(), brandID, description)
	if err != nil {
		h.logger.Error("Failed to update brand description",
			zap.String("brand_id", brandID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update brand description"})
		return
	}
	if brand == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Brand not found"})
		return
	}

	if err := h.reports.InvalidateReport(c.Request.Context(), brandID); err != nil {
		h.logger.Warn("Failed to invalidate report cache",
			zap.String("brand_id", brandID),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, UpdateDescriptionResponse{
		Success: true,
		Message: "Brand description updated",
		BrandID: brand.ID,
	})
}

func (h *BrandHandler) GetHealth(c *gin.Context) {
	if h.health != nil && !h.health.IsConnected(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Cache unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toReportResponse(report *domain.VisibilityReport) ReportResponse {
	personas := make([]PersonaVisibilityResponse, len(report.Personas))
	for i, p := range report.Personas {
		personas[i] = PersonaVisibilityResponse{Name: p.Name, Visibility: p.Visibility}
	}

	topics := make([]TopicVisibilityResponse, len(report.Topics))
	for i, t := range report.Topics {
		topics[i] = TopicVisibilityResponse{Name: t.Name, Visibility: t.Visibility}
	}

	models := make([]ModelVisibilityResponse, len(report.Models))
	for i, m := range report.Models {
		models[i] = ModelVisibilityResponse{Name: m.Name, Visibility: m.Visibility, Logo: m.Logo}
	}

	topDomains := make([]TopSourceResponse, len(report.TopSources))
	for i, s := range report.TopSources {
		topDomains[i] = TopSourceResponse{Domain: s.Domain, Count: s.Count}
	}

	sourceTypes := make([]SourceTypeResponse, len(report.SourceTypes))
	for i, s := range report.SourceTypes {
		sourceTypes[i] = SourceTypeResponse{Category: s.Category, Count: s.Count}
	}

	cells := make([]MatrixCellResponse, len(report.MatrixCells))
	for i, cell := range report.MatrixCells {
		cells[i] = MatrixCellResponse{
			PersonaName: cell.PersonaName,
			TopicName:   cell.TopicName,
			Score:       cell.Score,
		}
	}

	return ReportResponse{
		BrandID:   report.BrandID,
		BrandName: report.BrandName,
		BrandReach: BrandReachResponse{
			Personas: personas,
			Topics:   topics,
		},
		Models: models,
		Sources: SourcesResponse{
			TopDomains:  topDomains,
			SourceTypes: sourceTypes,
		},
		Matrix: MatrixResponse{
			Personas: report.MatrixPersonas,
			Topics:   report.MatrixTopics,
			Cells:    cells,
		},
	}
}
