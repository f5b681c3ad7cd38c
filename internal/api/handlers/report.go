package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
	"github.com/jstittsworth/parlay-optimizer/internal/report"
	"github.com/jstittsworth/parlay-optimizer/internal/services"
	"github.com/jstittsworth/parlay-optimizer/pkg/database"
	"github.com/jstittsworth/parlay-optimizer/pkg/utils"
)

type ReportHandler struct {
	db     *database.DB
	runner *services.RunnerService
	engine optimizer.Config
}

func NewReportHandler(db *database.DB, runner *services.RunnerService, engine optimizer.Config) *ReportHandler {
	return &ReportHandler{
		db:     db,
		runner: runner,
		engine: engine,
	}
}

// optimizeRequest carries per-run overrides on top of the configured
// engine defaults. Zero values mean "keep the default".
type optimizeRequest struct {
	Book              string   `json:"book"`
	AllowedFamilies   []string `json:"allowed_families"`
	MaxCandidates     int      `json:"max_candidates"`
	ParlayLegs        int      `json:"parlay_legs"`
	Stake             float64  `json:"stake"`
	FreeBetConversion float64  `json:"free_bet_conversion"`
}

// Optimize runs the engine over a stored pool and returns the persisted
// run plus the full result, including any bounded-search notices.
func (h *ReportHandler) Optimize(c *gin.Context) {
	poolID := c.Param("id")

	var req optimizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendValidationError(c, "Invalid request body", err.Error())
			return
		}
	}

	cfg := h.engine
	if req.Book != "" {
		cfg.Book = req.Book
	}
	if len(req.AllowedFamilies) > 0 {
		cfg.AllowedFamilies = req.AllowedFamilies
	}
	if req.MaxCandidates > 0 {
		cfg.MaxCandidates = req.MaxCandidates
	}
	if req.ParlayLegs > 0 {
		cfg.ParlayLegs = req.ParlayLegs
	}
	if req.Stake > 0 {
		cfg.Promotion.Stake = req.Stake
	}
	if req.FreeBetConversion > 0 {
		cfg.Promotion.FreeBetConversion = req.FreeBetConversion
	}

	var exists int64
	if err := h.db.Model(&models.Pool{}).Where("id = ?", poolID).Count(&exists).Error; err != nil || exists == 0 {
		utils.SendNotFound(c, "Pool not found")
		return
	}

	runResult, err := h.runner.RunPool(context.Background(), poolID, cfg)
	if err != nil {
		if _, ok := err.(*models.ValidationError); ok {
			utils.SendValidationError(c, "Invalid engine configuration", err.Error())
			return
		}
		utils.SendInternalError(c, "Optimization failed")
		return
	}

	utils.SendSuccess(c, runResult)
}

// GetReport returns the structured table for a stored run.
func (h *ReportHandler) GetReport(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, run)
}

// GetReportMarkdown returns the human-readable document for a stored run.
func (h *ReportHandler) GetReportMarkdown(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(run.Markdown))
}

// GetReportCSV exports the structured table as CSV.
func (h *ReportHandler) GetReportCSV(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}

	data, err := report.CSV(run.Rows)
	if err != nil {
		utils.SendInternalError(c, "Failed to render CSV")
		return
	}

	filename := fmt.Sprintf("parlays_%s.csv", run.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *ReportHandler) loadRun(c *gin.Context) (*models.ReportRun, bool) {
	runID := c.Param("id")

	var run models.ReportRun
	if err := h.db.Preload("Rows").First(&run, "id = ?", runID).Error; err != nil {
		utils.SendNotFound(c, "Report not found")
		return nil, false
	}
	return &run, true
}
