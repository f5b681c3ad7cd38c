package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
	"github.com/jstittsworth/parlay-optimizer/internal/services"
	"github.com/jstittsworth/parlay-optimizer/pkg/database"
	"github.com/jstittsworth/parlay-optimizer/pkg/utils"
)

type PoolHandler struct {
	db    *database.DB
	cache *services.CacheService
}

func NewPoolHandler(db *database.DB, cache *services.CacheService) *PoolHandler {
	return &PoolHandler{
		db:    db,
		cache: cache,
	}
}

// candidateInput is the ingestion contract from the upstream merge stage.
// Implied probability and decimal odds are always derived here, never
// trusted from the caller.
type candidateInput struct {
	Player       string  `json:"player" binding:"required"`
	StatCategory string  `json:"statCategory" binding:"required"`
	IsAlternate  bool    `json:"isAlternate"`
	Line         float64 `json:"line" binding:"required"`
	Direction    string  `json:"direction" binding:"required"`
	Book         string  `json:"book" binding:"required"`
	AmericanOdds int     `json:"americanOdds" binding:"required"`
	Edge         float64 `json:"edge"`
}

// CreatePool ingests a candidate pool. Every candidate is validated before
// anything is stored; one bad record rejects the whole batch.
func (h *PoolHandler) CreatePool(c *gin.Context) {
	var req struct {
		Book       string           `json:"book" binding:"required"`
		Source     string           `json:"source"`
		Candidates []candidateInput `json:"candidates" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	pool := models.Pool{
		ID:     uuid.New().String(),
		Book:   req.Book,
		Source: req.Source,
	}

	pool.Candidates = make([]models.Candidate, 0, len(req.Candidates))
	for i, input := range req.Candidates {
		candidate := models.Candidate{
			PoolID:       pool.ID,
			Player:       input.Player,
			Market:       models.MarketFor(input.StatCategory, input.IsAlternate),
			Line:         input.Line,
			Direction:    models.Direction(input.Direction),
			Book:         input.Book,
			AmericanOdds: input.AmericanOdds,
			Edge:         input.Edge,
		}
		if err := candidate.Validate(); err != nil {
			utils.SendValidationError(c, fmt.Sprintf("Invalid candidate at index %d", i), err.Error())
			return
		}
		if err := candidate.Derive(); err != nil {
			utils.SendValidationError(c, fmt.Sprintf("Invalid candidate at index %d", i), err.Error())
			return
		}
		pool.Candidates = append(pool.Candidates, candidate)
	}

	if err := h.db.Create(&pool).Error; err != nil {
		utils.SendInternalError(c, "Failed to store pool")
		return
	}

	utils.SendCreated(c, gin.H{
		"pool_id":    pool.ID,
		"candidates": len(pool.Candidates),
	})
}

// GetPool returns a stored pool with its candidates.
func (h *PoolHandler) GetPool(c *gin.Context) {
	poolID := c.Param("id")

	var pool models.Pool
	if err := h.db.Preload("Candidates").First(&pool, "id = ?", poolID).Error; err != nil {
		utils.SendNotFound(c, "Pool not found")
		return
	}

	utils.SendSuccess(c, pool)
}
