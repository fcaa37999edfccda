package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/domain/models"
	service "github.com/hal9000/warehouse/internal/service/inventory"
)

// InventoryHandler handles stock intake HTTP requests.
type InventoryHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter for stocking.
func NewInventoryHandler(svc *service.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, logger: logger}
}

type articleSupplyIn struct {
	ArticleID int    `json:"art_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

type addInventoryIn struct {
	Inventory []articleSupplyIn `json:"inventory"`
}

// Update ingests an article supply batch and upserts it into the ledger.
func (h *InventoryHandler) Update(c *gin.Context) {
	var in addInventoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	supplies := make([]models.ArticleSupply, 0, len(in.Inventory))
	for _, article := range in.Inventory {
		supplies = append(supplies, models.ArticleSupply{
			Article:  models.Article{ID: article.ArticleID, Name: article.Name},
			Quantity: article.Stock,
		})
	}

	if err := h.svc.StockArticles(supplies); err != nil {
		conflict(c, err)
		return
	}

	c.Status(http.StatusOK)
}
