package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/domain/models"
	service "github.com/hal9000/warehouse/internal/service/catalogue"
)

// CatalogueHandler handles product admission, sale and availability requests.
type CatalogueHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewCatalogueHandler constructs the HTTP handler adapter for the catalogue.
func NewCatalogueHandler(svc *service.Service, logger *zap.Logger) *CatalogueHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogueHandler{svc: svc, logger: logger}
}

type componentIn struct {
	ArticleID int `json:"art_id"`
	AmountOf  int `json:"amount_of"`
}

type productIn struct {
	Name            string        `json:"name"`
	ContainArticles []componentIn `json:"contain_articles"`
}

type addProductsIn struct {
	Products []productIn `json:"products"`
}

type sellProductIn struct {
	ProductName     string `json:"productName" binding:"required"`
	ProductQuantity int    `json:"productQuantity"`
}

type availableProductOut struct {
	Name     string `json:"name"`
	AmountOf int    `json:"amount_of"`
}

// Update admits a batch of products into the catalogue.
func (h *CatalogueHandler) Update(c *gin.Context) {
	var in addProductsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid products payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	products := make([]models.Product, 0, len(in.Products))
	for _, product := range in.Products {
		components := make([]models.Component, 0, len(product.ContainArticles))
		for _, component := range product.ContainArticles {
			components = append(components, models.Component{
				ArticleID: component.ArticleID,
				Quantity:  component.AmountOf,
			})
		}
		products = append(products, models.Product{Name: product.Name, Components: components})
	}

	if err := h.svc.AdmitProducts(products); err != nil {
		conflict(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Sell attempts to sell a quantity of one product. Insufficient stock renders
// as a conflict with NOT_ENOUGH_SUPPLIES; it is not a domain error.
func (h *CatalogueHandler) Sell(c *gin.Context) {
	var in sellProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid sell payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sold, err := h.svc.SellProduct(in.ProductName, in.ProductQuantity)
	if err != nil {
		conflict(c, err)
		return
	}

	if !sold {
		c.JSON(http.StatusConflict, gin.H{
			"error":   codeNotEnoughSupplies,
			"message": "product cannot be sold",
		})
		return
	}

	c.Status(http.StatusOK)
}

// Available lists every product with a sellable quantity above zero.
func (h *CatalogueHandler) Available(c *gin.Context) {
	available := h.svc.AvailableProducts()

	out := make([]availableProductOut, 0, len(available))
	for _, product := range available {
		out = append(out, availableProductOut{
			Name:     product.Name,
			AmountOf: product.Quantity,
		})
	}

	c.JSON(http.StatusOK, gin.H{"products": out})
}
