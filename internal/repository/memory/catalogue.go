package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/domain/models"
)

// Catalogue defines the interface for product recipe storage. It is a pure
// store: validation against the ledger happens before anything reaches it.
type Catalogue interface {
	Upsert(products []models.Product)
	Lookup(name string) (models.Product, bool)
	ListAll() []models.Product
}

// ProductCatalogue is an in-memory Catalogue guarded by its own mutex,
// independent of the ledger's lock. Stored products never share component
// slices with callers.
type ProductCatalogue struct {
	mu       sync.RWMutex
	products map[string]models.Product
	logger   *zap.Logger
}

// NewProductCatalogue creates an empty product catalogue.
func NewProductCatalogue(logger *zap.Logger) *ProductCatalogue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductCatalogue{
		products: make(map[string]models.Product),
		logger:   logger,
	}
}

// Upsert replaces each named product's recipe wholesale. Re-admitting a name
// never merges with the previous recipe.
func (c *ProductCatalogue) Upsert(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, product := range products {
		product.Components = cloneComponents(product.Components)
		c.products[product.Name] = product
	}

	c.logger.Debug("catalogue upserted", zap.Int("products", len(products)))
}

// Lookup returns the product stored under name, if any.
func (c *ProductCatalogue) Lookup(name string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[name]
	if !ok {
		return models.Product{}, false
	}
	product.Components = cloneComponents(product.Components)
	return product, true
}

// ListAll returns a snapshot of every stored product, in no particular order.
func (c *ProductCatalogue) ListAll() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]models.Product, 0, len(c.products))
	for _, product := range c.products {
		product.Components = cloneComponents(product.Components)
		all = append(all, product)
	}
	return all
}

func cloneComponents(components []models.Component) []models.Component {
	if components == nil {
		return nil
	}
	cloned := make([]models.Component, len(components))
	copy(cloned, components)
	return cloned
}
