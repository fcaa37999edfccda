package catalogue

import (
	"sort"

	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/domain/models"
	"github.com/hal9000/warehouse/internal/repository/memory"
)

// Service owns product admission, sales and availability. It reads the ledger
// through its public lookup path and never reaches into ledger internals.
type Service struct {
	catalogue memory.Catalogue
	ledger    memory.Ledger
	logger    *zap.Logger
}

// NewService wires a new catalogue service instance.
func NewService(catalogue memory.Catalogue, ledger memory.Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalogue: catalogue, ledger: ledger, logger: logger}
}

// AdmitProducts validates a batch of candidate products and, only on full
// success, stores them. Component quantities are checked across the whole
// batch before article existence, so quantity errors take precedence. On
// failure the catalogue is untouched.
func (s *Service) AdmitProducts(products []models.Product) error {
	for _, product := range products {
		for _, component := range product.Components {
			if component.Quantity <= 0 {
				s.logger.Warn("product rejected",
					zap.String("product", product.Name),
					zap.Int("article_id", component.ArticleID),
					zap.Int("quantity", component.Quantity))
				return models.ErrInvalidQuantity
			}
		}
	}

	missing := make(map[int]struct{})
	for _, product := range products {
		for _, component := range product.Components {
			if _, ok := s.ledger.Lookup(component.ArticleID); !ok {
				missing[component.ArticleID] = struct{}{}
			}
		}
	}
	if len(missing) > 0 {
		ids := make([]int, 0, len(missing))
		for id := range missing {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		s.logger.Warn("products reference unknown articles", zap.Ints("article_ids", ids))
		return &models.NonExistentArticlesError{ArticleIDs: ids}
	}

	s.catalogue.Upsert(products)
	s.logger.Info("products admitted", zap.Int("products", len(products)))
	return nil
}

// SellProduct converts product demand into article demand and attempts one
// atomic withdrawal. The boolean reports whether the sale went through;
// insufficient stock is a normal negative outcome, not an error.
func (s *Service) SellProduct(name string, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, models.ErrInvalidQuantity
	}

	product, ok := s.catalogue.Lookup(name)
	if !ok {
		return false, models.ErrNonExistentProduct
	}

	demand := make([]models.ArticleDemand, 0, len(product.Components))
	for _, component := range product.Components {
		demand = append(demand, models.ArticleDemand{
			ArticleID: component.ArticleID,
			Quantity:  component.Quantity * quantity,
		})
	}

	sold := s.ledger.Withdraw(demand)
	s.logger.Info("sale attempted",
		zap.String("product", name),
		zap.Int("quantity", quantity),
		zap.Bool("sold", sold))
	return sold, nil
}

// AvailableProducts computes, for every catalogued product, how many units
// can be assembled from current stock. Products at zero are excluded and the
// result is sorted by name for deterministic output.
func (s *Service) AvailableProducts() []models.AvailableProduct {
	products := s.catalogue.ListAll()

	available := make([]models.AvailableProduct, 0, len(products))
	for _, product := range products {
		if quantity := s.availableQuantity(product); quantity > 0 {
			available = append(available, models.AvailableProduct{
				Name:     product.Name,
				Quantity: quantity,
			})
		}
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].Name < available[j].Name
	})
	return available
}

// availableQuantity is the minimum over all components of how many whole
// units the component's stock covers. An article missing from the ledger
// contributes zero; a product with no components is never sellable.
func (s *Service) availableQuantity(product models.Product) int {
	if len(product.Components) == 0 {
		return 0
	}

	minUnits := -1
	for _, component := range product.Components {
		supply, _ := s.ledger.Lookup(component.ArticleID)
		units := supply.Quantity / component.Quantity
		if minUnits < 0 || units < minUnits {
			minUnits = units
		}
	}
	return minUnits
}
