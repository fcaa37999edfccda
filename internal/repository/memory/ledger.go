package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/domain/models"
)

// Ledger defines the interface for article stock storage. It is the single
// source of truth for how much of each article exists.
type Ledger interface {
	Upsert(supplies []models.ArticleSupply) error
	Withdraw(demand []models.ArticleDemand) bool
	Lookup(articleID int) (models.ArticleSupply, bool)
}

// StockLedger is an in-memory Ledger guarded by a single read-write mutex.
// All mutation-and-check sequences run under the exclusive lock, which is what
// makes Withdraw a true all-or-nothing operation.
type StockLedger struct {
	mu     sync.RWMutex
	stock  map[int]models.ArticleSupply
	logger *zap.Logger
}

// NewStockLedger creates an empty stock ledger.
func NewStockLedger(logger *zap.Logger) *StockLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockLedger{
		stock:  make(map[int]models.ArticleSupply),
		logger: logger,
	}
}

// Upsert replaces the stored supply for every article in the batch, name and
// quantity together. The whole batch is validated before any entry is applied:
// a single non-positive quantity rejects everything.
func (l *StockLedger) Upsert(supplies []models.ArticleSupply) error {
	for _, supply := range supplies {
		if supply.Quantity <= 0 {
			l.logger.Warn("rejected stock batch",
				zap.Int("article_id", supply.Article.ID),
				zap.Int("quantity", supply.Quantity))
			return models.ErrInvalidQuantity
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, supply := range supplies {
		l.stock[supply.Article.ID] = supply
	}

	l.logger.Debug("stock upserted", zap.Int("articles", len(supplies)))
	return nil
}

// Withdraw atomically checks and decrements stock for the whole demand.
// Demand lines referencing the same article id are summed into one combined
// requirement so the check covers the full decrement. An article id absent
// from the ledger counts as zero stock. Either every line is applied or none.
func (l *StockLedger) Withdraw(demand []models.ArticleDemand) bool {
	required := make(map[int]int, len(demand))
	for _, d := range demand {
		required[d.ArticleID] += d.Quantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for articleID, amount := range required {
		if l.stock[articleID].Quantity < amount {
			l.logger.Debug("withdrawal refused",
				zap.Int("article_id", articleID),
				zap.Int("requested", amount),
				zap.Int("in_stock", l.stock[articleID].Quantity))
			return false
		}
	}

	for articleID, amount := range required {
		supply := l.stock[articleID]
		supply.Quantity -= amount
		l.stock[articleID] = supply
	}

	return true
}

// Lookup returns the current supply for an article id, reporting whether the
// article exists at all.
func (l *StockLedger) Lookup(articleID int) (models.ArticleSupply, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	supply, ok := l.stock[articleID]
	return supply, ok
}
