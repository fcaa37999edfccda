package inventory

import (
	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/domain/models"
	"github.com/hal9000/warehouse/internal/repository/memory"
)

// Service handles stock intake for the article ledger.
type Service struct {
	ledger memory.Ledger
	logger *zap.Logger
}

// NewService wires a new inventory service instance.
func NewService(ledger memory.Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{ledger: ledger, logger: logger}
}

// StockArticles records the supplied articles, replacing any prior stock held
// under the same ids. The batch is all-or-nothing: an invalid quantity
// anywhere rejects every entry.
func (s *Service) StockArticles(supplies []models.ArticleSupply) error {
	if err := s.ledger.Upsert(supplies); err != nil {
		s.logger.Warn("stock intake rejected", zap.Error(err))
		return err
	}

	s.logger.Info("stock intake applied", zap.Int("articles", len(supplies)))
	return nil
}
