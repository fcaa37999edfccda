package models

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity signals that a supplied quantity violates its positivity
// constraint. Applies to stock intake, recipe components and sale quantities.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// ErrNonExistentProduct signals a sale against a product name that is not in
// the catalogue.
var ErrNonExistentProduct = errors.New("product does not exist in catalogue")

// NonExistentArticlesError reports recipe components referencing article ids
// that are absent from the stock ledger. ArticleIDs is sorted and free of
// duplicates.
type NonExistentArticlesError struct {
	ArticleIDs []int
}

func (e *NonExistentArticlesError) Error() string {
	return fmt.Sprintf("articles %v are not in the inventory", e.ArticleIDs)
}
