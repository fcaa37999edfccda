package models

// Component is one recipe line: the article and how many units of it are
// needed per unit of product.
type Component struct {
	ArticleID int
	Quantity  int
}

// Product is a sellable item defined by a fixed recipe of components.
// Component order carries no meaning.
type Product struct {
	Name       string
	Components []Component
}

// AvailableProduct reports how many units of a product can currently be
// assembled from stock. Derived, never stored.
type AvailableProduct struct {
	Name     string
	Quantity int
}
