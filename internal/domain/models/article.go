package models

// Article is the smallest inventoried unit, identified by a unique integer id.
type Article struct {
	ID   int
	Name string
}

// ArticleSupply pairs an article with the quantity of it held in stock.
type ArticleSupply struct {
	Article  Article
	Quantity int
}

// ArticleDemand expresses how many units of one article a withdrawal requires.
type ArticleDemand struct {
	ArticleID int
	Quantity  int
}
