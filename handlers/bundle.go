package handlers

// HandlerBundle aggregates the handlers main wires up, so route registration
// takes a single argument.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Admin   *AdminHandler
}
