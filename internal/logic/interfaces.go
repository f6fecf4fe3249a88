package logic

import "shopgrip/internal/domain"

// CatalogStore provides access to the loaded home page and the products
// seen so far
type CatalogStore interface {
	HomePage() domain.HomePage
	SetHomePage(page domain.HomePage)
	Product(handle string) (domain.Product, bool)
	AddProducts(products ...domain.Product)
}

// CartStore remembers the storefront cart for this process
type CartStore interface {
	CartID() string
	Cart() *domain.Cart
	SetCart(cart *domain.Cart)
	Clear()
}
