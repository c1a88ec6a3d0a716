package storefront

import "fmt"

// Selectors for the demo storefront's stable element attributes. These
// are part of the site's published test contract and change rarely.
const (
	UsernameField = "#user-name"
	PasswordField = "#password"
	LoginButton   = "#login-button"
	ErrorBanner   = `[data-test="error"]`

	InventoryList = ".inventory_list"
	InventoryItem = ".inventory_item"

	CartBadge = ".shopping_cart_badge"
	CartLink  = ".shopping_cart_link"

	CartItem       = ".cart_item"
	ProductName    = ".inventory_item_name"
	CheckoutButton = "#checkout"
)

// AddToCartButton returns the add-to-cart control selector for a product
// slug, e.g. "sauce-labs-backpack".
func AddToCartButton(slug string) string {
	return fmt.Sprintf(`[data-test="add-to-cart-%s"]`, slug)
}

// RemoveButton returns the remove control selector for a product slug.
func RemoveButton(slug string) string {
	return fmt.Sprintf(`[data-test="remove-%s"]`, slug)
}
