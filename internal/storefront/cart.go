package storefront

import (
	"github.com/playwright-community/playwright-go"

	"github.com/aherreros/shopprobe/internal/domain"
)

// CartPage wraps the cart view with its line items and checkout entry.
type CartPage struct {
	page playwright.Page
}

// NewCartPage creates a CartPage bound to the given page.
func NewCartPage(page playwright.Page) *CartPage {
	return &CartPage{page: page}
}

// LineItemCount returns the number of cart line items.
func (c *CartPage) LineItemCount() (int, error) {
	count, err := c.page.Locator(CartItem).Count()
	if err != nil {
		return 0, domain.NewError("read", CartItem, c.page.URL(), "failed to count cart items", err)
	}
	return count, nil
}

// ProductNameCount returns the number of product-name elements left in
// the cart. Zero after the last item is removed.
func (c *CartPage) ProductNameCount() (int, error) {
	count, err := c.page.Locator(ProductName).Count()
	if err != nil {
		return 0, domain.NewError("read", ProductName, c.page.URL(), "failed to count product names", err)
	}
	return count, nil
}

// RemoveItem clicks the remove control for the given product slug.
func (c *CartPage) RemoveItem(slug string) error {
	sel := RemoveButton(slug)
	if err := c.page.Locator(sel).Click(); err != nil {
		return domain.NewError("click", sel, c.page.URL(), "failed to remove product from cart", err)
	}
	return nil
}

// Checkout activates the checkout entry control.
func (c *CartPage) Checkout() error {
	if err := c.page.Locator(CheckoutButton).Click(); err != nil {
		return domain.NewError("click", CheckoutButton, c.page.URL(), "failed to start checkout", err)
	}
	return nil
}
