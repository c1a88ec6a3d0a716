package storefront

import (
	"github.com/playwright-community/playwright-go"

	"github.com/aherreros/shopprobe/internal/domain"
)

// InventoryPage wraps the product listing reached after a successful login.
type InventoryPage struct {
	page playwright.Page
}

// NewInventoryPage creates an InventoryPage bound to the given page.
func NewInventoryPage(page playwright.Page) *InventoryPage {
	return &InventoryPage{page: page}
}

// ItemCount returns the number of product items in the listing container.
// It waits for the container itself before counting so an empty count is
// a real answer, not a race.
func (i *InventoryPage) ItemCount() (int, error) {
	list := i.page.Locator(InventoryList)
	if err := list.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return 0, domain.NewError("read", InventoryList, i.page.URL(), "inventory list not visible", err)
	}
	count, err := i.page.Locator(InventoryItem).Count()
	if err != nil {
		return 0, domain.NewError("read", InventoryItem, i.page.URL(), "failed to count inventory items", err)
	}
	return count, nil
}

// AddToCart clicks the add-to-cart control for the given product slug.
func (i *InventoryPage) AddToCart(slug string) error {
	sel := AddToCartButton(slug)
	if err := i.page.Locator(sel).Click(); err != nil {
		return domain.NewError("click", sel, i.page.URL(), "failed to add product to cart", err)
	}
	return nil
}

// BadgeText returns the cart badge text, or "" when no badge is rendered
// (the badge element is absent while the cart is empty).
func (i *InventoryPage) BadgeText() (string, error) {
	badge := i.page.Locator(CartBadge)
	count, err := badge.Count()
	if err != nil {
		return "", domain.NewError("read", CartBadge, i.page.URL(), "failed to query cart badge", err)
	}
	if count == 0 {
		return "", nil
	}
	text, err := badge.TextContent()
	if err != nil {
		return "", domain.NewError("read", CartBadge, i.page.URL(), "failed to read cart badge", err)
	}
	return text, nil
}

// OpenCart clicks through to the cart view.
func (i *InventoryPage) OpenCart() error {
	if err := i.page.Locator(CartLink).Click(); err != nil {
		return domain.NewError("click", CartLink, i.page.URL(), "failed to open cart", err)
	}
	return nil
}
