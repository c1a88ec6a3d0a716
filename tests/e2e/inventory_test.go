//go:build e2e

package e2e

import (
	"github.com/playwright-community/playwright-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aherreros/shopprobe/internal/storefront"
)

var _ = Describe("Inventory", func() {
	var (
		page      playwright.Page
		inventory *storefront.InventoryPage
	)

	BeforeEach(func() {
		page = newScenarioPage()
		loginAsStandard(page)
		inventory = storefront.NewInventoryPage(page)
	})

	It("lists the full product catalog", func() {
		Eventually(inventory.ItemCount).Should(Equal(suiteConfig().Fixtures.ProductCount))
	})

	It("shows a cart badge of 1 after adding a product", func() {
		Expect(inventory.AddToCart(suiteConfig().Fixtures.ProductSlug)).To(Succeed())
		Eventually(inventory.BadgeText).Should(Equal("1"))
	})
})
