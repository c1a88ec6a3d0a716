package storefront_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aherreros/shopprobe/internal/domain"
	"github.com/aherreros/shopprobe/internal/storefront"
)

var _ = Describe("Selectors", func() {
	It("should build slug-keyed add-to-cart selectors", func() {
		Expect(storefront.AddToCartButton("sauce-labs-backpack")).
			To(Equal(`[data-test="add-to-cart-sauce-labs-backpack"]`))
	})

	It("should build slug-keyed remove selectors", func() {
		Expect(storefront.RemoveButton("sauce-labs-backpack")).
			To(Equal(`[data-test="remove-sauce-labs-backpack"]`))
	})
})

var _ = Describe("ExpectationFor", func() {
	It("should expect a lockout error for locked accounts", func() {
		outcome := storefront.ExpectationFor(domain.AccountLocked, "inventory")
		Expect(outcome.Kind).To(Equal(domain.OutcomeBlocked))
		Expect(outcome.MessageSubstring).To(Equal("locked out"))
		Expect(outcome.LocationSubstring).To(BeEmpty())
	})

	It("should expect admission for standard accounts", func() {
		outcome := storefront.ExpectationFor(domain.AccountStandard, "inventory")
		Expect(outcome.Kind).To(Equal(domain.OutcomeAdmitted))
		Expect(outcome.LocationSubstring).To(Equal("inventory"))
		Expect(outcome.MessageSubstring).To(BeEmpty())
	})

	It("should treat problem accounts like standard ones at login", func() {
		outcome := storefront.ExpectationFor(domain.AccountProblem, "inventory")
		Expect(outcome.Kind).To(Equal(domain.OutcomeAdmitted))
	})
})
