package storefront

import "github.com/aherreros/shopprobe/internal/domain"

// Substring the storefront includes in its lockout error banner.
const lockedOutMessage = "locked out"

// ExpectationFor maps an account kind to its declarative login outcome.
// Keeping the table here keeps the scenario generator free of embedded
// conditionals: a locked account expects a visible error containing the
// lockout message, every other kind expects to land on the inventory page.
func ExpectationFor(kind domain.AccountKind, inventoryPath string) domain.Outcome {
	if kind == domain.AccountLocked {
		return domain.Outcome{
			Kind:             domain.OutcomeBlocked,
			MessageSubstring: lockedOutMessage,
		}
	}
	return domain.Outcome{
		Kind:              domain.OutcomeAdmitted,
		LocationSubstring: inventoryPath,
	}
}
