package config

import "github.com/aherreros/shopprobe/internal/domain"

// DefaultConfig returns a Config with sensible default values, aimed at
// the public Swag Labs demo storefront.
func DefaultConfig() *Config {
	headless := true
	return &Config{
		Target: TargetConfig{
			BaseURL:             "https://www.saucedemo.com",
			InventoryPath:       "inventory",
			CheckoutStepOnePath: "checkout-step-one",
		},
		Credentials: CredentialConfig{
			Password: "secret_sauce",
			Users: []UserConfig{
				{Username: "standard_user", Kind: domain.AccountStandard},
				{Username: "locked_out_user", Kind: domain.AccountLocked},
				{Username: "problem_user", Kind: domain.AccountProblem},
			},
		},
		Fixtures: FixtureConfig{
			ProductCount: 6,
			ProductSlug:  "sauce-labs-backpack",
			ProductName:  "Sauce Labs Backpack",
		},
		Browser: BrowserConfig{
			Name:     "chromium",
			Headless: &headless,
			Timeout:  "10s",
		},
		Report: ReportConfig{
			Directory:    "reports",
			MarkdownFile: "run_summary.md",
			HTMLFile:     "run_summary.html",
			Title:        "Storefront E2E Run",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
