package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aherreros/shopprobe/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Target validation
	if cfg.Target.BaseURL == "" {
		errs = append(errs, "target.base_url must not be empty")
	} else if u, err := url.Parse(cfg.Target.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("target.base_url must be an absolute URL (got %q)", cfg.Target.BaseURL))
	}
	if cfg.Target.InventoryPath == "" {
		errs = append(errs, "target.inventory_path must not be empty")
	}
	if cfg.Target.CheckoutStepOnePath == "" {
		errs = append(errs, "target.checkout_step_one_path must not be empty")
	}

	// Credentials validation
	if cfg.Credentials.Password == "" {
		errs = append(errs, "credentials.password must not be empty")
	}
	if len(cfg.Credentials.Users) == 0 {
		errs = append(errs, "credentials.users must not be empty")
	}
	validKinds := map[domain.AccountKind]bool{
		domain.AccountStandard: true,
		domain.AccountLocked:   true,
		domain.AccountProblem:  true,
	}
	for i, u := range cfg.Credentials.Users {
		if u.Username == "" {
			errs = append(errs, fmt.Sprintf("credentials.users[%d].username must not be empty", i))
		}
		if !validKinds[u.Kind] {
			errs = append(errs, fmt.Sprintf("credentials.users[%d].kind must be one of: standard, locked, problem (got %q)", i, u.Kind))
		}
	}

	// Fixtures validation
	if cfg.Fixtures.ProductCount <= 0 {
		errs = append(errs, "fixtures.product_count must be positive")
	}
	if cfg.Fixtures.ProductSlug == "" {
		errs = append(errs, "fixtures.product_slug must not be empty")
	}

	// Browser validation
	validBrowsers := map[string]bool{"chromium": true, "firefox": true, "webkit": true}
	if !validBrowsers[cfg.Browser.Name] {
		errs = append(errs, fmt.Sprintf("browser.name must be one of: chromium, firefox, webkit (got %q)", cfg.Browser.Name))
	}
	if cfg.Browser.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Browser.Timeout); err != nil || d <= 0 {
			errs = append(errs, fmt.Sprintf("browser.timeout must be a positive duration (got %q)", cfg.Browser.Timeout))
		}
	}

	// Report validation
	if cfg.Report.Directory == "" {
		errs = append(errs, "report.directory must not be empty")
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", "", fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
