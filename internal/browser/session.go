package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/aherreros/shopprobe/internal/config"
	"github.com/aherreros/shopprobe/internal/domain"
)

// Session owns the Playwright driver and one launched browser. Pages are
// created one per scenario, each inside its own browser context so no
// cookies or storage leak between scenarios.
type Session struct {
	cfg     config.BrowserConfig
	log     *logrus.Logger
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Launch starts the Playwright driver and launches the configured browser.
func Launch(cfg config.BrowserConfig, log *logrus.Logger) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, domain.NewError("launch", "", "", "failed to start playwright driver", err)
	}

	bt, err := browserType(pw, cfg.Name)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	opts := playwright.BrowserTypeLaunchOptions{}
	if cfg.Headless != nil {
		opts.Headless = playwright.Bool(*cfg.Headless)
	}
	if slowMo := cfg.SlowMoDuration(); slowMo > 0 {
		opts.SlowMo = playwright.Float(float64(slowMo.Milliseconds()))
	}

	b, err := bt.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		return nil, domain.NewError("launch", "", "", fmt.Sprintf("failed to launch %s", cfg.Name), err)
	}

	log.Debugf("Launched %s (headless=%v, timeout=%s)", cfg.Name, cfg.Headless == nil || *cfg.Headless, cfg.TimeoutDuration())

	return &Session{cfg: cfg, log: log, pw: pw, browser: b}, nil
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "chromium", "":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, domain.NewError("launch", "", "", fmt.Sprintf("unsupported browser %q", name), nil)
	}
}

// NewPage creates a fresh browser context and a page in it, with the
// configured default and navigation timeouts applied.
func (s *Session) NewPage() (playwright.Page, error) {
	ctx, err := s.browser.NewContext()
	if err != nil {
		return nil, domain.NewError("launch", "", "", "failed to create browser context", err)
	}

	timeoutMS := float64(s.cfg.TimeoutDuration().Milliseconds())
	ctx.SetDefaultTimeout(timeoutMS)
	ctx.SetDefaultNavigationTimeout(timeoutMS)

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		return nil, domain.NewError("launch", "", "", "failed to create page", err)
	}
	return page, nil
}

// ClearState removes cookies from the page's context and wipes local and
// session storage. Storage clearing needs an origin, so the page must
// already be on the application before calling this.
func (s *Session) ClearState(page playwright.Page) error {
	if err := page.Context().ClearCookies(); err != nil {
		return domain.NewError("launch", "", page.URL(), "failed to clear cookies", err)
	}
	if _, err := page.Evaluate("() => { localStorage.clear(); sessionStorage.clear(); }"); err != nil {
		return domain.NewError("launch", "", page.URL(), "failed to clear storage", err)
	}
	return nil
}

// ClosePage closes the page and the context that owns it.
func (s *Session) ClosePage(page playwright.Page) {
	ctx := page.Context()
	if err := page.Close(); err != nil {
		s.log.Warnf("Failed to close page: %v", err)
	}
	if err := ctx.Close(); err != nil {
		s.log.Warnf("Failed to close context: %v", err)
	}
}

// Close shuts down the browser and stops the Playwright driver.
func (s *Session) Close() error {
	var firstErr error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			firstErr = err
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Install downloads the driver and the configured browser binary. Used
// by the CLI so CI images can pre-bake the install step.
func Install(name string) error {
	if name == "" {
		name = "chromium"
	}
	return playwright.Install(&playwright.RunOptions{Browsers: []string{name}})
}
