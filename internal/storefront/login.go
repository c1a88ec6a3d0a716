// Package storefront drives the demo shop's pages through Playwright
// locators. Page objects perform actions and read state; they render no
// verdicts — asserting outcomes is the scenario's job.
package storefront

import (
	"github.com/playwright-community/playwright-go"

	"github.com/aherreros/shopprobe/internal/domain"
)

// LoginPage wraps the storefront's login form.
type LoginPage struct {
	page    playwright.Page
	baseURL string
}

// NewLoginPage creates a LoginPage bound to the given page and base URL.
func NewLoginPage(page playwright.Page, baseURL string) *LoginPage {
	return &LoginPage{page: page, baseURL: baseURL}
}

// Open navigates to the application root.
func (l *LoginPage) Open() error {
	if _, err := l.page.Goto(l.baseURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return domain.NewError("navigate", "", l.baseURL, "failed to open login page", err)
	}
	return nil
}

// Login opens the application root, fills both credential fields and
// submits the form. It deliberately makes no judgment about whether the
// login succeeded, so the same action serves valid and invalid login
// scenarios; the caller asserts the outcome.
func (l *LoginPage) Login(username, password string) error {
	if err := l.Open(); err != nil {
		return err
	}
	if err := l.page.Locator(UsernameField).Fill(username); err != nil {
		return domain.NewError("fill", UsernameField, l.page.URL(), "failed to fill username", err)
	}
	if err := l.page.Locator(PasswordField).Fill(password); err != nil {
		return domain.NewError("fill", PasswordField, l.page.URL(), "failed to fill password", err)
	}
	if err := l.page.Locator(LoginButton).Click(); err != nil {
		return domain.NewError("click", LoginButton, l.page.URL(), "failed to submit login form", err)
	}
	return nil
}

// ErrorText returns the text of the login error banner. The locator
// waits for the banner to become visible first, so a missing banner
// surfaces as the driver's element-not-found timeout.
func (l *LoginPage) ErrorText() (string, error) {
	banner := l.page.Locator(ErrorBanner)
	if err := banner.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return "", domain.NewError("read", ErrorBanner, l.page.URL(), "error banner not visible", err)
	}
	text, err := banner.TextContent()
	if err != nil {
		return "", domain.NewError("read", ErrorBanner, l.page.URL(), "failed to read error banner", err)
	}
	return text, nil
}
