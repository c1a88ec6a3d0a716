package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aherreros/shopprobe/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Target      TargetConfig     `yaml:"target"`
	Credentials CredentialConfig `yaml:"credentials"`
	Fixtures    FixtureConfig    `yaml:"fixtures"`
	Browser     BrowserConfig    `yaml:"browser"`
	Report      ReportConfig     `yaml:"report"`
	Logging     LoggingConfig    `yaml:"logging"`
}

// TargetConfig identifies the storefront under test.
type TargetConfig struct {
	BaseURL             string `yaml:"base_url"`
	InventoryPath       string `yaml:"inventory_path"`
	CheckoutStepOnePath string `yaml:"checkout_step_one_path"`
}

// CredentialConfig holds the seeded demo accounts. All accounts share
// one constant password.
type CredentialConfig struct {
	Password string       `yaml:"password"`
	Users    []UserConfig `yaml:"users"`
}

type UserConfig struct {
	Username string             `yaml:"username"`
	Kind     domain.AccountKind `yaml:"kind"`
}

// FixtureConfig holds literals tied to the demo site's current content.
// They describe the fixture, not business logic; verify against the live
// site before changing.
type FixtureConfig struct {
	ProductCount int    `yaml:"product_count"`
	ProductSlug  string `yaml:"product_slug"`
	ProductName  string `yaml:"product_name"`
}

type BrowserConfig struct {
	Name     string `yaml:"name"`     // "chromium", "firefox", "webkit"
	Headless *bool  `yaml:"headless"` // pointer to distinguish unset from false
	Timeout  string `yaml:"timeout"`  // Go duration string, e.g. "10s"
	SlowMo   string `yaml:"slow_mo"`
}

// TimeoutDuration parses the configured element/navigation timeout.
// Invalid or empty values fall back to the default.
func (b BrowserConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(b.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// SlowMoDuration parses the configured slow-motion delay, zero when unset.
func (b BrowserConfig) SlowMoDuration() time.Duration {
	d, err := time.ParseDuration(b.SlowMo)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

type ReportConfig struct {
	Directory    string `yaml:"directory"`
	MarkdownFile string `yaml:"markdown_file"`
	HTMLFile     string `yaml:"html_file"`
	Title        string `yaml:"title"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file, applies environment overrides
// and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", "", path, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", "", path, "failed to parse config file", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets a .env file or the environment retarget the
// suite without editing YAML. Missing .env is not an error.
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SHOPPROBE_BASE_URL"); v != "" {
		cfg.Target.BaseURL = v
	}
	if v := os.Getenv("SHOPPROBE_PASSWORD"); v != "" {
		cfg.Credentials.Password = v
	}
	if v := os.Getenv("SHOPPROBE_HEADLESS"); v != "" {
		if headless, err := strconv.ParseBool(v); err == nil {
			cfg.Browser.Headless = &headless
		}
	}
}

// Seeded returns the configured users as fully-populated credentials,
// in array order.
func (c *Config) Seeded() []domain.Credential {
	creds := make([]domain.Credential, 0, len(c.Credentials.Users))
	for _, u := range c.Credentials.Users {
		creds = append(creds, domain.Credential{
			Username: u.Username,
			Password: c.Credentials.Password,
			Kind:     u.Kind,
		})
	}
	return creds
}
