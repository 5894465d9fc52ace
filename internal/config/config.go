package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/TemirB/smm-orders/internal/domain"
)

const (
	DefaultMTPURL = "https://morethanpanel.com/api/v2"
	DefaultJAPURL = "https://godofpanel.com/api/v2"
)

type Panel struct {
	URL string
	Key string
}

type Config struct {
	HTTPAddr    string
	Secret      string
	SessionCap  int
	CatalogFile string

	PanelTimeout time.Duration
	Panels       map[domain.Panel]Panel
}

// Load reads the environment, with env/.env as an optional source.
func Load() (Config, error) { return load() }

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr:    envDefault("HTTP_ADDR", ":8081"),
		Secret:      strings.TrimSpace(os.Getenv("PASSWORD")),
		SessionCap:  envInt("SESSION_CAP", 1024),
		CatalogFile: strings.TrimSpace(os.Getenv("CATALOG_FILE")),

		PanelTimeout: envDurationMS("PANEL_TIMEOUT", 30*time.Second),
		Panels: map[domain.Panel]Panel{
			domain.PanelMTP: {
				URL: envDefault("MTP_API_URL", DefaultMTPURL),
				Key: strings.TrimSpace(os.Getenv("SMM_KEY")),
			},
			domain.PanelJAP: {
				URL: envDefault("JAP_API_URL", DefaultJAPURL),
				Key: strings.TrimSpace(os.Getenv("JAP_KEY")),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Secret == "" {
		return &missingEnvError{Keys: []string{"PASSWORD"}}
	}
	if c.SessionCap <= 0 {
		log.Printf("SESSION_CAP is %d, adjusting to 1", c.SessionCap)
	}
	if c.PanelTimeout <= 0 {
		log.Printf("PANEL_TIMEOUT is %v, client will wait indefinitely", c.PanelTimeout)
	}
	return nil
}

// MissingKeys lists panels that have no API key configured. Those panels stay
// unusable but do not block the rest of the tool.
func (c Config) MissingKeys() []domain.Panel {
	var out []domain.Panel
	for _, p := range domain.Panels {
		if c.Panels[p].Key == "" {
			out = append(out, p)
		}
	}
	return out
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
