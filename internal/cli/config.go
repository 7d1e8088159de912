package cli

import (
	"fmt"
	"time"
)

// AppConfig is the process configuration read from the environment.
type AppConfig struct {
	Addr           string        `env:"APP_ADDR" envDefault:":8080"`
	BaseURL        string        `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	Timezone       string        `env:"APP_TIMEZONE" envDefault:"Local"`
	Env            string        `env:"APP_ENV" envDefault:"development"`
	SiteName       string        `env:"APP_SITE_NAME" envDefault:"Resignly"`
	RequestTimeout time.Duration `env:"APP_REQUEST_TIMEOUT" envDefault:"30s"`
	CacheTTL       time.Duration `env:"APP_CACHE_TTL" envDefault:"1h"`
	BlogSchedule   string        `env:"BLOG_REFRESH_SCHEDULE" envDefault:"*/15 * * * *"`
	PostsPerPage   int           `env:"BLOG_POSTS_PER_PAGE" envDefault:"9"`
}

// Location resolves Timezone. "Local" and "" mean the host zone.
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Production reports whether APP_ENV is production.
func (c AppConfig) Production() bool {
	return c.Env == "production"
}
