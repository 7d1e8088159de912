package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/assets"
	"github.com/dmitrymomot/resignly/handlers"
	"github.com/dmitrymomot/resignly/middlewares"
	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/pkg/cache"
	"github.com/dmitrymomot/resignly/pkg/config"
	"github.com/dmitrymomot/resignly/pkg/content"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/logger"
	"github.com/dmitrymomot/resignly/pkg/mailer"
	"github.com/dmitrymomot/resignly/pkg/mailer/resend"
	rediskit "github.com/dmitrymomot/resignly/pkg/redis"
	"github.com/dmitrymomot/resignly/views"
)

const flushTimeout = 2 * time.Second

func newServeCommand(c *cli) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides APP_ADDR)")
	return cmd
}

// serveConfig groups every section read from the environment.
type serveConfig struct {
	App     AppConfig
	Log     logger.Config
	Mail    mailer.Config
	Resend  resend.Config
	Content content.S3Config
	Redis   rediskit.Config
}

func (c *cli) serve(ctx context.Context, addr string) error {
	var cfg serveConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	l := logger.NewWithConfig(cfg.Log, os.Stdout, middlewares.RequestIDExtractor())
	defer logger.Flush(flushTimeout)

	run := []resignly.RunOption{
		resignly.Address(addr),
		resignly.Logger(l),
		resignly.WithContext(ctx),
		resignly.OnReady(func(a net.Addr) {
			l.Info("server ready", slog.String("addr", a.String()), slog.String("env", cfg.App.Env))
		}),
	}
	health := []resignly.HealthOption{}

	htmlCache, previewCache, err := c.caches(ctx, cfg, l, &run, &health)
	if err != nil {
		return err
	}

	src, err := blogSource(cfg.Content)
	if err != nil {
		return err
	}
	store := blog.NewStore(src,
		blog.WithHTMLCache(htmlCache, cfg.App.CacheTTL),
		blog.WithLogger(logger.Component(l, "blog")),
	)
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("loading blog: %w", err)
	}
	refresher, err := blog.NewRefresher(store, cfg.App.BlogSchedule, logger.Component(l, "blog"))
	if err != nil {
		return err
	}
	run = append(run, resignly.StartupHook(refresher.Start), resignly.ShutdownHook(refresher.Shutdown))
	health = append(health, resignly.WithReadinessCheck("blog", store.Healthcheck))

	faq, err := assets.FAQ()
	if err != nil {
		return err
	}

	renderer, err := views.New()
	if err != nil {
		return err
	}
	v := handlers.Views{
		Renderer: renderer,
		Site: views.Site{
			Name:    cfg.App.SiteName,
			BaseURL: cfg.App.BaseURL,
			Year:    time.Now().Year(),
		},
	}

	exporter := export.New(
		export.WithLogger(logger.Component(l, "export")),
		export.WithLetterOptions(c.letterOpts...),
	)

	app := resignly.New(
		resignly.WithCustomLogger(l),
		resignly.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog("/health/", "/static/"),
			middlewares.Recover(),
			middlewares.Timeout(cfg.App.RequestTimeout),
		),
		resignly.WithStaticFiles("/static/", assets.Static(), "."),
		resignly.WithHealthChecks(health...),
		resignly.WithErrorHandler(handlers.ErrorHandler(v)),
		resignly.WithNotFoundHandler(handlers.NotFound),
		resignly.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		resignly.WithHandlers(
			handlers.NewPages(v, store, faq),
			handlers.NewTemplates(v, cache.NewLoader(previewCache, cfg.App.CacheTTL), c.letterOpts...),
			handlers.NewLetter(v, exporter, c.letterOpts...),
			handlers.NewBlog(v, store, cfg.App.PostsPerPage),
			handlers.NewContact(v, newMailer(cfg, l)),
		),
	)

	return app.Run(cfg.App.Addr, run...)
}

// caches returns the blog HTML and preview caches. Redis backs both when
// REDIS_URL is set, otherwise they live in process memory.
func (c *cli) caches(ctx context.Context, cfg serveConfig, l *slog.Logger, run *[]resignly.RunOption, health *[]resignly.HealthOption) (cache.Cache[string], cache.Cache[string], error) {
	if !cfg.Redis.Enabled() {
		return cache.NewMemory[string](cache.WithMaxEntries(512)),
			cache.NewMemory[string](cache.WithMaxEntries(1024)),
			nil
	}

	client, err := rediskit.Open(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	l.Info("using redis cache")

	*run = append(*run, resignly.ShutdownHook(rediskit.Shutdown(client)))
	*health = append(*health, resignly.WithReadinessCheck("redis", rediskit.Healthcheck(client)))

	return cache.NewRedis[string](client, "resignly:blog:", cfg.App.CacheTTL, cache.JSON[string]{}),
		cache.NewRedis[string](client, "resignly:preview:", cfg.App.CacheTTL, cache.JSON[string]{}),
		nil
}

func blogSource(cfg content.S3Config) (content.Source, error) {
	if !cfg.Enabled() {
		return content.NewFS(assets.Blog(), assets.BlogDir), nil
	}
	src, err := content.NewS3(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating blog source: %w", err)
	}
	return src, nil
}

func newMailer(cfg serveConfig, l *slog.Logger) *mailer.Mailer {
	var sender mailer.Sender = mailer.NewLogSender(logger.Component(l, "mail"))
	if cfg.Resend.Enabled() {
		sender = resend.New(cfg.Resend)
	}
	return mailer.New(sender, nil, cfg.Mail, mailer.WithLogger(logger.Component(l, "mailer")))
}
