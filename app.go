package postfeed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/sessions"
	"github.com/nasermirzaei89/env"
	"github.com/nasermirzaei89/postfeed/db/memory"
	"github.com/nasermirzaei89/postfeed/db/yamlstore"
	"github.com/nasermirzaei89/postfeed/discuss"
	"github.com/nasermirzaei89/postfeed/random"
	"github.com/nasermirzaei89/postfeed/server"
	"github.com/nasermirzaei89/postfeed/timefmt"
	"github.com/nasermirzaei89/postfeed/timeline"
	"github.com/nasermirzaei89/postfeed/tui"
	"github.com/nasermirzaei89/postfeed/web"
)

const (
	defaultTimeZone     = "America/Sao_Paulo"
	defaultViewTTL      = 30 * time.Minute
	defaultViewCapacity = 10_000
)

//go:embed posts.yaml
var defaultPostsContent []byte

type App struct {
	server   *server.Server
	handler  *web.Handler
	viewRepo *memory.ViewRepository
}

func NewApp(ctx context.Context) (*App, error) {
	timelineSvc, err := newTimelineService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline service: %w", err)
	}

	timeFormatter, err := newTimeFormatter()
	if err != nil {
		return nil, fmt.Errorf("failed to create time formatter: %w", err)
	}

	viewTTL, err := getDuration("VIEW_TTL", defaultViewTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to read view ttl: %w", err)
	}

	viewCapacity, err := getInt("VIEW_CAPACITY", defaultViewCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to read view capacity: %w", err)
	}

	viewRepo := memory.NewViewRepository(viewCapacity, viewTTL)
	discussSvc := discuss.NewService(viewRepo)

	srv := newServer()

	sessionName := env.GetString("SESSION_NAME", "postfeed-"+random.HexString(4))
	cookieStore := sessions.NewCookieStore(secretFromEnv("SESSION_KEY", 32))
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Secure = srv.TLS.Enabled
	cookieStore.Options.SameSite = http.SameSiteLaxMode

	csrfAuthKeys := secretFromEnv("CSRF_AUTH_KEY", 32)
	csrfTrustedOrigins := env.GetStringSlice("CSRF_TRUSTED_ORIGINS", []string{})

	httpHandler, err := web.NewHandler(
		timelineSvc,
		discussSvc,
		timeFormatter,
		cookieStore,
		sessionName,
		csrfAuthKeys,
		csrfTrustedOrigins,
		srv.TLS.Enabled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	slog.DebugContext(ctx, "app created", "sessionName", sessionName, "viewTTL", viewTTL, "viewCapacity", viewCapacity)

	app := &App{
		server:   srv,
		handler:  httpHandler,
		viewRepo: viewRepo,
	}

	return app, nil
}

func (app *App) Run(ctx context.Context) error {
	// Handle SIGINT (CTRL+C) gracefully.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	defer app.viewRepo.Purge()

	err := app.server.Run(ctx, app.handler)
	if err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	return nil
}

// RunTerminal renders the feed in the terminal until the user quits.
func RunTerminal(ctx context.Context) error {
	timelineSvc, err := newTimelineService()
	if err != nil {
		return fmt.Errorf("failed to create timeline service: %w", err)
	}

	timeFormatter, err := newTimeFormatter()
	if err != nil {
		return fmt.Errorf("failed to create time formatter: %w", err)
	}

	posts, err := timelineSvc.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	program := tea.NewProgram(tui.New(posts, timeFormatter), tea.WithContext(ctx), tea.WithAltScreen())

	_, err = program.Run()
	if err != nil {
		return fmt.Errorf("failed to run terminal program: %w", err)
	}

	return nil
}

func newServer() *server.Server {
	server := &server.Server{
		Port: env.GetString("PORT", server.DefaultPort),
		Host: env.GetString("HOST", ""),
		TLS: server.ServerTLS{
			Enabled: env.GetBool("TLS_ENABLED", false),
			Mode:    env.GetString("TLS_MODE", server.DefaultTLSMode),
			AutoCert: &server.ServerTLSAutoCert{
				CacheDir: env.GetString("TLS_AUTOCERT_CACHE_DIR", "./cert-cache"),
				Domains:  env.GetStringSlice("TLS_AUTOCERT_DOMAINS", []string{}),
				Email:    env.GetString("TLS_AUTOCERT_EMAIL", ""),
			},
			CertFile: env.GetString("TLS_CERT_FILE", ""),
			KeyFile:  env.GetString("TLS_KEY_FILE", ""),
		},
	}

	return server
}

func newTimelineService() (*timeline.Service, error) {
	content, err := loadPostsContent()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts content: %w", err)
	}

	postRepo, err := yamlstore.NewPostRepository(content)
	if err != nil {
		return nil, fmt.Errorf("failed to create post repository: %w", err)
	}

	return timeline.NewService(postRepo), nil
}

func loadPostsContent() ([]byte, error) {
	postsFilePath := env.GetString("POSTS_FILE", "")

	if postsFilePath == "" {
		return defaultPostsContent, nil
	}

	content, err := os.ReadFile(postsFilePath) // nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read posts file %q: %w", postsFilePath, err)
	}

	return content, nil
}

func newTimeFormatter() (*timefmt.Formatter, error) {
	name := env.GetString("TIME_ZONE", defaultTimeZone)

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}

	return timefmt.New(location, time.Now), nil
}

// secretFromEnv returns the key from the environment, or n random bytes when
// unset. Random keys invalidate every cookie on restart.
func secretFromEnv(key string, n int) []byte {
	value := env.GetString(key, "")
	if value == "" {
		return random.Secret(n)
	}

	return []byte(value)
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	value := env.GetString(key, "")
	if value == "" {
		return def, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}

	return d, nil
}

func getInt(key string, def int) (int, error) {
	value := env.GetString(key, "")
	if value == "" {
		return def, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}

	return n, nil
}

func GetLogLevelFromEnv() slog.Level {
	levelStr := env.GetString("LOG_LEVEL", "info")
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("unknown log level, defaulting to info", "level", levelStr)

		return slog.LevelInfo
	}
}

// SetupLogger installs the default text logger at the level from LOG_LEVEL.
func SetupLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: GetLogLevelFromEnv(),
	}))

	slog.SetDefault(logger)
}
