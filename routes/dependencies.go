package routes

import (
	"context"
	"time"

	"doener-shop/catalog"
	"doener-shop/config"
	"doener-shop/libs"
	"doener-shop/repositories"
	"doener-shop/services"
	"doener-shop/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const configuratorSessionTTL = 2 * time.Hour

// Dependencies holds everything the HTTP layer needs. Repositories backed by
// Postgres or Redis are swapped for in-process ones when those are absent.
type Dependencies struct {
	Logger   *logrus.Logger
	Location *time.Location
	Tokens   *utils.TokenIssuer
	Runner   *services.BackgroundRunner

	Menu         *services.MenuService
	Carts        *services.CartService
	Configurator *services.ConfiguratorService
	Orders       *services.OrderService
	History      *services.HistoryService
	AdminAuth    *services.AdminAuthService
	Zones        *services.ZoneTable
	Hours        *services.OpeningHours

	OriginURL string
}

// NewDependencies wires services from explicit stores. A nil pool or client
// selects the memory implementation.
func NewDependencies(cfg *config.Config, logger *logrus.Logger, db *pgxpool.Pool, rdb *redis.Client, notifiers ...services.OrderNotifier) *Dependencies {
	loc := cfg.Location()
	cat := catalog.Default()
	engine := services.NewConfigEngine(cat)

	var orders repositories.OrderRepository = repositories.NewMemoryOrderRepository()
	var adminAuth repositories.AdminAuthRepository = repositories.NewMemoryAdminAuthRepository()
	if db != nil {
		orders = repositories.NewOrderRepository(db)
		adminAuth = repositories.NewAdminAuthRepository(db)
	}

	carts := services.NewCartService(repositories.NewCartStore(rdb, cfg.CartTTL), cat, engine)
	sessions := repositories.NewSessionStore(rdb, configuratorSessionTTL)

	zones := services.DefaultZoneTable()
	hours := services.DefaultOpeningHours(loc)
	runner := services.NewBackgroundRunner(logger, 0)
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	return &Dependencies{
		Logger:       logger,
		Location:     loc,
		Tokens:       tokens,
		Runner:       runner,
		Menu:         services.NewMenuService(cat, engine),
		Carts:        carts,
		Configurator: services.NewConfiguratorService(sessions, cat, engine, carts),
		Orders:       services.NewOrderService(carts, zones, hours, orders, runner, cfg.WhatsAppNumber, notifiers...),
		History:      services.NewHistoryService(orders),
		AdminAuth:    services.NewAdminAuthService(adminAuth, cfg.AdminPasswordHash, tokens),
		Zones:        zones,
		Hours:        hours,
		OriginURL:    cfg.OriginURL,
	}
}

// Bootstrap connects to whatever backing services the configuration names
// and builds the dependency set. Connection failures are logged and the
// memory fallback is used instead.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *logrus.Logger) *Dependencies {
	var db *pgxpool.Pool
	if cfg.HasDatabase() {
		pool, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			logger.WithError(err).Warn("Database unavailable, orders are kept in memory")
		} else {
			db = pool
			logger.Info("Database connected")
		}
	}

	rdb, err := config.ConnectRedis(ctx, cfg)
	switch {
	case err != nil:
		logger.WithError(err).Warn("Redis unavailable, carts are kept in memory")
	case rdb != nil:
		logger.Info("Redis connected")
	}

	return NewDependencies(cfg, logger, db, rdb, Notifiers(cfg, logger)...)
}

// Notifiers returns the order channels that are configured. Missing
// configuration disables a channel without failing startup.
func Notifiers(cfg *config.Config, logger *logrus.Logger) []services.OrderNotifier {
	var out []services.OrderNotifier

	mail, err := libs.NewEmailService(libs.EmailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		To:       cfg.OrderEmailTo,
	})
	if err != nil {
		logger.WithError(err).Info("Order email disabled")
	} else {
		out = append(out, mail)
	}

	if cfg.TelegramToken != "" || cfg.TelegramChatID != 0 {
		bot, err := libs.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logger.WithError(err).Warn("Telegram notifications disabled")
		} else {
			out = append(out, bot)
		}
	}

	return out
}
