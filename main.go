package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"golang.org/x/sync/errgroup"

	"github.com/ellavondegurechaff/levibot/levibot"
	"github.com/ellavondegurechaff/levibot/levibot/cardleveling"
	"github.com/ellavondegurechaff/levibot/levibot/commands"
	"github.com/ellavondegurechaff/levibot/levibot/commands/cards"
	"github.com/ellavondegurechaff/levibot/levibot/commands/prefix"
	"github.com/ellavondegurechaff/levibot/levibot/commands/system"
	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/economy/utils"
	"github.com/ellavondegurechaff/levibot/levibot/game"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/logger"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/metrics"
	"github.com/ellavondegurechaff/levibot/levibot/services"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := levibot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	setupLogger(cfg.Log)

	slog.Info("Starting LeviBot",
		slog.String("type", "sys"),
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStart := time.Now()
	setupCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	db, err := database.New(setupCtx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		cancel()
		slog.Error("Database connection failed",
			slog.String("type", "db"),
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStart)))
		os.Exit(-1)
	}
	defer db.Close()

	if err = db.InitializeSchema(setupCtx); err != nil {
		cancel()
		slog.Error("Failed to initialize database schema", slog.String("type", "db"), slog.Any("error", err))
		os.Exit(-1)
	}
	cancel()
	slog.Info("Database ready",
		slog.String("type", "db"),
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStart)))

	b := levibot.New(*cfg, version, commit)
	b.DB = db
	b.Metrics = metrics.New(cfg.Metrics.Namespace)
	handlers.SetMetrics(b.Metrics)

	bunDB := db.BunDB()
	users := repositories.NewUserRepository(bunDB)
	userCards := repositories.NewUserCardRepository(bunDB)
	cardRepo := repositories.NewCardRepository(bunDB)

	rng := game.NewTimeSeededRand()
	etm := utils.NewEconomicTransactionManager(bunDB)
	settler := services.NewSettler(etm)

	b.Catalog = services.NewCatalog(cardRepo, cfg.Game.CatalogCacheSize)
	b.Accounts = services.NewAccountService(users, userCards)
	b.Decks = services.NewDeckService(settler, userCards)
	economySvc := services.NewEconomyService(etm, b.Catalog, rng)

	var artwork services.ArtworkSource
	if cfg.Spaces.Bucket != "" {
		spaces, err := services.NewSpacesService(ctx, services.SpacesConfig{
			Key:      cfg.Spaces.Key,
			Secret:   cfg.Spaces.Secret,
			Region:   cfg.Spaces.Region,
			Bucket:   cfg.Spaces.Bucket,
			CardRoot: cfg.Spaces.CardRoot,
		})
		if err != nil {
			slog.Error("Failed to set up card artwork, continuing without it", slog.String("type", "sys"), slog.Any("error", err))
		} else {
			artwork = spaces
			b.Renderer = services.NewCardRenderer(artwork)
		}
	}

	battles := services.NewBattleService(
		repositories.NewBattleRepository(bunDB),
		userCards,
		users,
		battle.NewEngine(rng),
		cardleveling.NewService(cardleveling.NewDefaultConfig()),
		settler,
		cfg.Game.BattleWindow.Std(),
	)
	trades := services.NewTradeService(
		repositories.NewTradeRepository(bunDB),
		userCards,
		users,
		settler,
		cfg.Game.TradeWindow.Std(),
	)

	var store spawn.Store = repositories.NewSpawnRepository(bunDB)
	if cfg.Game.SpawnStore == config.SpawnStoreMemory {
		store = spawn.NewMemoryStore()
	}
	spawner := spawn.NewEngine(store, b.Catalog, economySvc, rng, spawn.Config{
		Chance:      cfg.Game.SpawnChance,
		Cooldown:    cfg.Game.SpawnCooldown.Std(),
		CatchWindow: cfg.Game.CatchWindow.Std(),
	})
	throttle := spawn.NewThrottle(cfg.Game.ForceSpawnLimit, cfg.Game.ForceSpawnPeriod.Std())
	throttle.StartCleanupRoutine(ctx)

	discordMessenger := messenger.NewDiscord()
	deps := prefix.Deps{
		Messenger: discordMessenger,
		Spawner:   spawner,
		Throttle:  throttle,
		Battles:   battles,
		Trades:    trades,
		Decks:     b.Decks,
		Economy:   economySvc,
		Accounts:  b.Accounts,
		Catalog:   b.Catalog,
		Artwork:   artwork,
		Metrics:   b.Metrics,
		Rand:      rng,
		Prefix:    cfg.Bot.Prefix,
		Version:   version,
	}
	if b.Renderer != nil {
		deps.Renderer = b.Renderer
	}
	if cfg.Bot.OwnerID != 0 {
		deps.OwnerID = cfg.Bot.OwnerID.String()
	}
	router := prefix.New(deps)
	discordMessenger.OnIncomingMessage(router.Handle)

	h := handler.New()
	h.Command("/cards", handlers.WrapWithLogging("cards", cards.CardsHandler(b)))
	h.Command("/deck", handlers.WrapWithLogging("deck", cards.DeckHandler(b)))
	h.Command("/version", handlers.WrapWithLogging("version", system.VersionHandler(b)))

	if err = b.SetupBot(h, discordMessenger, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot", slog.String("type", "sys"), slog.Any("error", err))
		os.Exit(-1)
	}
	discordMessenger.SetClient(b.Client)

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		b.Client.Close(closeCtx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands", slog.String("type", "sys"), slog.Any("error", err))
		}
	}

	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway", slog.String("type", "sys"), slog.Any("error", err))
		os.Exit(-1)
	}

	g, gctx := errgroup.WithContext(ctx)

	spawner.StartSweeper(gctx, cfg.Game.SpawnSweep.Std(), func(expired []spawn.Spawned) {
		router.AnnounceExpiredSpawns(gctx, expired)
	})
	g.Go(func() error {
		sweepEvery(gctx, "battle", cfg.Game.NegotiationSweep.Std(), func(ctx context.Context) error {
			expired, err := battles.Sweep(ctx)
			if err == nil && len(expired) > 0 {
				router.AnnounceExpiredBattles(ctx, expired)
			}
			return err
		})
		return nil
	})
	g.Go(func() error {
		sweepEvery(gctx, "trade", cfg.Game.NegotiationSweep.Std(), func(ctx context.Context) error {
			expired, err := trades.Sweep(ctx)
			if err == nil && len(expired) > 0 {
				router.AnnounceExpiredTrades(ctx, expired)
			}
			return err
		})
		return nil
	})
	if cfg.Metrics.Listen != "" {
		g.Go(func() error {
			return b.Metrics.Serve(gctx, cfg.Metrics.Listen)
		})
	}

	slog.Info("LeviBot is running. Press CTRL-C to exit.", slog.String("type", "sys"))
	if err = g.Wait(); err != nil {
		slog.Error("Background task failed", slog.String("type", "sys"), slog.Any("error", err))
	}
	slog.Info("Shutting down", slog.String("type", "sys"))
}

func setupLogger(cfg levibot.LogConfig) {
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}
	var h slog.Handler
	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	case "text":
		h = slog.NewTextHandler(os.Stdout, opts)
	default:
		h = logger.NewHandler(os.Stdout, cfg.Level)
	}
	slog.SetDefault(slog.New(h))
}

// sweepEvery calls sweep on every tick until ctx is done. Failures are
// logged and retried on the next tick.
func sweepEvery(ctx context.Context, name string, interval time.Duration, sweep func(context.Context) error) {
	if interval <= 0 {
		interval = config.NegotiationSweep
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sweep(ctx); err != nil {
				slog.Error("Sweep failed",
					slog.String("type", "game"),
					slog.String("sweep", name),
					slog.Any("error", err))
			}
		}
	}
}
