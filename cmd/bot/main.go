package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/colour"
	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/logger"
	"github.com/KirkDiggler/noobcogs/internal/common/uuid"
	"github.com/KirkDiggler/noobcogs/internal/config"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/handlers/discord"
	"github.com/KirkDiggler/noobcogs/internal/repositories/bank"
	"github.com/KirkDiggler/noobcogs/internal/repositories/devlog"
	"github.com/KirkDiggler/noobcogs/internal/repositories/leaderboard"
	"github.com/KirkDiggler/noobcogs/internal/repositories/session"
	"github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	timerRepo "github.com/KirkDiggler/noobcogs/internal/repositories/timer"
	"github.com/KirkDiggler/noobcogs/internal/services/afk"
	"github.com/KirkDiggler/noobcogs/internal/services/autoreaction"
	"github.com/KirkDiggler/noobcogs/internal/services/cookieclicker"
	"github.com/KirkDiggler/noobcogs/internal/services/customerror"
	"github.com/KirkDiggler/noobcogs/internal/services/devlogs"
	"github.com/KirkDiggler/noobcogs/internal/services/donation"
	"github.com/KirkDiggler/noobcogs/internal/services/pressf"
	"github.com/KirkDiggler/noobcogs/internal/services/rolecolour"
	"github.com/KirkDiggler/noobcogs/internal/services/timer"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr, err := logger.New(&logger.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()
	logger.RouteDiscordgo(logr)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logr.Fatal("failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	settingsRepo, err := settings.NewRedis(&settings.Config{RedisClient: redisClient})
	if err != nil {
		logr.Fatal("failed to create settings repository", zap.Error(err))
	}

	timers, err := timerRepo.NewRedis(&timerRepo.Config{RedisClient: redisClient})
	if err != nil {
		logr.Fatal("failed to create timer repository", zap.Error(err))
	}

	leaderboardRepo, err := leaderboard.NewRedis(&leaderboard.Config{RedisClient: redisClient})
	if err != nil {
		logr.Fatal("failed to create leaderboard repository", zap.Error(err))
	}

	bankRepo, err := bank.NewRedis(&bank.Config{RedisClient: redisClient})
	if err != nil {
		logr.Fatal("failed to create bank repository", zap.Error(err))
	}

	sessionRepo, err := session.NewRedis(&session.Config{RedisClient: redisClient})
	if err != nil {
		logr.Fatal("failed to create session repository", zap.Error(err))
	}

	devLogRepo, err := devlog.NewSQLite(&devlog.Config{Path: cfg.DevLogsDBPath})
	if err != nil {
		logr.Fatal("failed to open devlogs archive", zap.String("path", cfg.DevLogsDBPath), zap.Error(err))
	}
	defer devLogRepo.Close()

	// The session is shared by the gateway and the bot
	discordSession, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		logr.Fatal("failed to create Discord session", zap.Error(err))
	}

	gw, err := gateway.NewDiscord(&gateway.Config{Session: discordSession, Logger: logr})
	if err != nil {
		logr.Fatal("failed to create gateway", zap.Error(err))
	}

	clk := &clock.DefaultClock{}
	ids := uuid.New()

	// Initialize services
	customErrorSvc, err := customerror.New(&customerror.Config{
		SettingsRepo: settingsRepo,
		Clock:        clk,
		Logger:       logr.Named("customerror"),
	})
	if err != nil {
		logr.Fatal("failed to create custom error service", zap.Error(err))
	}

	devLogsSvc, err := devlogs.New(&devlogs.Config{
		SettingsRepo: settingsRepo,
		DevLogRepo:   devLogRepo,
		Gateway:      gw,
		SystemInfo:   &devlogs.HostInfo{},
		Clock:        clk,
		Logger:       logr.Named("devlogs"),
		OwnerIDs:     cfg.OwnerIDs,
	})
	if err != nil {
		logr.Fatal("failed to create devlogs service", zap.Error(err))
	}

	timerSvc, err := timer.New(&timer.Config{
		TimerRepo:    timers,
		SettingsRepo: settingsRepo,
		Gateway:      gw,
		Clock:        clk,
		Logger:       logr.Named("timers"),
		PollInterval: cfg.TimerPollInterval,
	})
	if err != nil {
		logr.Fatal("failed to create timer service", zap.Error(err))
	}

	afkSvc, err := afk.New(&afk.Config{
		SettingsRepo: settingsRepo,
		Gateway:      gw,
		Clock:        clk,
		Logger:       logr.Named("afk"),
	})
	if err != nil {
		logr.Fatal("failed to create AFK service", zap.Error(err))
	}

	reactionSvc, err := autoreaction.New(&autoreaction.Config{
		SettingsRepo: settingsRepo,
		Gateway:      gw,
		Logger:       logr.Named("autoreaction"),
	})
	if err != nil {
		logr.Fatal("failed to create automatic reaction service", zap.Error(err))
	}

	cookieSvc, err := cookieclicker.New(&cookieclicker.Config{
		SettingsRepo:    settingsRepo,
		LeaderboardRepo: leaderboardRepo,
		SessionRepo:     sessionRepo,
		Gateway:         gw,
		Clock:           clk,
		UUID:            ids,
		Logger:          logr.Named("cookieclicker"),
	})
	if err != nil {
		logr.Fatal("failed to create cookie clicker service", zap.Error(err))
	}

	donationSvc, err := donation.New(&donation.Config{
		SettingsRepo:    settingsRepo,
		BankRepo:        bankRepo,
		LeaderboardRepo: leaderboardRepo,
		SessionRepo:     sessionRepo,
		Gateway:         gw,
		Clock:           clk,
		Logger:          logr.Named("donationlogger"),
	})
	if err != nil {
		logr.Fatal("failed to create donation logger service", zap.Error(err))
	}

	pressfSvc, err := pressf.New(&pressf.Config{
		SettingsRepo: settingsRepo,
		SessionRepo:  sessionRepo,
		Gateway:      gw,
		Clock:        clk,
		UUID:         ids,
		Logger:       logr.Named("pressf"),
	})
	if err != nil {
		logr.Fatal("failed to create press f service", zap.Error(err))
	}

	roleColourSvc, err := rolecolour.New(&rolecolour.Config{
		SettingsRepo: settingsRepo,
		Gateway:      gw,
		Picker:       colour.New(&colour.Config{}),
		Logger:       logr.Named("randomcolourrole"),
		Interval:     cfg.RoleColourInterval,
	})
	if err != nil {
		logr.Fatal("failed to create random colour role service", zap.Error(err))
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       discordSession,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		OwnerIDs:      cfg.OwnerIDs,
		Gateway:       gw,
		CustomError:   customErrorSvc,
		DevLogs:       devLogsSvc,
		UUID:          ids,
		Logger:        logr.Named("bot"),
		Modules: []discord.Module{
			discord.NewAFKCommand(afkSvc, gw, logr.Named("afk")),
			discord.NewAutoReactionCommand(reactionSvc, logr.Named("autoreaction")),
			discord.NewCookieClickerCommand(cookieSvc),
			discord.NewCustomErrorCommand(customErrorSvc),
			discord.NewDevLogsCommand(devLogsSvc),
			discord.NewDonationCommand(donationSvc),
			discord.NewPressFCommand(pressfSvc),
			discord.NewRoleColourCommand(roleColourSvc),
			discord.NewTimerCommand(timerSvc, logr.Named("timers")),
		},
	})
	if err != nil {
		logr.Fatal("failed to create Discord bot", zap.Error(err))
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Start the bot
	if err := bot.Start(runCtx); err != nil {
		logr.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	<-runCtx.Done()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logr.Error("error stopping bot", zap.Error(err))
	}

	logr.Info("bot has been shut down")
}
