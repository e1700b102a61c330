package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/urfave/cli/v2"

	_ "github.com/sbilibin2017/quizcraft/docs"
	"github.com/sbilibin2017/quizcraft/internal/config"
	"github.com/sbilibin2017/quizcraft/internal/handlers"
	"github.com/sbilibin2017/quizcraft/internal/jwt"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/middlewares"
	"github.com/sbilibin2017/quizcraft/internal/repositories"
	"github.com/sbilibin2017/quizcraft/internal/router"
	"github.com/sbilibin2017/quizcraft/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const shutdownTimeout = 10 * time.Second

// @title QuizCraft API
// @version 1.0.0
// @description Quiz management service: user accounts with token authentication and CRUD on quizzes made of questions.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                      "quizcraft",
		Usage:                     "QuizCraft REST API server",
		Version:                   buildVersion,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.env",
				Usage:   "path to the env configuration file",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   3000,
				Usage:   "HTTP port, overrides APP_PORT",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "log at debug level",
			},
			&cli.StringSliceFlag{
				Name:  "log-target",
				Usage: "extra log sink as name[:LEVEL], where name is stdout, stderr or a file path (repeatable)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := buildConfig(c)
			if err != nil {
				return err
			}
			printBuildInfo(c.App.Writer)
			return run(c.Context, cfg)
		},
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// buildConfig loads the env configuration and applies command line overrides.
func buildConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("port") {
		cfg.AppPort = strconv.Itoa(c.Int("port"))
	}
	if c.Bool("debug") {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	cfg.LogTargets = c.StringSlice("log-target")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It blocks until a shutdown signal arrives or the server fails.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogTargets...); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.Log
	defer log.Sync()
	log.Infow("Logger initialized", "level", cfg.LogLevel, "targets", cfg.LogTargets)

	log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.CreateSchema(ctx, db); err != nil {
		return err
	}

	var cache services.UserCache
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewUserCacheRepository(rdb, cfg.Redis.UserTTL)
		log.Infow("User cache enabled", "addr", cfg.Redis.Addr(), "ttl", cfg.Redis.UserTTL)
	}

	var kafkaWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.AuditTopic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Audit publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.AuditTopic)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHandler(cfg, db, cache, kafkaWriter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newHandler wires repositories, services and handlers into the router.
// cache and kafkaWriter may be nil.
func newHandler(cfg *config.Config, db *sqlx.DB, cache services.UserCache, kafkaWriter services.KafkaWriter) http.Handler {
	repoOpts := []repositories.Option{
		repositories.WithTxGetter(middlewares.GetTxFromContext),
		repositories.WithTimeout(cfg.Postgres.QueryTimeout),
	}

	userReadRepo := repositories.NewUserReadRepository(db, repoOpts...)
	userWriteRepo := repositories.NewUserWriteRepository(db, repoOpts...)
	quizReadRepo := repositories.NewQuizReadRepository(db, repoOpts...)
	quizWriteRepo := repositories.NewQuizWriteRepository(db, repoOpts...)
	questionReadRepo := repositories.NewQuestionReadRepository(db, repoOpts...)
	questionWriteRepo := repositories.NewQuestionWriteRepository(db, repoOpts...)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecret),
		jwt.WithExpiration(cfg.JWTExpiry),
	)

	auditService := services.NewAuditService(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, cache, tokens, auditService)
	quizService := services.NewQuizService(
		quizReadRepo, quizWriteRepo,
		questionReadRepo, questionWriteRepo,
		userReadRepo, auditService,
	)

	return router.New(router.Handlers{
		Register:    handlers.NewRegisterHandler(authService),
		Login:       handlers.NewLoginHandler(authService),
		ListQuizzes: handlers.NewListQuizzesHandler(quizService),
		GetQuiz:     handlers.NewGetQuizHandler(quizService),
		CreateQuiz:  handlers.NewCreateQuizHandler(quizService),
		UpdateQuiz:  handlers.NewUpdateQuizHandler(quizService),
		DeleteQuiz:  handlers.NewDeleteQuizHandler(quizService),
	}, router.Options{
		Auth:      middlewares.AuthMiddleware(tokens, authService),
		Tx:        middlewares.TxMiddleware(db),
		StaticDir: cfg.StaticDir,
		Log:       logger.Log,
	})
}
