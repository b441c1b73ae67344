package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/imtihan/internal/cli"
	"github.com/aliskhannn/imtihan/internal/config"
	"github.com/aliskhannn/imtihan/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/imtihan/internal/infra/postgres/repository"
	"github.com/aliskhannn/imtihan/internal/logger"
	"github.com/aliskhannn/imtihan/internal/repository"
	"github.com/aliskhannn/imtihan/internal/service"
	"github.com/aliskhannn/imtihan/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return cli.ExitError
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return cli.ExitError
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the question bank and session storage.
	bank, err := repository.NewQuestionRepository(cfg.QuestionsPath, log)
	if err != nil {
		log.Error("failed to load question bank", zap.String("path", cfg.QuestionsPath), zap.Error(err))
		fmt.Fprintf(os.Stderr, "load question bank: %v\n", err)
		return cli.ExitError
	}

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open session store", zap.String("backend", cfg.Session.Backend), zap.Error(err))
		fmt.Fprintf(os.Stderr, "open session store: %v\n", err)
		return cli.ExitError
	}
	defer closeStore()

	keeper := storage.NewKeeper(store, cfg.Session.TTL, log)
	quizService := service.NewQuizService(bank, keeper, cfg.Chunks, service.WithLogger(log))

	deps := cli.Deps{
		Service: quizService,
		Bank:    bank,
		Log:     log,
		NoColor: os.Getenv("NO_COLOR") != "",
	}
	return cli.Run(ctx, deps, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// openStore returns the configured session store and a function releasing it.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.Store, func(), error) {
	switch cfg.Session.Backend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), func() {}, nil

	case config.BackendSQLite:
		s, err := storage.NewSQLiteStore(ctx, cfg.Session.SQLitePath, cfg.Session.Key)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.BackendPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.Connect(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}

		repo := pgrepo.NewSessionRepository(pool, postgres.NewTransactor(pool), cfg.Session.Key)
		return repo, pool.Close, nil

	default:
		s, err := storage.NewFileStore(cfg.Session.Dir, cfg.Session.Key)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("session file", zap.String("path", s.Path()))
		return s, func() {}, nil
	}
}
