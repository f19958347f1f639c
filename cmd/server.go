package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stekfinance/internal/config"
	"stekfinance/internal/core"
	"stekfinance/internal/db"
	"stekfinance/internal/ethereum"
	"stekfinance/internal/history"
	"stekfinance/internal/http/handler"
	"stekfinance/internal/http/handler/middleware"
	"stekfinance/internal/http/payload"
	"stekfinance/internal/http/server"
	"stekfinance/internal/indexer"
	"stekfinance/internal/repository"
	"stekfinance/internal/resolver"
	"stekfinance/internal/session"
	"stekfinance/internal/staking"
	"stekfinance/pkg/jwt"
	"stekfinance/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const indexerTimeout = 10 * time.Second

func Start() error {
	logger := log.NewZapLogger("stekfinance", zapcore.InfoLevel)

	cfg, err := config.NewApp(config.DefaultEnvFile, os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		fmt.Print(config.Usage())
		return nil
	}
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	if missing := cfg.Missing(); len(missing) > 0 {
		logger.Warnw("settings missing, dependent features are disabled", "missing", missing)
	}

	dbConn, err := db.Open(cfg.DBDriver, cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// chain access
	var ethClient ethereum.EthClient
	if cfg.NodeURL != "" {
		client, err := ethclient.Dial(cfg.NodeURL)
		if err != nil {
			logger.Errorw("ethereum node connection failed", "error", err)
			return err
		}
		defer client.Close()
		ethClient = client
	}
	ethService := ethereum.NewEthService(ethClient)

	var signer ethereum.Signer
	if cfg.SignerKey != "" {
		keySigner, err := ethereum.NewKeySigner(cfg.SignerKey)
		if err != nil {
			logger.Errorw("invalid signer key", "error", err)
			return err
		}
		signer = keySigner
		logger.Infow("wallet loaded", "address", keySigner.Address().Hex())
	}

	var contract *ethereum.StakingContract
	if cfg.ContractHex != "" {
		contract, err = ethereum.NewStakingContract(cfg.ContractHex)
		if err != nil {
			logger.Errorw("invalid staking contract", "error", err)
			return err
		}
	}

	// history pipeline
	explorer := indexer.NewClient(cfg.IndexerBaseURL, cfg.IndexerAPIKey, cfg.IndexerRateLimit, indexerTimeout)
	transfers := resolver.New(logger, explorer, repo, cfg.ResolverCacheSize)

	location, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		logger.Warnw("unknown display timezone, using UTC",
			"timezone", cfg.DisplayTimezone,
			"error", err)
		location = time.UTC
	}
	historyService := history.NewService(
		indexer.NewSource(logger, explorer),
		history.NewFormatter(logger, transfers, location))

	// session and staking
	sessions := session.New()
	orchestrator := staking.New(
		logger,
		ethService,
		sessions,
		sessions.Writer(),
		contract,
		cfg.ConfirmationTimeout)

	var stakingReader session.StakingReader
	if contract != nil {
		stakingReader = orchestrator
	}
	refresher := session.NewRefresher(logger, sessions, ethService, stakingReader, cfg.BalanceRefreshInterval)
	defer refresher.Stop()

	// login
	var verifier core.IdentityVerifier
	if cfg.AuthVerifierKey != "" {
		identityVerifier, err := jwt.NewIdentityVerifier([]byte(cfg.AuthVerifierKey), cfg.AuthClientID)
		if err != nil {
			logger.Errorw("invalid identity verifier key", "error", err)
			return err
		}
		verifier = identityVerifier
	}
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// stek
	stek := core.NewStek(
		logger,
		repo,
		jwtService,
		verifier,
		core.Wallet{
			Signer:    signer,
			Chain:     ethService,
			Sessions:  sessions,
			Refresher: refresher,
		},
		historyService,
		orchestrator)

	// handler
	stekHlr := handler.NewStekHandler(
		logger,
		payload.Decoder{},
		stek,
		cfg.FrontendURL)

	// middleware
	mux := http.NewServeMux()
	auth := middleware.NewAuthMiddleware(logger, stek)
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = corsOptions(cfg.CORSAllowedOrigins).Handler(hdlr)

	// register routes
	mux.HandleFunc(handler.SocialCallback, stekHlr.HandleSocialCallback)
	mux.HandleFunc(handler.RefreshTokens, stekHlr.HandleRefresh)
	mux.Handle(handler.Logout, auth.Require(http.HandlerFunc(stekHlr.HandleLogout)))
	mux.Handle(handler.GetSession, auth.Require(http.HandlerFunc(stekHlr.HandleSession)))
	mux.Handle(handler.GetHistory, auth.Require(http.HandlerFunc(stekHlr.HandleHistory)))
	mux.Handle(handler.GetStaking, auth.Require(http.HandlerFunc(stekHlr.HandleStakingInfo)))
	mux.Handle(handler.PostStake, auth.Require(http.HandlerFunc(stekHlr.HandleStake)))
	mux.Handle(handler.PostUnstake, auth.Require(http.HandlerFunc(stekHlr.HandleUnstake)))
	mux.Handle(handler.PostWithdraw, auth.Require(http.HandlerFunc(stekHlr.HandleWithdraw)))
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(logger, srv, sessions)
}

func corsOptions(origins []string) *cors.Cors {
	if len(origins) == 0 {
		return cors.AllowAll()
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer, sessions *session.Context) error {
	// expect a signal to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	errChan := server.Run()

	var err error
	select {
	case <-ctx.Done():
		logger.Infow("shutdown signal received")
	case err = <-errChan:
	}

	sessions.Close()

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
