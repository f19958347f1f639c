package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig error = errors.New("invalid configuration")

// ErrHelp is returned by Parse when -h or --help was passed.
var ErrHelp error = errors.New("help requested")

const DefaultEnvFile = ".env"

type App struct {
	Port string `long:"port" env:"API_PORT" default:"8080" description:"http listen port"`

	NodeURL     string `long:"eth-node-url" env:"ETH_NODE_URL" description:"ethereum json-rpc endpoint"`
	SignerKey   string `long:"signer-private-key" env:"SIGNER_PRIVATE_KEY" description:"hex private key of the wallet"`
	ContractHex string `long:"staking-contract" env:"STAKING_CONTRACT_ADDRESS" description:"staking contract address"`

	IndexerBaseURL    string `long:"indexer-base-url" env:"INDEXER_BASE_URL" default:"https://api-sepolia.etherscan.io/api" description:"transaction indexer api"`
	IndexerAPIKey     string `long:"indexer-api-key" env:"INDEXER_API_KEY" description:"transaction indexer api key"`
	IndexerRateLimit  int    `long:"indexer-rate-limit" env:"INDEXER_RATE_LIMIT" default:"5" description:"indexer requests per second"`
	ResolverCacheSize int    `long:"resolver-cache-size" env:"RESOLVER_CACHE_SIZE" default:"0" description:"max cached internal transfers, 0 is unbounded"`
	DisplayTimezone   string `long:"display-timezone" env:"DISPLAY_TIMEZONE" default:"Asia/Seoul" description:"timezone of formatted timestamps"`

	AuthClientID       string   `long:"auth-client-id" env:"AUTH_CLIENT_ID" description:"expected audience of social id tokens"`
	AuthVerifierKey    string   `long:"auth-verifier-public-key" env:"AUTH_VERIFIER_PUBLIC_KEY" description:"PEM public key verifying social id tokens"`
	JWTSecret          string   `long:"jwt-secret" env:"JWT_SECRET" description:"secret signing access and refresh tokens"`
	FrontendURL        string   `long:"frontend-url" env:"FRONTEND_URL" description:"frontend base url for login redirects"`
	CORSAllowedOrigins []string `long:"cors-allowed-origin" env:"CORS_ALLOWED_ORIGINS" env-delim:"," description:"allowed CORS origins"`

	DBDriver        string `long:"db-driver" env:"DB_DRIVER" default:"sqlite" description:"postgres or sqlite"`
	DBConnectionURL string `long:"db-connection-url" env:"DB_CONNECTION_URL" description:"database dsn"`

	BalanceRefreshInterval time.Duration `long:"balance-refresh-interval" env:"BALANCE_REFRESH_INTERVAL" default:"10s" description:"session balance polling interval"`
	ConfirmationTimeout    time.Duration `long:"confirmation-timeout" env:"CONFIRMATION_TIMEOUT" default:"0s" description:"max wait for a receipt, 0 waits forever"`
}

// NewApp loads envFile when it exists and parses args and the environment
// into an App.
func NewApp(envFile string, args []string) (App, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	return Parse(args)
}

// Parse reads args and the environment. Only malformed values fail.
func Parse(args []string) (App, error) {
	var app App

	if _, err := newParser(&app).ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return App{}, ErrHelp
		}
		return App{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch app.DBDriver {
	case "postgres", "sqlite":
	default:
		return App{}, fmt.Errorf("%w: unknown DB_DRIVER %q", ErrInvalidConfig, app.DBDriver)
	}
	if app.IndexerRateLimit < 0 || app.ResolverCacheSize < 0 {
		return App{}, fmt.Errorf("%w: negative limit", ErrInvalidConfig)
	}
	if app.BalanceRefreshInterval <= 0 {
		return App{}, fmt.Errorf("%w: refresh interval must be positive", ErrInvalidConfig)
	}

	return app, nil
}

// Usage renders the command line help.
func Usage() string {
	var (
		app App
		buf strings.Builder
	)
	newParser(&app).WriteHelp(&buf)
	return buf.String()
}

func newParser(app *App) *flags.Parser {
	return flags.NewParser(app, flags.HelpFlag|flags.PassDoubleDash|flags.IgnoreUnknown)
}

// Missing lists the unset settings whose feature will run its failure path.
func (a App) Missing() []string {
	var missing []string
	check := func(value, key string) {
		if value == "" {
			missing = append(missing, key)
		}
	}

	check(a.NodeURL, "ETH_NODE_URL")
	check(a.SignerKey, "SIGNER_PRIVATE_KEY")
	check(a.ContractHex, "STAKING_CONTRACT_ADDRESS")
	check(a.IndexerAPIKey, "INDEXER_API_KEY")
	check(a.AuthClientID, "AUTH_CLIENT_ID")
	check(a.AuthVerifierKey, "AUTH_VERIFIER_PUBLIC_KEY")
	check(a.JWTSecret, "JWT_SECRET")
	check(a.FrontendURL, "FRONTEND_URL")
	if a.DBDriver == "postgres" {
		check(a.DBConnectionURL, "DB_CONNECTION_URL")
	}

	return missing
}
