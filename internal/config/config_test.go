package config_test

import (
	"os"
	"path/filepath"
	"time"

	"stekfinance/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func setenv(key, value string) {
	prev, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, prev)
			return
		}
		os.Unsetenv(key)
	})
}

var _ = Describe("Parse", func() {
	var (
		args []string
		app  config.App
		err  error
	)

	BeforeEach(func() {
		args = nil
	})

	JustBeforeEach(func() {
		app, err = config.Parse(args)
	})

	When("nothing is set", func() {
		It("applies the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.IndexerBaseURL).To(Equal("https://api-sepolia.etherscan.io/api"))
			Expect(app.IndexerRateLimit).To(Equal(5))
			Expect(app.DBDriver).To(Equal("sqlite"))
			Expect(app.DisplayTimezone).To(Equal("Asia/Seoul"))
			Expect(app.BalanceRefreshInterval).To(Equal(10 * time.Second))
			Expect(app.ConfirmationTimeout).To(BeZero())
			Expect(app.ResolverCacheSize).To(BeZero())
		})

		It("reports the feature settings as missing", func() {
			Expect(app.Missing()).To(ConsistOf(
				"ETH_NODE_URL",
				"SIGNER_PRIVATE_KEY",
				"STAKING_CONTRACT_ADDRESS",
				"INDEXER_API_KEY",
				"AUTH_CLIENT_ID",
				"AUTH_VERIFIER_PUBLIC_KEY",
				"JWT_SECRET",
				"FRONTEND_URL",
			))
		})
	})

	When("the environment sets values", func() {
		BeforeEach(func() {
			setenv("API_PORT", "9090")
			setenv("CONFIRMATION_TIMEOUT", "3m")
			setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://stek.finance")
			setenv("DB_DRIVER", "postgres")
		})

		It("reads them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9090"))
			Expect(app.ConfirmationTimeout).To(Equal(3 * time.Minute))
			Expect(app.CORSAllowedOrigins).To(Equal([]string{"http://localhost:3000", "https://stek.finance"}))
			Expect(app.Missing()).To(ContainElement("DB_CONNECTION_URL"))
		})
	})

	When("a flag is passed", func() {
		BeforeEach(func() {
			args = []string{"--port", "7000"}
		})

		It("takes it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("7000"))
		})
	})

	When("a duration is malformed", func() {
		BeforeEach(func() {
			setenv("BALANCE_REFRESH_INTERVAL", "often")
		})

		It("fails", func() {
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})
	})

	When("the driver is unknown", func() {
		BeforeEach(func() {
			setenv("DB_DRIVER", "mysql")
		})

		It("fails", func() {
			Expect(err).To(MatchError(config.ErrInvalidConfig))
			Expect(err.Error()).To(ContainSubstring("mysql"))
		})
	})

	When("help is requested", func() {
		BeforeEach(func() {
			args = []string{"--help"}
		})

		It("reports help rather than a bad configuration", func() {
			Expect(err).To(MatchError(config.ErrHelp))
			Expect(err).NotTo(MatchError(config.ErrInvalidConfig))
		})
	})

	When("the short help flag is passed", func() {
		BeforeEach(func() {
			args = []string{"-h"}
		})

		It("reports help", func() {
			Expect(err).To(MatchError(config.ErrHelp))
		})
	})
})

var _ = Describe("Usage", func() {
	It("lists the flags", func() {
		usage := config.Usage()
		Expect(usage).To(ContainSubstring("--eth-node-url"))
		Expect(usage).To(ContainSubstring("--balance-refresh-interval"))
	})
})

var _ = Describe("NewApp", func() {
	It("loads the env file", func() {
		dir := GinkgoT().TempDir()
		envFile := filepath.Join(dir, ".env")
		Expect(os.WriteFile(envFile, []byte("INDEXER_API_KEY=key-1\n"), 0o600)).To(Succeed())
		DeferCleanup(os.Unsetenv, "INDEXER_API_KEY")

		app, err := config.NewApp(envFile, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(app.IndexerAPIKey).To(Equal("key-1"))
	})

	It("ignores a missing env file", func() {
		_, err := config.NewApp(filepath.Join(GinkgoT().TempDir(), "absent.env"), nil)
		Expect(err).NotTo(HaveOccurred())
	})
})
