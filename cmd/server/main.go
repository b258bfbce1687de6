package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "eonpeers/internal/adapters/http"
	"eonpeers/internal/adapters/memory"
	"eonpeers/internal/adapters/peer"
	pg "eonpeers/internal/adapters/postgres"
	"eonpeers/internal/attest"
	"eonpeers/internal/config"
	"eonpeers/internal/logging"
	"eonpeers/internal/ports"
	"eonpeers/internal/services/companies"
	"eonpeers/internal/services/gossip"
	"eonpeers/internal/services/ledger"
	"eonpeers/internal/services/locations"
	"eonpeers/internal/services/validations"
	"eonpeers/internal/workers/gossiprunner"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "eonpeers",
	Short:        "Shipment provenance node",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and gossip workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		log := logging.New(cfg.LogLevel, cfg.LogFormat)
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.Store != config.StorePostgres {
			return fmt.Errorf("migrate needs the postgres store, got %q", cfg.Store)
		}
		db, err := pg.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}
		v, err := db.MigrationVersion(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("schema at version %d\n", v)
		return nil
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen [path]",
	Short: "Write a fresh signing seed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Defaults().KeyFile
		if len(args) == 1 {
			path = args[0]
		}
		seed, err := attest.GenerateSeed()
		if err != nil {
			return err
		}
		if err := attest.WriteKeyFile(path, seed); err != nil {
			return err
		}
		fmt.Printf("key written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (defaults to CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd, migrateCmd, keygenCmd)
}

type stores struct {
	repo  ports.Repository
	jobs  ports.JobRepository
	close func()
}

func openStores(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (stores, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using the in-memory store, state is lost on exit")
		jobs := memory.NewJobQueue()
		jobs.Lease = cfg.Gossip.JobLease
		return stores{repo: memory.New(), jobs: jobs, close: func() {}}, nil
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return stores{}, err
	}
	db.JobLease = cfg.Gossip.JobLease
	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return stores{}, err
		}
	}
	return stores{repo: db, jobs: db, close: db.Close}, nil
}

func serve(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	signer, err := attest.LoadSigner(cfg.KeyScheme, cfg.KeyFile)
	if err != nil {
		return err
	}
	attestor := attest.NewAttestor(signer)

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	comps := companies.New(st.repo, st.repo, st.jobs, attestor, log)
	owner, err := comps.EnsureOwner(ctx, companies.Owner{
		Name:      cfg.Owner.Name,
		VATNumber: cfg.Owner.VATNumber,
		BaseURL:   cfg.Owner.BaseURL,
	})
	if err != nil {
		return err
	}
	l := ledger.New(st.repo, attestor, log)
	locs := locations.New(st.repo, attestor, log)

	delivery := &gossiprunner.Delivery{
		Peer:       peer.New(cfg.Gossip.PeerTimeout, cfg.Gossip.RatePerSecond),
		Companies:  comps,
		MaxRetries: cfg.Gossip.MaxRetries,
		Base:       cfg.Gossip.RetryBase,
		Log:        log,
	}
	api := httpadapter.New(httpadapter.Services{
		Companies:   comps,
		Locations:   locs,
		Ledger:      l,
		Validations: validations.New(st.repo, locs, st.jobs, attestor, log),
		Gossip:      gossip.New(st.repo, l, st.jobs, log),
	}, st.jobs, delivery, cfg.AdminToken, log)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := httpadapter.Listen(cfg.ListenAddr, cfg.MaxConnections)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":            cfg.ListenAddr,
			"owner":           owner.VATNumber,
			"public_key":      owner.PublicKey,
			"scheme":          signer.Scheme(),
			"max_connections": cfg.MaxConnections,
		}).Info("listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	if cfg.Gossip.Workers > 0 {
		g.Go(func() error {
			gossiprunner.Run(ctx, st.jobs, delivery, cfg.Gossip.Workers, cfg.Gossip.PollInterval, log)
			return nil
		})
		log.WithField("workers", cfg.Gossip.Workers).Info("gossip workers started")
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
