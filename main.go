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

	"gestorzap/config"
	dbpkg "gestorzap/db"
	"gestorzap/logging"
	"gestorzap/router"
	"gestorzap/workers"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs; it is filled in PersistentPreRunE.
type app struct {
	configPath string
	conf       config.Configuration
	log        *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "gestorzap",
		Short:        "Painel de números WhatsApp (API + ferramentas de aquecimento)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.conf = conf

			log, err := logging.New(conf)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "arquivo de configuração (.json, .yaml)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Cria/atualiza as tabelas e sai",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.connect(false)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}
			a.log.Info("migrations applied")
			return nil
		},
	})
	root.AddCommand(newImportCmd(a))

	return root
}

func (a *app) connect(migrate bool) (*gorm.DB, error) {
	conf := a.conf
	conf.AutoMigrate = conf.AutoMigrate || migrate
	return dbpkg.Connect(conf, a.log)
}

func (a *app) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := a.connect(false)
	if err != nil {
		return err
	}
	defer db.Close()

	if !a.conf.LogDev {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	router.Initialize(r, a.conf, db, a.log)

	janitorDone := workers.StartTokenJanitor(ctx, db, a.log,
		time.Duration(a.conf.Janitor.IntervalMinutes)*time.Minute)

	srv := &http.Server{
		Addr:              ":" + a.conf.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("port", a.conf.ApiPort))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		stop()
		<-janitorDone
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	<-janitorDone
	return err
}
