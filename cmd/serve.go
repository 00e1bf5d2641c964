package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thanvi-nagalla/portfolio/internal/config"
	"github.com/thanvi-nagalla/portfolio/internal/web"
)

const shutdownTimeout = 5 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

// runServer serves until ctx is done, then shuts down gracefully. A listen
// failure is returned.
func runServer(ctx context.Context, cfg *config.Config) error {
	srv, err := web.New(cfg)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Serving %s's portfolio on %s (%d sections, %s of copy)",
			cfg.Profile.Name, cfg.Server.Addr, len(cfg.Sections.Names),
			humanize.Bytes(uint64(cfg.Profile.Size())))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", cfg.Server.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Println("Shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
