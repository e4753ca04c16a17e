package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	"github.com/yegors/airpairs/internal/api"
	"github.com/yegors/airpairs/internal/config"
	"github.com/yegors/airpairs/internal/dataset"
	"github.com/yegors/airpairs/internal/report"
	"github.com/yegors/airpairs/pkg/logger"
)

const usage = `usage: airpairs [-config file] <command> [args]

commands:
  report                     print pair statistics for the configured dataset
  import <airports> <flights> copy JSON files into the configured sqlite database
  serve                      serve the JSON API and the static page
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "airpairs: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("airpairs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "path to TOML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd := fs.Arg(0); cmd {
	case "report":
		ds, err := dataset.Load(ctx, cfg.Data, log)
		if err != nil {
			return err
		}
		return report.Render(stdout, ds)

	case "import":
		if fs.NArg() != 3 {
			fs.Usage()
			return errors.New("import needs an airports file and a flights file")
		}
		airports, raw, err := dataset.LoadJSONFiles(fs.Arg(1), fs.Arg(2))
		if err != nil {
			return err
		}
		return dataset.Import(ctx, cfg.Data.SQLitePath, airports, raw, log)

	case "serve":
		ds, err := dataset.Load(ctx, cfg.Data, log)
		if err != nil {
			return err
		}
		return serve(ctx, cfg.Server, ds, log)

	default:
		fs.Usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}
}

func serve(ctx context.Context, cfg config.ServerConfig, ds *dataset.Dataset, log *logger.Logger) error {
	log = log.Named("server")

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddr, err)
	}
	listener = netutil.LimitListener(listener, cfg.MaxConnections)

	server := newHTTPServer(cfg, api.NewRouter(ds, cfg, log).Routes())

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening",
			logger.String("addr", listener.Addr().String()),
			logger.Int("max_connections", cfg.MaxConnections))
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
