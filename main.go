package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Maheesh07/Bech-De/cliparse"
	"github.com/Maheesh07/Bech-De/db"
	"github.com/Maheesh07/Bech-De/middleware"
	"github.com/Maheesh07/Bech-De/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured database engine
	dsn := cfg.DatabaseURL
	if cfg.DatabaseType == db.TypeSQLite {
		dsn = cfg.SQLitePath
	}
	store, err := db.Open(cfg.DatabaseType, dsn)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Create schema (tables)
	if err := db.CreateSchema(store); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	// Load codes from the CSV, only while the codes table is empty
	loaded, err := db.BootstrapCodes(store, cfg.CodesCSV)
	if err != nil {
		slog.Error("code bootstrap failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "engine", cfg.DatabaseType, "codes_loaded", loaded)

	// Create router
	mux := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
