package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/db"
	"github.com/safespace-vault/safespace/internal/db/postgres"
	"github.com/safespace-vault/safespace/internal/db/sqlite"
	"github.com/safespace-vault/safespace/internal/gatekeeper"
	"github.com/safespace-vault/safespace/internal/handlers"
	"github.com/safespace-vault/safespace/internal/loginlimit"
	"github.com/safespace-vault/safespace/internal/notify"
	"github.com/safespace-vault/safespace/internal/render"
	"github.com/safespace-vault/safespace/internal/storage/minio"
	"github.com/safespace-vault/safespace/internal/trueip"
	"github.com/safespace-vault/safespace/internal/vault"
)

const (
	defaultPort         = 9000
	defaultWriteTimeout = 5 * time.Minute
	readTimeout         = 15 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// OpenDatabase connects to the store selected by db.kind, sqlite when unset
func OpenDatabase(ctx context.Context) (db.DB, error) {
	config.Lock.RLock()
	kind := viper.GetString(config.KeyDBKind)
	config.Lock.RUnlock()

	switch kind {
	case config.DBKindPostgres:
		pg, err := postgres.NewFromConfig(ctx)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case "", config.DBKindSQLite:
		s, err := sqlite.NewFromConfig()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("server: OpenDatabase: unknown database kind %q", kind)
	}
}

// newHTTPServer bounds every request body read by readTimeout. Uploads extend their own deadline up to
// writeTimeout.
func newHTTPServer(addr string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		WriteTimeout:      writeTimeout,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		IdleTimeout:       60 * time.Second,
		Handler:           handler,
	}
}

func RunServer() {
	render.Init()

	err := config.Init()
	var fileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &fileNotFoundError) {
		log.Warn().Msg("no config file found; using environment only")
	}

	config.Lock.RLock()
	configErrors := config.ValidateConfig()
	config.Lock.RUnlock()
	if configErrors != nil {
		log.Error().Msg("invalid configuration")
		config.RunErrorServer(configErrors)
		os.Exit(1)
	}

	trueip.Initialize()

	ctx := context.Background()

	database, err := OpenDatabase(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize database")
	}

	blobs, err := minio.NewFromConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize blob storage")
	}

	gk := gatekeeper.NewFromConfig(database, notify.NewFromConfig())

	config.Lock.RLock()
	port := viper.GetInt(config.KeyServerPort)
	writeTimeout := viper.GetDuration(config.KeyWriteTimeout)
	maxUpload := viper.GetInt64(config.KeyMaxUploadBytes)
	tlsEnabled := viper.GetBool(config.KeyTLSEnabled)
	certFile := viper.GetString(config.KeyTLSCertFile)
	keyFile := viper.GetString(config.KeyTLSKeyFile)
	config.Lock.RUnlock()

	if port == 0 {
		log.Warn().Int("port", defaultPort).Msg("no port specified, using default")
		port = defaultPort
	}
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	e := handlers.Env{
		Database:       database,
		Gatekeeper:     gk,
		Vault:          vault.NewFromConfig(database, blobs),
		LoginLimiter:   loginlimit.NewInMemoryLimiter(),
		MaxUploadBytes: maxUpload,
		UploadTimeout:  writeTimeout,
	}
	log.Info().Msg("services initialized")

	listenEnableDebugLogging()

	srv := newHTTPServer(fmt.Sprintf("0.0.0.0:%d", port), e.BuildRouter(), writeTimeout)

	go func() {
		if tlsEnabled {
			log.Info().Int("port", port).Str("key_file", keyFile).Str("cert_file", certFile).Msg("starting with tls enabled")
			if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Panic().Err(err).Msg("error starting server")
			}
		} else {
			log.Info().Int("port", port).Msg("starting plain HTTP server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Panic().Err(err).Msg("error starting server")
			}
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Warn().Msg("interrupt received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("error shutting down server")
	}

	// pending alerts and hash migrations still need the database
	done := make(chan struct{})
	go func() {
		gk.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warn().Msg("gave up waiting for background work")
	}

	log.Info().Msg("closing database")
	if err := database.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing database")
	}

	log.Info().Msg("shutdown complete")

	os.Exit(0)
}
