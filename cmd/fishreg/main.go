package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"fishreg/internal/api"
	"fishreg/internal/pkg/constants"
	"fishreg/internal/pkg/logger"
	"fishreg/internal/pkg/store"
	"fishreg/internal/pkg/store/xpgx"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zl)
	defer func() { _ = zl.Sync() }()

	initConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := connect(ctx, viper.GetString(constants.ViperPostgresDSN))
	if err != nil {
		logger.Fatal(ctx, "connect to postgres: ", err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, "init api service: ", err)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Infof(ctx, "shutdown signal received: %s", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := svc.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(ctx, "shutdown: %s", err.Error())
		}
	}()

	svc.Serve(viper.GetString(constants.ViperListenAddr))
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/fishreg")
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(context.Background(), "no config file, using env: %s", err.Error())
	}
}

// connect builds the pool and waits for the database to answer, retrying the
// ping so the service survives a database that is still starting up.
func connect(ctx context.Context, dsn string) (*xpgx.Pool, error) {
	pool, err := xpgx.NewPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 10),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
