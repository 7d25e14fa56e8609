// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

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

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/isambard-sc/brics-auth-service/internal/config"
	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring/prometheus"
	"github.com/isambard-sc/brics-auth-service/internal/session"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
	"github.com/isambard-sc/brics-auth-service/pkg/authentication"
	"github.com/isambard-sc/brics-auth-service/pkg/authorization"
	"github.com/isambard-sc/brics-auth-service/pkg/oidc"
	"github.com/isambard-sc/brics-auth-service/pkg/spawner"
	"github.com/isambard-sc/brics-auth-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}
	if err := specs.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("brics-auth-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     specs.RedisAddr,
		Password: specs.RedisPassword,
		DB:       specs.RedisDB,
	})
	defer redisClient.Close()
	sessions := session.NewStore(redisClient, specs.SessionTTL, tracer, monitor, logger)

	httpClient := oidc.NewHTTPClient()
	discovery := oidc.NewDiscoveryClient(httpClient, tracer, monitor, logger)
	keys := oidc.NewKeyResolver(httpClient, tracer, monitor, logger)

	authService := authentication.NewService(
		authentication.NewConfig(specs.OidcServer, specs.JwtAudience, specs.JwtLeeway),
		discovery,
		keys,
		authentication.NewJWTVerifier(tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)
	authzService := authorization.NewService(specs.Platform, tracer, monitor, logger)

	// TODO: replace with a slurmrestd-backed scheduler once the REST
	// endpoint is exposed on the platforms.
	scheduler := spawner.NewNoopScheduler(logger)

	router := web.NewRouter(
		authService,
		authzService,
		sessions,
		scheduler,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
