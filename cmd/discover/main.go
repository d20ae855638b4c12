// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/jellyfin-discover/internal/app"
	"github.com/MKhiriev/jellyfin-discover/internal/config"
	"github.com/MKhiriev/jellyfin-discover/internal/handler"
	"github.com/MKhiriev/jellyfin-discover/internal/logger"
	"github.com/MKhiriev/jellyfin-discover/internal/server"
	"github.com/MKhiriev/jellyfin-discover/internal/service"
	"github.com/MKhiriev/jellyfin-discover/models"
)

const role = "jellyfin-discover"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	opts, err := config.GetOptions(os.Args[1:])
	if err != nil {
		log := logger.NewLogger(role, zerolog.InfoLevel)
		log.Error().Err(err).Msg("error getting options")
		os.Exit(app.ExitCode(err))
	}

	log := logger.NewSystemLogger(role, opts.Level(), buildInfo.BuildVersion())
	log.Info().Str("version", buildInfo.BuildVersion()).Msg("starting Jellyfin discovery utility")

	// the loop only returns on a fatal error
	err = run(context.Background(), opts, log)
	log.Error().Err(err).Msg("fatal error, exiting")
	os.Exit(app.ExitCode(err))
}

// run executes the startup pipeline (config, bind, preconstruct) and then
// the discovery loop.
func run(ctx context.Context, opts *config.Options, log *logger.Logger) error {
	cfg, err := config.Load(opts.ConfigPath, log)
	if err != nil {
		return err
	}
	log.Debug().Any("config", cfg).Msg("received config")

	conn, err := server.Listen(cfg.Port)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Debug().Uint16("port", cfg.Port).Msgf("created socket and bound to 0.0.0.0:%d", cfg.Port)

	payloads, err := service.PreconstructResponses(cfg.Servers)
	if err != nil {
		return err
	}
	log.Debug().Int("servers", len(payloads)).Msg("pre-generated responses")

	return server.NewUDPServer(conn, handler.NewDiscovery(payloads), log).Serve(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
