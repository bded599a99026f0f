package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nfmeta/runmeta/internal/config"
	"github.com/nfmeta/runmeta/internal/logging"
	"github.com/nfmeta/runmeta/internal/platform"
	"github.com/nfmeta/runmeta/internal/runner"
)

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, cwd, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if loaded, err := config.LoadEnv(cwd); err != nil {
		log.Warn("unable to load .env file", zap.Error(err))
	} else if loaded {
		log.Debug("loaded environment from .env")
	}

	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	client := platform.NewCLI(platform.Options{Binary: cfg.TwPath, Log: log})
	logClientVersion(cmd, client, log)

	r := runner.New(runner.Options{
		Client:         client,
		Log:            log,
		CleanupArchive: cfg.CleanupArchive,
	})
	return r.Run(cmd.Context(), req)
}

func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return config.Config{}, "", err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyFlags(&cfg, flags)

	return cfg, cwd, nil
}

// logClientVersion probes `tw --version` for debugging. Failures are
// expected when tw is absent; the dump call reports those properly.
func logClientVersion(cmd *cobra.Command, client *platform.CLI, log *zap.Logger) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	version, err := client.Version(cmd.Context())
	if err != nil {
		if platform.Missing(err) {
			log.Debug("tw executable not found for version probe")
			return
		}
		log.Debug("unable to detect tw version", zap.Error(err))
		return
	}
	log.Debug("detected tw version", zap.String("version", version))
}
