package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/indigo-web/nimble"
	"github.com/indigo-web/nimble/config"
	"github.com/indigo-web/nimble/router/website"
	"github.com/rs/zerolog"
)

const defaultPublicPath = "./public"

func main() {
	addr := flag.String("addr", "127.0.0.1:3000", "address to listen on")
	configPath := flag.String("config", "", "path to a JSON config file")
	publicPath := flag.String("public", publicPathFromEnv(), "directory to serve files from")
	flag.Parse()

	if err := run(*addr, *configPath, *publicPath); err != nil {
		fmt.Fprintln(os.Stderr, "nimble:", err)
		os.Exit(1)
	}
}

func run(addr, configPath, publicPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	logger.Info().Str("public path", publicPath).Msg("serving files")

	r, err := website.New(publicPath, logger)
	if err != nil {
		return err
	}

	return nimble.New(addr).
		Tune(cfg).
		Logger(logger).
		Serve(r)
}

func publicPathFromEnv() string {
	if path, ok := os.LookupEnv("PUBLIC_PATH"); ok {
		return path
	}

	return defaultPublicPath
}
