package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"shop-events/internal"
)

func main() {
	if os.Getenv("SHOP_ENV") == "" {
		// .env is optional
		_ = godotenv.Load()
	}

	cfg := internal.DefaultConfig()
	if configPath := os.Getenv("SHOP_CONFIG_PATH"); configPath != "" {
		if err := internal.LoadConfig(configPath, &cfg); err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("cannot parse config file")
		}
	}
	if level := os.Getenv("SHOP_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if err := setLogConfigurations(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid log configuration")
	}

	log.Info().Str("version", cfg.Version).Msg("starting shop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shop := internal.NewShop(internal.NewCart(), internal.NewLedger(log.Logger), log.Logger)
	defer shop.Close()

	if err := shop.Run(ctx, cfg.Steps()); err != nil {
		log.Error().Err(err).Msg("script failed")
		stop()
		os.Exit(1)
	}

	log.Info().Interface("contents", shop.Cart.Contents()).Int("records", shop.Ledger.Len()).Msg("script done")
}

func setLogConfigurations(cfg internal.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	// https://github.com/rs/zerolog#add-file-and-line-number-to-log
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
		return file + ":" + strconv.Itoa(line)
	}

	if cfg.PrettyLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	log.Logger = log.With().Caller().Logger()
	return nil
}
