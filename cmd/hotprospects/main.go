package main

import (
	"hotprospects/internal/di"
	"hotprospects/internal/structures"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVarP(&flags.ConfigPath, "config", "c", "configs/config.yaml", "path to the YAML config file")
	flag.BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to stderr")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		log.Fatal().Err(err).Str("config", flags.ConfigPath).Msg("hotprospects stopped")
	}
}
