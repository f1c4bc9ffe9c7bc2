package logging

import (
	"io"
	"os"

	"github.com/gregn610/siteconf/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

// Setup wires the global logger. When SITECONF_LOG_CONFIG points at a
// zeroconfig YAML file that file wins; otherwise a plain console writer at
// info level is used so the CLI works without any logging setup.
func Setup() {
	path := os.Getenv(config.LogConfigEnv)
	if path == "" {
		log.Logger = consoleLogger(zerolog.InfoLevel)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not readable")
		panic(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not readable")
		panic(err)
	}

	var cfg zeroconfig.Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not valid yaml")
		panic(err)
	}

	logger, err := cfg.Compile()
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not valid for zerolog, see go.mau.fi/zeroconfig documentation")
		panic(err)
	}
	log.Logger = *logger
}

// SetVerbose drops the console threshold to debug. Only meaningful with the
// fallback logger; an explicit zeroconfig file keeps its own levels.
func SetVerbose() {
	if os.Getenv(config.LogConfigEnv) != "" {
		return
	}
	log.Logger = consoleLogger(zerolog.DebugLevel)
}

func consoleLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
