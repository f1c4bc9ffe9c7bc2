package config

import (
	"os"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// LoadEnvironment reads SITECONF_ENV. A configuration is edited far more
// often than it is published, so the default is development; publish
// pipelines set production and thereby make the site URL mandatory.
func LoadEnvironment() Environment {
	env := os.Getenv(ENV_PREFIX + "_ENV")

	switch env {
	case string(EnvProduction):
		return EnvProduction
	case string(EnvDevelopment), "":
		return EnvDevelopment
	default:
		panic("invalid " + ENV_PREFIX + "_ENV: " + env)
	}
}
