// Package config loads typed configuration structs from environment
// variables.
//
// Components declare their configuration as a struct with `env` tags and call
// Load (or MustLoad) during construction:
//
//	type Config struct {
//		TriggerSecret string `env:"CRON_SECRET,required"`
//		BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Values are parsed with github.com/caarlos0/env and cached per struct type,
// so repeated loads are cheap and consistent. A local .env file is honored in
// development via github.com/joho/godotenv.
package config
