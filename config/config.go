package config

import "github.com/kelseyhightower/envconfig"

// Config carries everything the process needs from the environment. The two
// file paths name the durable documents; pointing them at a scratch
// directory is how tests and local setups get isolated state.
type Config struct {
	Port      string `envconfig:"PORT" default:"5000"`
	UsersFile string `envconfig:"USERS_FILE" default:"users.json"`
	FoodsFile string `envconfig:"FOODS_FILE" default:"foods.json"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
