package configs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type WorkExchangeBotConfig struct {
	App           App
	Admin         Admin
	Bot           Bot
	DB            DB
	Redis         Redis
	Logger        Logger
	Storage       Storage
	Translator    Translator
	Notifications Notifications
}

type NotificationsServiceConfig struct {
	App           App
	Bot           Bot
	DB            DB
	Logger        Logger
	Storage       Storage
	Translator    Translator
	Notifications Notifications
}

type SeedCatalogConfig struct {
	DB     DB
	Logger Logger
}

func LoadWorkExchangeBotConfig() (WorkExchangeBotConfig, error) {
	var config WorkExchangeBotConfig

	if err := parse(&config); err != nil {
		return WorkExchangeBotConfig{}, err
	}

	return config, nil
}

func LoadNotificationsServiceConfig() (NotificationsServiceConfig, error) {
	var config NotificationsServiceConfig

	if err := parse(&config); err != nil {
		return NotificationsServiceConfig{}, err
	}

	return config, nil
}

func LoadSeedCatalogConfig() (SeedCatalogConfig, error) {
	var config SeedCatalogConfig

	if err := parse(&config); err != nil {
		return SeedCatalogConfig{}, err
	}

	return config, nil
}

func parse(config interface{}) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}
