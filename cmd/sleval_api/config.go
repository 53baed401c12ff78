package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sublist-eval/internal/store/factory"
	"github.com/DjordjeVuckovic/sublist-eval/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type EvalAPIConfig struct {
	DatasetPath     string
	TargetAttribute string
	TargetValue     string
	StoreConfig     factory.StoreConfig
}

func (as *AppConfig) Load() (*EvalAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/sleval_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	cfg := &EvalAPIConfig{
		DatasetPath:     os.Getenv("DATASET_PATH"),
		TargetAttribute: os.Getenv("TARGET_ATTRIBUTE"),
		TargetValue:     os.Getenv("TARGET_VALUE"),
	}
	if cfg.DatasetPath == "" || cfg.TargetAttribute == "" || cfg.TargetValue == "" {
		return nil, fmt.Errorf("DATASET_PATH, TARGET_ATTRIBUTE and TARGET_VALUE must be set")
	}

	storeCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load store configuration from environment", "error", err)
		return nil, err
	}
	cfg.StoreConfig = *storeCfg

	return cfg, nil
}
