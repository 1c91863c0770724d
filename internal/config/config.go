package config

import (
	"fmt"
	"time"
)

// Config представляет конфигурацию конвертера.
// Значения задаются в коде: утилита не читает файлов конфигурации
// и переменных окружения.
type Config struct {
	Logger  LoggerConfig
	Outline OutlineConfig
	Fetch   FetchConfig
}

// LoggerConfig содержит настройки системы логирования.
// Определяет уровень детализации логов (debug, info, warn, error).
type LoggerConfig struct {
	Level string
}

// OutlineConfig описывает оформление выходного OPML-документа.
type OutlineConfig struct {
	Title    string
	Version  string
	RootText string
	Indent   string
}

// FetchConfig содержит настройки загрузки входных данных по HTTP.
type FetchConfig struct {
	Timeout time.Duration
}

// New создает новый экземпляр Config с значениями по умолчанию.
func New() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level: "info",
		},
		Outline: OutlineConfig{
			Title:    "Podcast Subscriptions",
			Version:  "2.0",
			RootText: "feeds",
		},
		Fetch: FetchConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Validate проверяет корректность конфигурации.
// Возвращает ошибку с описанием первой найденной проблемы.
func (c *Config) Validate() error {
	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logger.level: %q", c.Logger.Level)
	}
	if c.Outline.Title == "" {
		return fmt.Errorf("outline.title is not set")
	}
	if c.Outline.Version == "" {
		return fmt.Errorf("outline.version is not set")
	}
	if c.Outline.RootText == "" {
		return fmt.Errorf("outline.root_text is not set")
	}
	for _, r := range c.Outline.Indent {
		if r != ' ' && r != '\t' {
			return fmt.Errorf("outline.indent must contain only spaces or tabs")
		}
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch.timeout must not be negative")
	}
	return nil
}
