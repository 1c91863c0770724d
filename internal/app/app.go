package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"podopml/internal/adapter/fetcher"
	"podopml/internal/adapter/opml"
	"podopml/internal/adapter/parser"
	"podopml/internal/config"
	"podopml/internal/logger"
	"podopml/internal/usecase"
)

// App представляет приложение-конвертер.
// Связывает загрузчик, парсер, трансформер и OPML-писатель в один сценарий.
type App struct {
	config    *config.Config
	logger    *slog.Logger
	converter *usecase.ConvertUseCase
}

// New создает и инициализирует приложение.
// Логи пишутся в logOut; возвращает ошибку при некорректной конфигурации.
func New(cfg *config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	appLogger := logger.New(cfg.Logger, logOut, logOut)

	httpFetcher := fetcher.NewHTTPFetcher(appLogger, cfg.Fetch.Timeout)

	sourceFetcher := fetcher.NewSourceFetcher(httpFetcher, appLogger)

	jsonParser := parser.NewJSONParser(appLogger)

	transformer := usecase.NewTransformer(appLogger, cfg.Outline.Title)

	writer := opml.NewWriter(opml.Options{
		Version:  cfg.Outline.Version,
		RootText: cfg.Outline.RootText,
		Indent:   cfg.Outline.Indent,
	}, appLogger)

	converter := usecase.NewConvertUseCase(sourceFetcher, jsonParser, transformer, writer, appLogger)

	return &App{
		config:    cfg,
		logger:    appLogger,
		converter: converter,
	}, nil
}

// Run выполняет одну конвертацию input -> output.
func (a *App) Run(ctx context.Context, input, output string) error {
	a.logger.Debug("Starting podopml",
		slog.String("component", "app"),
		slog.String("log_level", a.config.Logger.Level),
	)
	return a.converter.Convert(ctx, input, output)
}
