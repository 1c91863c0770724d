package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ConvertUseCase реализует бизнес-логику конвертации экспорта эпизодов в OPML.
// Координирует процесс чтения, разбора, группировки и сохранения документа.
type ConvertUseCase struct {
	fetcher     SourceFetcher
	parser      RecordParser
	transformer *Transformer
	storage     OutlineStorage
	log         *slog.Logger
}

// NewConvertUseCase создает новый экземпляр UseCase для конвертации.
// Принимает зависимости: загрузчик, парсер, трансформер, хранилище и логгер.
func NewConvertUseCase(
	fetcher SourceFetcher,
	parser RecordParser,
	transformer *Transformer,
	storage OutlineStorage,
	log *slog.Logger,
) *ConvertUseCase {
	return &ConvertUseCase{
		fetcher:     fetcher,
		parser:      parser,
		transformer: transformer,
		storage:     storage,
		log:         log,
	}
}

// Convert выполняет полный цикл: чтение входа, разбор, группировку и запись результата.
// Документ записывается только после того, как он полностью построен.
// Возвращает ошибку в случае сбоя любого из этапов.
func (uc *ConvertUseCase) Convert(ctx context.Context, input, output string) error {
	start := time.Now()
	log := uc.log.With(
		slog.String("component", "converter"),
		slog.String("input", input),
		slog.String("output", output),
	)

	log.Info("Conversion started")

	reader, err := uc.fetcher.Fetch(ctx, input)
	if err != nil {
		log.Error("Input read failed",
			slog.String("stage", "fetch"),
			slog.Any("error", err),
		)
		return fmt.Errorf("fetch failed: %w", err)
	}
	defer reader.Close()

	records, err := uc.parser.Parse(ctx, reader)
	if err != nil {
		log.Error("Input parsing failed",
			slog.String("stage", "parse"),
			slog.Any("error", err),
		)
		return fmt.Errorf("parse failed: %w", err)
	}

	log.Debug("Input parsed successfully",
		slog.String("stage", "parse"),
		slog.Int("records", len(records)),
	)

	outline, err := uc.transformer.Transform(ctx, records)
	if err != nil {
		log.Error("Transform failed",
			slog.String("stage", "transform"),
			slog.Any("error", err),
		)
		return fmt.Errorf("transform failed: %w", err)
	}

	if err := uc.storage.Save(ctx, output, outline); err != nil {
		log.Error("Output save failed",
			slog.String("stage", "save"),
			slog.Any("error", err),
		)
		return fmt.Errorf("save failed: %w", err)
	}

	log.Info("Conversion completed successfully",
		slog.Int("feeds", len(outline.Feeds)),
		slog.Int("episodes", outline.EpisodeCount()),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
