package usecase

import (
	"context"
	"io"
	"podopml/internal/domain"
)

// SourceFetcher определяет интерфейс для чтения входных данных по пути или URL.
// Возвращает io.ReadCloser который должен быть закрыт после использования.
type SourceFetcher interface {
	Fetch(ctx context.Context, location string) (io.ReadCloser, error)
}

// RecordParser определяет интерфейс для разбора входных данных в записи об эпизодах.
type RecordParser interface {
	Parse(ctx context.Context, reader io.Reader) ([]domain.Record, error)
}

// OutlineStorage определяет интерфейс для сохранения готового документа.
type OutlineStorage interface {
	Save(ctx context.Context, path string, outline *domain.Outline) error
}
