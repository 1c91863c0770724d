package fetcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"podopml/internal/domain"
	"strings"
)

// SourceFetcher выбирает способ чтения входных данных по виду location:
// адреса http:// и https:// загружаются через HTTPFetcher,
// всё остальное читается как путь к локальному файлу.
type SourceFetcher struct {
	http *HTTPFetcher
	log  *slog.Logger
}

func NewSourceFetcher(httpFetcher *HTTPFetcher, log *slog.Logger) *SourceFetcher {
	return &SourceFetcher{
		http: httpFetcher,
		log:  log,
	}
}

// Fetch реализует интерфейс usecase.SourceFetcher.
// Любая ошибка чтения возвращается как *domain.IOError.
func (f *SourceFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if isRemote(location) {
		reader, err := f.http.Fetch(ctx, location)
		if err != nil {
			return nil, &domain.IOError{Op: "read", Path: location, Err: err}
		}
		return reader, nil
	}
	file, err := os.Open(location)
	if err != nil {
		f.log.Error("Failed to open input file",
			slog.String("path", location),
			slog.Any("error", err),
		)
		return nil, &domain.IOError{Op: "read", Path: location, Err: err}
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, &domain.IOError{Op: "read", Path: location, Err: err}
	}
	if info.IsDir() {
		file.Close()
		return nil, &domain.IOError{Op: "read", Path: location, Err: errors.New("is a directory")}
	}
	f.log.Debug("Input file opened",
		slog.String("path", location),
		slog.Int64("size", info.Size()),
	)
	return file, nil
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
