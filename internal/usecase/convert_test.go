package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"podopml/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	data string
	err  error
}

func (f *stubFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.data)), nil
}

type stubParser struct {
	records []domain.Record
	err     error
}

func (p *stubParser) Parse(ctx context.Context, reader io.Reader) ([]domain.Record, error) {
	return p.records, p.err
}

type stubStorage struct {
	path    string
	outline *domain.Outline
	calls   int
	err     error
}

func (s *stubStorage) Save(ctx context.Context, path string, outline *domain.Outline) error {
	s.calls++
	s.path = path
	s.outline = outline
	return s.err
}

func newTestConvertUseCase(f SourceFetcher, p RecordParser, s OutlineStorage) *ConvertUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewConvertUseCase(f, p, NewTransformer(logger, ""), s, logger)
}

func TestConvertUseCase_Convert_Success(t *testing.T) {
	parser := &stubParser{records: records(
		map[string]any{"feedTitle": "A", "feedUrl": "http://a", "episodeUrl": "e1"},
		map[string]any{"feedTitle": "B", "feedUrl": "http://b", "episodeUrl": "e2"},
	)}
	storage := &stubStorage{}
	uc := newTestConvertUseCase(&stubFetcher{data: "[]"}, parser, storage)

	err := uc.Convert(context.Background(), "in.json", "out.opml")

	require.NoError(t, err)
	assert.Equal(t, 1, storage.calls)
	assert.Equal(t, "out.opml", storage.path)
	require.NotNil(t, storage.outline)
	assert.Len(t, storage.outline.Feeds, 2)
}

func TestConvertUseCase_Convert_FetchError(t *testing.T) {
	ioErr := &domain.IOError{Op: "read", Path: "in.json", Err: errors.New("no such file")}
	storage := &stubStorage{}
	uc := newTestConvertUseCase(&stubFetcher{err: ioErr}, &stubParser{}, storage)

	err := uc.Convert(context.Background(), "in.json", "out.opml")

	var target *domain.IOError
	require.ErrorAs(t, err, &target)
	assert.Contains(t, err.Error(), "fetch failed")
	assert.Equal(t, 0, storage.calls)
}

func TestConvertUseCase_Convert_ParseError(t *testing.T) {
	parser := &stubParser{err: &domain.FormatError{Position: -1, Reason: "bad"}}
	storage := &stubStorage{}
	uc := newTestConvertUseCase(&stubFetcher{}, parser, storage)

	err := uc.Convert(context.Background(), "in.json", "out.opml")

	var target *domain.FormatError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 0, storage.calls)
}

func TestConvertUseCase_Convert_TransformErrorSkipsSave(t *testing.T) {
	parser := &stubParser{records: records(
		map[string]any{"feedTitle": "A", "feedUrl": "u"},
		map[string]any{"feedTitle": "B"},
	)}
	storage := &stubStorage{}
	uc := newTestConvertUseCase(&stubFetcher{}, parser, storage)

	err := uc.Convert(context.Background(), "in.json", "out.opml")

	var target *domain.MissingFieldError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, domain.FieldFeedURL, target.Field)
	assert.Equal(t, 1, target.Position)
	assert.Equal(t, 0, storage.calls)
}

func TestConvertUseCase_Convert_SaveError(t *testing.T) {
	storage := &stubStorage{err: &domain.IOError{Op: "write", Path: "out.opml", Err: errors.New("read-only")}}
	uc := newTestConvertUseCase(&stubFetcher{}, &stubParser{}, storage)

	err := uc.Convert(context.Background(), "in.json", "out.opml")

	var target *domain.IOError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "write", target.Op)
	assert.Contains(t, err.Error(), "save failed")
}
