package parser

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"podopml/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse_Success(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := NewJSONParser(logger)

	jsonData := `[
	{"feedTitle": "A", "feedUrl": "http://a", "episodeUrl": "e1", "episodeGuid": "g1", "episodeStatus": "played", "minLeft": 5},
	{"feedTitle": "B", "feedUrl": "http://b", "minLeft": 2.50}
	]`

	ctx := context.Background()
	records, err := parser.Parse(ctx, strings.NewReader(jsonData))

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 0, records[0].Position)
	assert.Equal(t, "A", records[0].Fields["feedTitle"])
	assert.Equal(t, json.Number("5"), records[0].Fields["minLeft"])

	assert.Equal(t, 1, records[1].Position)
	assert.Equal(t, "B", records[1].Fields["feedTitle"])
	assert.Equal(t, json.Number("2.50"), records[1].Fields["minLeft"])
}

func TestJSONParser_Parse_EmptyArray(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := NewJSONParser(logger)

	records, err := parser.Parse(context.Background(), strings.NewReader(`[]`))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJSONParser_Parse_InvalidJSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := NewJSONParser(logger)

	records, err := parser.Parse(context.Background(), strings.NewReader(`[{"feedTitle": "A",`))

	assert.Nil(t, records)
	var formatErr *domain.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, -1, formatErr.Position)
	assert.Contains(t, err.Error(), "failed to decode JSON")
}

func TestJSONParser_Parse_NotAnArray(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := NewJSONParser(logger)

	tests := []struct {
		name  string
		input string
	}{
		{"object", `{"feedTitle": "A"}`},
		{"null", `null`},
		{"string", `"records"`},
		{"trailing data", `[] []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := parser.Parse(context.Background(), strings.NewReader(tt.input))
			assert.Nil(t, records)
			var formatErr *domain.FormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestJSONParser_Parse_RecordNotAnObject(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := NewJSONParser(logger)

	tests := []struct {
		name  string
		input string
	}{
		{"number", `[{"feedTitle": "A", "feedUrl": "u"}, 42]`},
		{"null", `[{"feedTitle": "A", "feedUrl": "u"}, null]`},
		{"array", `[{"feedTitle": "A", "feedUrl": "u"}, []]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := parser.Parse(context.Background(), strings.NewReader(tt.input))
			assert.Nil(t, records)
			var formatErr *domain.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, 1, formatErr.Position)
		})
	}
}

func TestJSONParser_Parse_ContextCancelled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := NewJSONParser(logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	records, err := parser.Parse(ctx, strings.NewReader(`[]`))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, records)
}
