package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"podopml/internal/domain"
)

type JSONParser struct {
	log *slog.Logger
}

func NewJSONParser(log *slog.Logger) *JSONParser {
	return &JSONParser{
		log: log,
	}
}

// Parse реализует метод интерфейса RecordParser.
// Вход должен быть JSON-массивом объектов; порядок записей сохраняется.
func (p *JSONParser) Parse(ctx context.Context, reader io.Reader) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raws []json.RawMessage
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&raws); err != nil {
		p.log.Error(
			"Error decoding JSON",
			slog.Any("error", err),
		)
		return nil, &domain.FormatError{Position: -1, Reason: "failed to decode JSON", Err: err}
	}
	if raws == nil {
		return nil, &domain.FormatError{Position: -1, Reason: "expected an array of records"}
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		p.log.Error("Unexpected data after records array")
		return nil, &domain.FormatError{Position: -1, Reason: "unexpected data after records array"}
	}
	records := make([]domain.Record, 0, len(raws))
	for i, raw := range raws {
		fields, err := decodeObject(raw)
		if err != nil {
			p.log.Error(
				"Record is not an object",
				slog.Int("position", i),
				slog.Any("error", err),
			)
			return nil, &domain.FormatError{Position: i, Reason: "expected an object", Err: err}
		}
		if fields == nil {
			return nil, &domain.FormatError{Position: i, Reason: "expected an object, got null"}
		}
		records = append(records, domain.NewRecord(i, fields))
	}
	p.log.Debug("Records decoded", slog.Int("count", len(records)))
	return records, nil
}

// decodeObject декодирует один элемент массива, сохраняя числа как json.Number,
// чтобы minLeft выводился без потери исходной записи.
func decodeObject(raw json.RawMessage) (map[string]any, error) {
	var fields map[string]any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}
