package domain

import (
	"encoding/json"
	"strconv"
)

// Имена полей входной записи.
const (
	FieldFeedTitle     = "feedTitle"
	FieldFeedURL       = "feedUrl"
	FieldEpisodeURL    = "episodeUrl"
	FieldEpisodeGUID   = "episodeGuid"
	FieldEpisodeStatus = "episodeStatus"
	FieldMinLeft       = "minLeft"
)

// DefaultMinLeft - значение minLeft для записей без этого поля.
const DefaultMinLeft = "0"

// Record - одна запись об эпизоде из входного файла вместе с её позицией.
// Значения полей хранятся в том виде, в каком их вернул JSON-декодер
// (числа как json.Number), доступ к ним идёт только через методы ниже.
type Record struct {
	Position int
	Fields   map[string]any
}

// NewRecord создает запись с указанной позицией и полями.
func NewRecord(position int, fields map[string]any) Record {
	return Record{Position: position, Fields: fields}
}

// FeedTitle возвращает обязательное поле feedTitle.
func (r Record) FeedTitle() (string, error) {
	return r.requiredString(FieldFeedTitle)
}

// FeedURL возвращает обязательное поле feedUrl.
func (r Record) FeedURL() (string, error) {
	return r.requiredString(FieldFeedURL)
}

// EpisodeURL возвращает episodeUrl или пустую строку.
func (r Record) EpisodeURL() (string, error) {
	return r.optionalString(FieldEpisodeURL)
}

// EpisodeGUID возвращает episodeGuid или пустую строку.
func (r Record) EpisodeGUID() (string, error) {
	return r.optionalString(FieldEpisodeGUID)
}

// EpisodeStatus возвращает episodeStatus или пустую строку.
func (r Record) EpisodeStatus() (string, error) {
	return r.optionalString(FieldEpisodeStatus)
}

// MinLeft возвращает десятичное представление minLeft без округления.
// Число сохраняет исходную запись из JSON ("2.5", "5", "5.0").
// Отсутствующее поле или null дают DefaultMinLeft.
func (r Record) MinLeft() (string, error) {
	v, ok := r.Fields[FieldMinLeft]
	if !ok || v == nil {
		return DefaultMinLeft, nil
	}
	switch n := v.(type) {
	case json.Number:
		return n.String(), nil
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(n), nil
	case string:
		return n, nil
	default:
		return "", r.typeError(FieldMinLeft, "number")
	}
}

func (r Record) requiredString(field string) (string, error) {
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return "", &MissingFieldError{Field: field, Position: r.Position}
	}
	s, ok := v.(string)
	if !ok {
		return "", r.typeError(field, "string")
	}
	return s, nil
}

func (r Record) optionalString(field string) (string, error) {
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", r.typeError(field, "string")
	}
	return s, nil
}

func (r Record) typeError(field, want string) error {
	return &FormatError{
		Position: r.Position,
		Field:    field,
		Reason:   "expected " + want,
	}
}
