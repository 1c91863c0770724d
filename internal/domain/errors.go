package domain

import "fmt"

// UsageError сообщает о неверных аргументах командной строки.
// Got равен -1, если аргументы не удалось разобрать (неизвестный флаг).
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	if e.Got < 0 {
		return "invalid arguments"
	}
	return fmt.Sprintf("expected 2 arguments, got %d", e.Got)
}

// FormatError сообщает о некорректной структуре входных данных:
// вход не является массивом объектов или поле имеет неверный тип.
// Position равен -1, если ошибка относится ко всему документу.
type FormatError struct {
	Position int
	Field    string
	Reason   string
	Err      error
}

func (e *FormatError) Error() string {
	msg := "malformed input"
	if e.Position >= 0 {
		msg = fmt.Sprintf("%s: record %d", msg, e.Position)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: field %q", msg, e.Field)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// MissingFieldError сообщает об отсутствии обязательного поля в записи.
type MissingFieldError struct {
	Field    string
	Position int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Position, e.Field)
}

// IOError оборачивает ошибку чтения входного или записи выходного файла.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
