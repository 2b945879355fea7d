package schedule

import "errors"

var (
	// ErrOpenFile возвращается при ошибке открытия файла расписания
	ErrOpenFile = errors.New("schedule.repository: failed to open schedule file")

	// ErrReadFile возвращается при ошибке чтения CSV
	ErrReadFile = errors.New("schedule.repository: failed to read schedule file")

	// ErrInvalidRow возвращается при некорректной строке CSV
	ErrInvalidRow = errors.New("schedule.repository: invalid schedule row")
)
