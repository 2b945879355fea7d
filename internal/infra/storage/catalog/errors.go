package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда ни одна услуга не проходит порог схожести
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrOpenFile возвращается при ошибке открытия файла с услугами
	ErrOpenFile = errors.New("catalog.repository: failed to open services file")

	// ErrReadFile возвращается при ошибке чтения CSV
	ErrReadFile = errors.New("catalog.repository: failed to read services file")

	// ErrInvalidRow возвращается при некорректной строке CSV
	ErrInvalidRow = errors.New("catalog.repository: invalid services row")
)
