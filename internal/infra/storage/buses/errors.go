package buses

import "errors"

var (
	// ErrBusNotFound возвращается, когда автобус не найден
	ErrBusNotFound = errors.New("buses.repository: bus not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("buses.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("buses.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("buses.repository: failed to scan row")
)
