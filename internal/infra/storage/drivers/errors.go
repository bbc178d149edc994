package drivers

import "errors"

var (
	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("drivers.repository: driver not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("drivers.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("drivers.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("drivers.repository: failed to scan row")
)
