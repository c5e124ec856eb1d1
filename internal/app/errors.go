// internal/app/errors.go
package app

import "errors"

var (
	// ErrMissingSurface означает, что поверхность не подключена или имеет
	// нулевой размер. Кадры для неё не планируются до следующего resize.
	ErrMissingSurface = errors.New("app: surface not attached")
)
