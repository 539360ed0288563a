package engineers

import "errors"

var (
	ErrEngineerNotFound = errors.New("engineer not found")
	ErrEmailConflict    = errors.New("email already exists")
)
