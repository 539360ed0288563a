package evaluation

import "errors"

var (
	ErrEngineerNotFound  = errors.New("engineer not found")
	ErrCriterionNotFound = errors.New("evaluation criterion not found")
	ErrStorage           = errors.New("evaluation could not be saved")
)
