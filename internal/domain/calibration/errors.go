package calibration

import "errors"

var (
	ErrEngineerNotFound    = errors.New("engineer not found")
	ErrCalibrationNotFound = errors.New("no calibration found for this engineer")
	ErrStorage             = errors.New("calibration could not be saved")
	ErrExportFailed        = errors.New("export document could not be generated")
)
