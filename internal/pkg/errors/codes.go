package errors

import "net/http"

const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeValidation      = "VALIDATION_FAILED"
)

var (
	ErrTreeNotFound = New(
		"TREE_NOT_FOUND",
		"Tree not found",
		http.StatusNotFound,
	)

	ErrWorkAreaNotFound = New(
		"WORK_AREA_NOT_FOUND",
		"Work area not found",
		http.StatusNotFound,
	)

	ErrGPSTrackNotFound = New(
		"GPS_TRACK_NOT_FOUND",
		"GPS track not found",
		http.StatusNotFound,
	)

	ErrVectorLayerNotFound = New(
		"VECTOR_LAYER_NOT_FOUND",
		"Vector layer not found",
		http.StatusNotFound,
	)

	ErrMeasurementNotFound = New(
		"MEASUREMENT_NOT_FOUND",
		"Measurement not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInvalidReportType = New(
		"INVALID_REPORT_TYPE",
		"Invalid report type",
		http.StatusBadRequest,
	)

	ErrInvalidExportFormat = New(
		"INVALID_EXPORT_FORMAT",
		"Invalid export format",
		http.StatusBadRequest,
	)

	ErrInvalidTrackPoints = New(
		CodeInvalidArgument,
		"Track points must contain numeric lat and lng",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		CodeValidation,
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrMissingFile = New(
		CodeInvalidRequest,
		"Multipart field 'file' is required",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"File storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
