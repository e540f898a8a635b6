package domain

import "errors"

// ============================================================================
// Project & Training Errors
// ============================================================================

// Not found errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSoundNotFound   = errors.New("sound not found")
)

// Validation errors
var (
	ErrMissingTenant           = errors.New("class id is required")
	ErrMissingStudent          = errors.New("student id is required")
	ErrInvalidProjectID        = errors.New("invalid project id")
	ErrInvalidLabel            = errors.New("label is not defined for this project")
	ErrInvalidTrainingData     = errors.New("invalid training data")
	ErrTextTooLong             = errors.New("text training data exceeds maximum length")
	ErrProjectTypeNotSupported = errors.New("operation not supported for this project type")
	ErrPayloadTooLarge         = errors.New("payload too large")
	ErrEmptyPayload            = errors.New("payload is empty")
	ErrInvalidPagination       = errors.New("limit and offset must be integers")
)

// Conflict errors
var (
	ErrTrainingItemConflict = errors.New("training item already exists for this label")
)

// ============================================================================
// Scratch Errors
// ============================================================================

var (
	ErrScratchKeyNotFound    = errors.New("scratch key not found")
	ErrMissingClassifyData   = errors.New("data to classify is required")
	ErrClassifierUnavailable = errors.New("classifier service unavailable")
	ErrNoLabels              = errors.New("project has no labels")
)

// ============================================================================
// Credentials Errors
// ============================================================================

var (
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrCredentialsRejected = errors.New("credentials rejected by service")
	ErrServiceUnreachable  = errors.New("ml service unreachable")
)

// ============================================================================
// Debug Errors
// ============================================================================

var (
	ErrUnsupportedStatusCode = errors.New("unsupported status code")
)
