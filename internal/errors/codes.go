// Package errors provides structured error handling for parseek.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (file, disk)
//   - 3XX: Worker and sink errors
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and disk I/O errors.
	CategoryIO Category = "IO"
	// CategoryWorker indicates worker and sink errors.
	CategoryWorker Category = "WORKER"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound   = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    = "ERR_102_CONFIG_INVALID"
	ErrCodeConfigPermission = "ERR_103_CONFIG_PERMISSION"

	// IO errors (200-299)
	ErrCodeFileNotFound   = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"
	ErrCodeFileTooLarge   = "ERR_203_FILE_TOO_LARGE"
	ErrCodeCorpusLocked   = "ERR_204_CORPUS_LOCKED"

	// Worker errors (300-399)
	ErrCodeWorkerLost    = "ERR_301_WORKER_LOST"
	ErrCodeWorkerSpawn   = "ERR_302_WORKER_SPAWN"
	ErrCodeWorkerReply   = "ERR_303_WORKER_REPLY"
	ErrCodeSinkOverflow  = "ERR_304_SINK_OVERFLOW"
	ErrCodeWorkerAborted = "ERR_305_WORKER_ABORTED"

	// Validation errors (400-499)
	ErrCodeInvalidInput    = "ERR_401_INVALID_INPUT"
	ErrCodeInvalidWorkers  = "ERR_402_INVALID_WORKERS"
	ErrCodeEmptyKeywords   = "ERR_403_EMPTY_KEYWORDS"
	ErrCodeUnknownBackend  = "ERR_404_UNKNOWN_BACKEND"
	ErrCodeInvalidPath     = "ERR_405_INVALID_PATH"

	// Internal errors (500-599)
	ErrCodeInternal     = "ERR_501_INTERNAL"
	ErrCodeSearchFailed = "ERR_502_SEARCH_FAILED"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract numeric portion (e.g., "101" from "ERR_101_CONFIG_NOT_FOUND")
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryWorker
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeWorkerLost, ErrCodeWorkerAborted, ErrCodeSinkOverflow:
		// A lost worker invalidates the whole search result.
		return SeverityFatal
	case ErrCodeFileNotFound, ErrCodeFilePermission, ErrCodeFileTooLarge:
		// Per-file failures are skipped, not escalated.
		return SeverityWarning
	}
	return SeverityError
}
