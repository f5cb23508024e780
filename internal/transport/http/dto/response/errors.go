package response

// Public API errors, worded exactly as clients expect them.
var (
	ErrInvalidJSON = Detail{Detail: "Invalid JSON payload."}

	ErrRateLimited = Detail{Detail: "Rate limit exceeded. Please try again later."}

	ErrNotFound = Detail{Detail: "Not found."}

	ErrInternal = Detail{Detail: "An internal error occurred."}
)

// Admin API errors.
var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrDuplicateRecord = ErrorResponse{
		Status:  "error",
		Error:   "duplicate_record",
		Details: "A record with this slug or name already exists",
	}
)
