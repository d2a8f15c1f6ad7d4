package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  StatusError,
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrUnknownRole = ErrorResponse{
		Status: StatusError,
		Error:  "unknown_role",
	}

	ErrInvalidFilter = ErrorResponse{
		Status: StatusError,
		Error:  "invalid_filter",
	}

	ErrItemNotFound = ErrorResponse{
		Status: StatusError,
		Error:  "item_not_found",
	}

	ErrCategoryNotFound = ErrorResponse{
		Status: StatusError,
		Error:  "category_not_found",
	}

	ErrInvalidContact = ErrorResponse{
		Status:  StatusError,
		Error:   "invalid_contact_message",
		Details: "Name, a valid email and a message are required",
	}

	ErrDeliveryFailed = ErrorResponse{
		Status:  StatusError,
		Error:   "delivery_failed",
		Details: "The message could not be sent, please try again",
	}

	ErrArchiveDisabled = ErrorResponse{
		Status:  StatusError,
		Error:   "archive_disabled",
		Details: "Contact archive is not configured",
	}

	ErrUnauthorized = ErrorResponse{
		Status: StatusError,
		Error:  "unauthorized",
	}

	ErrInternal = ErrorResponse{
		Status:  StatusError,
		Error:   "internal_error",
		Details: "Internal server error",
	}
)

// WithDetails returns a copy of e carrying details.
func (e ErrorResponse) WithDetails(details string) ErrorResponse {
	e.Details = details
	return e
}
