package handler

// Client facing messages. Internal error details are never returned.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s"
	ErrMsgInvalidPrice          = "price_per_unit must be a decimal string"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgNotFound           = "Resource not found"
	ErrMsgConflict           = "Request conflicts with current state"
	ErrMsgLimitExceeded      = "Limit exceeded"
	ErrMsgInsufficientStock  = "Not enough items"
	ErrMsgInvalidState       = "Invalid request. Please check your inputs."
	ErrMsgInvalidCredentials = "Invalid email or password"
)
