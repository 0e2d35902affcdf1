package shell

import "github.com/pkg/errors"

// input errors, shown verbatim to the user
var (
	ErrMissingField    = errors.New("Please fill in all fields.")
	ErrInvalidTask     = errors.New("Please fill in all fields with valid data.")
	ErrInvalidPriority = errors.New("Priority must be an integer between 1 and 3.")
	ErrPriorityRange   = errors.New("Priority must be between 1 and 3.")
	ErrInvalidSearch   = errors.New("Please enter a valid priority.")
	ErrMissingOrderId  = errors.New("Please enter the Order ID to remove.")
)

var (
	ErrUnknownCommand    = errors.New("unknown command, type help")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrUnknownDemo       = errors.New("unknown demo")
	ErrAutoIdDisabled    = errors.New("automatic order ids are not available")
	ErrConfigFormat      = errors.New("config file must be .yaml, .yml or .json")
	ErrOutputMode        = errors.New("output must be text, table, json or yaml")
	ErrNegativeCapacity  = errors.New("capacity must not be negative")
)
