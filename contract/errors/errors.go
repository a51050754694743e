package errors

// Error codes for the bus contracts. Keep stable; used across the bus, rules and config.
const (
	ErrCodeHandlerFailed        = "eventbus.handler_failed"
	ErrCodeHandlerPanicked      = "eventbus.handler_panicked"
	ErrCodeHandlerTypeMismatch  = "eventbus.handler_type_mismatch"
	ErrCodeSubscriptionNotFound = "eventbus.subscription_not_found"
	ErrCodeNilEvent             = "eventbus.nil_event"
	ErrCodeBusClosed            = "eventbus.closed"
	ErrCodeInvalidBlockID       = "eventbus.invalid_block_id"
	ErrCodeConfigLoadFailed     = "eventbus.config_load_failed"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrHandlerFailed        = Code(ErrCodeHandlerFailed)
	ErrHandlerPanicked      = Code(ErrCodeHandlerPanicked)
	ErrHandlerTypeMismatch  = Code(ErrCodeHandlerTypeMismatch)
	ErrSubscriptionNotFound = Code(ErrCodeSubscriptionNotFound)
	ErrNilEvent             = Code(ErrCodeNilEvent)
	ErrBusClosed            = Code(ErrCodeBusClosed)
	ErrInvalidBlockID       = Code(ErrCodeInvalidBlockID)
	ErrConfigLoadFailed     = Code(ErrCodeConfigLoadFailed)
)
