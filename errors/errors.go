package errors

import "fmt"

var (
	ErrAuthInit       = fmt.Errorf("auth bootstrap failed")
	ErrInvalidToken   = fmt.Errorf("invalid credential token")
	ErrSubscription   = fmt.Errorf("feed subscription failed")
	ErrAppend         = fmt.Errorf("message append failed")
	ErrEmptyText      = fmt.Errorf("message text is empty")
	ErrUnknownChannel = fmt.Errorf("unknown channel path")
)
