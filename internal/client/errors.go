package client

import "fmt"

// NetworkError wraps a transport-level failure. Always retryable by
// re-invoking the same action; the caller's state is preserved.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthError signals a rejected or expired credential. The client never
// attempts a silent token refresh; the user logs in again.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "auth error: " + e.Message
}

// APIError carries a non-auth server rejection, such as a 409 slot conflict.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
