package browser

import "fmt"

// AuthError indicates the portal rejected the supplied credentials.
// Never retried: repeated attempts risk an account lockout.
type AuthError struct {
	User string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication rejected for %s: %v", e.User, e.Err)
	}
	return fmt.Sprintf("authentication rejected for %s", e.User)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NavTimeoutError indicates a page never became ready within the wait
// budget. Carries the URL attempted so the failing step is diagnosable.
type NavTimeoutError struct {
	URL string
	Err error
}

func (e *NavTimeoutError) Error() string {
	return fmt.Sprintf("navigation to %s did not become ready: %v", e.URL, e.Err)
}

func (e *NavTimeoutError) Unwrap() error {
	return e.Err
}
