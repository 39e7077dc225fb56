package extract

import "fmt"

// ListNotFoundError indicates the submission list never appeared within
// the wait budget. Zero rows is indistinguishable from a broken
// selector, so an empty listing is always this error, never an empty
// result.
type ListNotFoundError struct {
	Conference string
	Selector   string
	Err        error
}

func (e *ListNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission list not found for %s (selector %q): %v", e.Conference, e.Selector, e.Err)
	}
	return fmt.Sprintf("submission list not found for %s (selector %q)", e.Conference, e.Selector)
}

func (e *ListNotFoundError) Unwrap() error {
	return e.Err
}
