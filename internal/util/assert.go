package assert

import "log"

// Success returns v, aborting the process when err is non-nil. For
// writes that cannot reasonably fail.
func Success[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}
