// Package flock provides cross-platform file locking utilities.
//
// It exposes exclusive, non-blocking file locks that work on both Unix
// and Windows systems. The store uses these to serialize concurrent
// taskdeck invocations around the load-mutate-save cycle.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // Lock not acquired - file is in use
//	}
//	defer flock.Unlock(file.Fd())
package flock
