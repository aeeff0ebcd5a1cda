// Package patch resolves optional request fields against configured defaults.
package patch

// Coalesce returns *ptr when the field was sent, fallback otherwise.
// An explicit zero value wins over the fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
