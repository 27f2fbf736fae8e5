// Package ptr has the one generic helper Go makes everyone write.
package ptr

// To returns a pointer to v. Useful for optional DTO fields and partial
// updates.
func To[T any](v T) *T {
	return &v
}
