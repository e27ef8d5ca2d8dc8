package pointers

// Ptr lets a literal be used where a pointer is expected.
func Ptr[T any](v T) *T {
	return &v
}
