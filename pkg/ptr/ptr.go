package ptr

// Ptr returns a pointer to v. Convenient for optional fields in request and
// domain models.
func Ptr[T any](v T) *T {
	return &v
}
