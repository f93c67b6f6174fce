package helpers

// Int64Ptr converts an ID to a pointer.
// If the value is 0, returns nil.
func Int64Ptr(i int64) *int64 {
	if i == 0 {
		return nil
	}
	return &i
}
