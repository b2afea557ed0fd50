package patch

// Apply writes *ptr into dst when ptr is set and reports whether it did.
func Apply[T any](dst *T, ptr *T) bool {
	if ptr == nil {
		return false
	}
	*dst = *ptr
	return true
}

// Any reports whether at least one field of a patch is present.
func Any(present ...bool) bool {
	for _, p := range present {
		if p {
			return true
		}
	}
	return false
}
