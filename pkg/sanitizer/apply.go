package sanitizer

// Apply folds transforms over value from left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose stores a transform chain for repeated use.
// Preferred over repeated Apply calls when the same chain runs on every call.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
