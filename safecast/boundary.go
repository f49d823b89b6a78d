package safecast

func isNaN[C IConvertable](value C) bool {
	// only floats are not equal to themselves
	return value != value //nolint:gocritic
}

func greaterThanUpperBoundary[C1 IConvertable, C2 IConvertable](value C1, upperBoundary C2) (greater bool) {
	if value <= 0 {
		return
	}

	switch f := any(value).(type) {
	case float64:
		greater = f >= float64(upperBoundary)
	case float32:
		greater = float64(f) >= float64(upperBoundary)
	default:
		// as value is positive, any integer fits in an uint64.
		greater = uint64(value) > uint64(upperBoundary)
	}
	return
}

func lessThanLowerBoundary[C1 IConvertable, C2 IConvertable](value C1, lowerBoundary C2) (lower bool) {
	if value >= 0 {
		return
	}

	switch f := any(value).(type) {
	case float64:
		lower = f <= float64(lowerBoundary)
	case float32:
		lower = float64(f) <= float64(lowerBoundary)
	default:
		lower = int64(value) < int64(lowerBoundary)
	}
	return
}

// saturate converts value to R, returning the closest boundary when value does not fit.
// NaN is converted to zero.
func saturate[C IConvertable, R IConvertable](value C, lowerBoundary, upperBoundary R) R {
	if isNaN(value) {
		return 0
	}
	if lessThanLowerBoundary(value, lowerBoundary) {
		return lowerBoundary
	}
	if greaterThanUpperBoundary(value, upperBoundary) {
		return upperBoundary
	}
	return R(value)
}
