package safecast

import "math"

// ToInt attempts to convert any [IConvertable] value to an int.
// If the conversion results in a value outside the range of an int,
// the closest boundary value will be returned. NaN is converted to 0.
func ToInt[C IConvertable](i C) int {
	return saturate[C, int](i, math.MinInt, math.MaxInt)
}

// ToUint attempts to convert any [IConvertable] value to an uint.
// Negative values are converted to 0.
func ToUint[C IConvertable](i C) uint {
	return saturate[C, uint](i, 0, math.MaxUint)
}

// ToInt32 attempts to convert any [IConvertable] value to an int32.
// If the conversion results in a value outside the range of an int32,
// the closest boundary value will be returned.
func ToInt32[C IConvertable](i C) int32 {
	return saturate[C, int32](i, math.MinInt32, math.MaxInt32)
}

// ToUint32 attempts to convert any [IConvertable] value to an uint32.
func ToUint32[C IConvertable](i C) uint32 {
	return saturate[C, uint32](i, 0, math.MaxUint32)
}

// ToInt64 attempts to convert any [IConvertable] value to an int64.
// If the conversion results in a value outside the range of an int64,
// the closest boundary value will be returned.
func ToInt64[C IConvertable](i C) int64 {
	return saturate[C, int64](i, math.MinInt64, math.MaxInt64)
}

// ToUint64 attempts to convert any [IConvertable] value to an uint64.
func ToUint64[C IConvertable](i C) uint64 {
	return saturate[C, uint64](i, 0, math.MaxUint64)
}

// ToFloat64 converts any [IConvertable] value to a float64. Large integers may lose precision.
func ToFloat64[C IConvertable](i C) float64 {
	return float64(i)
}
