package safecast

import "golang.org/x/exp/constraints"

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type ISignedInteger interface {
	constraints.Signed
}

// IUnsignedInteger is an alias for all unsigned integers: uint, uint8, uint16, uint32, uint64 and uintptr types.
type IUnsignedInteger interface {
	constraints.Unsigned
}

// IInteger is an alias for the all unsigned and signed integers
type IInteger interface {
	constraints.Integer
}

// IFloat is an alias for the float32 and float64 types.
type IFloat interface {
	constraints.Float
}

// INumber is an alias for all integers and floats
type INumber interface {
	IInteger | IFloat
}

// IConvertable is an alias for everything that can be converted
type IConvertable interface {
	INumber
}
