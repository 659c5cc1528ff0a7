// Package ndarray provides the core n-dimensional array type for MiniNumPy.
package ndarray

// DataType represents the runtime element type of an array.
type DataType int

// Supported data types.
//
// Undefined is only carried by size-zero arrays built from empty sequences.
const (
	Undefined DataType = iota
	Int64
	Float64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Undefined:
		return "undefined"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the data type holds numbers.
func (dt DataType) IsNumeric() bool {
	return dt == Int64 || dt == Float64
}

// promote returns the common data type of two operands.
// Undefined yields to the other operand; any Float64 operand wins.
func promote(a, b DataType) DataType {
	switch {
	case a == Undefined:
		return b
	case b == Undefined:
		return a
	case a == Float64 || b == Float64:
		return Float64
	default:
		return Int64
	}
}
