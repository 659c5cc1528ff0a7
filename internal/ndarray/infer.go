package ndarray

import "fmt"

// NumericPolicy decides whether integer and floating-point leaves may share
// one nested sequence.
type NumericPolicy int

const (
	// StrictNumeric rejects any int/float mix with ErrType.
	StrictNumeric NumericPolicy = iota
	// PromoteNumeric unifies int/float mixes to Float64, like NumPy.
	PromoteNumeric
)

// String returns the configuration name of the policy.
func (p NumericPolicy) String() string {
	switch p {
	case StrictNumeric:
		return "strict"
	case PromoteNumeric:
		return "promote"
	default:
		return "unknown"
	}
}

// ParseNumericPolicy parses "strict" or "promote".
func ParseNumericPolicy(s string) (NumericPolicy, error) {
	switch s {
	case "strict", "":
		return StrictNumeric, nil
	case "promote":
		return PromoteNumeric, nil
	default:
		return StrictNumeric, fmt.Errorf("%w: unknown numeric policy %q", ErrValue, s)
	}
}

// InferShape determines the shape and element type of a nested value.
//
// A scalar has shape () and its own dtype. An empty list has shape (0,) and
// dtype Undefined. A non-empty list requires every item to have the same shape
// (else ErrShape) and the same dtype (else ErrType, subject to policy), and
// yields (len, item shape...).
func InferShape(v Value, policy NumericPolicy) (Shape, DataType, error) {
	switch v.kind {
	case kindInt:
		return Shape{}, Int64, nil
	case kindFloat:
		return Shape{}, Float64, nil
	case kindList:
	default:
		return nil, Undefined, fmt.Errorf("%w: cannot infer shape of non-sequence, non-numeric value", ErrType)
	}

	if len(v.items) == 0 {
		return Shape{0}, Undefined, nil
	}

	firstShape, dtype, err := InferShape(v.items[0], policy)
	if err != nil {
		return nil, Undefined, err
	}
	for _, item := range v.items[1:] {
		shape, itemType, err := InferShape(item, policy)
		if err != nil {
			return nil, Undefined, err
		}
		if !shape.Equal(firstShape) {
			return nil, Undefined, fmt.Errorf("%w between sublists: %v vs %v", ErrShape, firstShape, shape)
		}
		if itemType == dtype {
			continue
		}
		if policy == PromoteNumeric && itemType.IsNumeric() && dtype.IsNumeric() {
			dtype = Float64
			continue
		}
		return nil, Undefined, fmt.Errorf("%w between sublists' elements: %s vs %s", ErrType, dtype, itemType)
	}

	result := make(Shape, 0, len(firstShape)+1)
	result = append(result, len(v.items))
	result = append(result, firstShape...)
	return result, dtype, nil
}
