// Package literal parses nested number literals such as "[[1, 2], [3, 4.5]]".
//
// Literals use YAML flow syntax, which accepts JSON as well. Integers become
// Int64 scalars, numbers with a fraction or exponent become Float64 scalars,
// and sequences become lists.
package literal

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/mininumpy/mininumpy/internal/ndarray"
)

// Parse parses a literal into a nested value.
func Parse(src string) (ndarray.Value, error) {
	if strings.TrimSpace(src) == "" {
		return ndarray.Value{}, fmt.Errorf("%w: empty literal", ndarray.ErrValue)
	}

	var raw any
	if err := yaml.Unmarshal([]byte(src), &raw); err != nil {
		return ndarray.Value{}, fmt.Errorf("%w: parse literal %q: %v", ndarray.ErrValue, src, err)
	}
	v, err := ndarray.ToValue(raw)
	if err != nil {
		return ndarray.Value{}, fmt.Errorf("literal %q: %w", src, err)
	}
	return v, nil
}

// ParseArray parses a literal and builds an array from it.
func ParseArray(src string, opts ...ndarray.Option) (*ndarray.Array, error) {
	v, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return ndarray.New(v, opts...)
}
