package crosshair

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidFormat is returned when a string is not shaped like a share code.
	ErrInvalidFormat = errors.New("invalid share code format")

	// ErrInvalidCode is returned when a well-formed share code does not carry a
	// valid crosshair: the payload overflows the buffer, the checksum does not
	// match, or a decoded field is out of range.
	ErrInvalidCode = errors.New("invalid crosshair code")

	// ErrFieldOutOfRange is matched by every *FieldRangeError.
	ErrFieldOutOfRange = errors.New("field out of range")
)

// FieldRangeError reports a field value outside its closed range [Min, Max].
type FieldRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("%q has to be in range [%s; %s], got %s",
		e.Field, formatBound(e.Min), formatBound(e.Max), formatBound(e.Value))
}

// Is makes errors.Is(err, ErrFieldOutOfRange) report true.
func (e *FieldRangeError) Is(target error) bool {
	return target == ErrFieldOutOfRange
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
