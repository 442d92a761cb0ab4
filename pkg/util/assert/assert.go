package assert

import (
	"errors"
	"math"
	"math/big"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Integers of different
// types (including *big.Int) are compared by value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	fail(t, msg...)
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()

	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	fail(t, msg...)
}

// ErrorAs errors unless err is (or wraps) an error of type E, which is then
// returned.
func ErrorAs[E error](t *testing.T, err error, msg ...any) E {
	t.Helper()

	var target E

	if !errors.As(err, &target) {
		t.Errorf("expected error of type %T, actual: %v", target, err)
		fail(t, msg...)
	}

	return target
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	t.Errorf("condition is false")
	fail(t, msg...)
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if !condition {
		return
	}

	t.Errorf("condition is true")
	fail(t, msg...)
}

func fail(t *testing.T, msg ...any) {
	t.Helper()

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// intEqual returns whether expected and actual are both integers and whether
// they are equal if that is the case.
func intEqual(expected, actual any) bool {
	a, aOk := asBigInt(expected)
	b, bOk := asBigInt(actual)

	return aOk && bOk && a.Cmp(b) == 0
}

// asBigInt tries to convert x to a big integer and specifies if the conversion
// was successful.
func asBigInt(x any) (*big.Int, bool) {
	if y, ok := x.(uint64); ok && y > math.MaxInt64 {
		return new(big.Int).SetUint64(y), true
	}

	switch x := x.(type) {
	case *big.Int:
		return x, x != nil
	case big.Int:
		return &x, true
	case int:
		return big.NewInt(int64(x)), true
	case int8:
		return big.NewInt(int64(x)), true
	case int16:
		return big.NewInt(int64(x)), true
	case int32:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case uint:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint8:
		return big.NewInt(int64(x)), true
	case uint16:
		return big.NewInt(int64(x)), true
	case uint32:
		return big.NewInt(int64(x)), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	}

	return nil, false
}
