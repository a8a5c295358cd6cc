package result

import "fmt"

// PanicError carries a recovered panic value that was not itself an error.
// The raised object is preserved unchanged in Value so callers can inspect
// it after Wrap converts the panic into an Err.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("result: caught panic: %v", e.Value)
}

// Wrap invokes fn and converts its outcome into a Result: a normal return
// becomes Ok, a panic becomes Err. A recovered value that already is an
// error becomes the payload as-is; any other value is preserved unchanged
// inside a *PanicError. Wrap catches exactly one level: it never re-invokes
// fn and never unwraps Results raised as panic values.
//
// This is the single sanctioned boundary for converting panic-style failure
// into the Result model.
//
// Example:
//
//	res := result.Wrap(func() []byte {
//		return parseOrPanic(raw)
//	})
func Wrap[T any](fn func() T) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			if err, ok := v.(error); ok {
				res = Err[T](err)
				return
			}
			res = Err[T](&PanicError{Value: v})
		}
	}()
	return Ok(fn())
}
