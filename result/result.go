// Package result provides an immutable success/error disjoint union for
// composing fallible computations without treating errors as control flow.
//
// Example:
//
//	res := result.Ok("done")
//	value, err := res.Unwrap()
//	_ = value
//
// A Result is always exactly one of two variants, Ok or Err, fixed at
// construction. Combinators uphold Functor/Monad laws (see
// laws_result_test.go) so transformations stay predictable under composition.
package result

import "errors"

// Result represents the outcome of a computation that may succeed with a
// value or fail with an error. Every combinator returns a new Result; an
// existing one is never mutated. It never panics except in the UnsafeUnwrap,
// Expect and UnwrapBy extraction paths.
//
// Example:
//
//	res := result.Ok("token")
//	value, err := res.Unwrap()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(value)
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
//
// Example:
//
//	res := result.Ok(200)
//	fmt.Println(res.IsOk()) // true
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. Passing a nil error automatically converts
// it into a descriptive placeholder so the Ok/Err invariant cannot be broken.
//
// Example:
//
//	res := result.Err[int](errors.New("boom"))
//	_, err := res.Unwrap()
//	fmt.Println(err)
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	value, err := repo.Load()
//	res := result.FromTuple(value, err)
//	return res
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result represents success.
//
// Example:
//
//	if res.IsOk() {
//		fmt.Println("success")
//	}
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
//
// Example:
//
//	if res.IsErr() {
//		log.Println(res.Err())
//	}
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// IsOkAnd reports whether the Result is Ok and its value satisfies predicate.
// On Err the predicate is never invoked.
//
// Example:
//
//	if res.IsOkAnd(func(code int) bool { return code < 300 }) {
//		fmt.Println("not a redirect")
//	}
func (r Result[T]) IsOkAnd(predicate func(T) bool) bool {
	return r.err == nil && predicate(r.value)
}

// IsErrAnd reports whether the Result is Err and its error satisfies
// predicate. On Ok the predicate is never invoked.
//
// Example:
//
//	if res.IsErrAnd(func(err error) bool { return errors.Is(err, ErrNotFound) }) {
//		return cached
//	}
func (r Result[T]) IsErrAnd(predicate func(error) bool) bool {
	return r.err != nil && predicate(r.err)
}

// Err returns the stored error, if any.
//
// Example:
//
//	if err := res.Err(); err != nil {
//		return err
//	}
func (r Result[T]) Err() error {
	return r.err
}

// UnsafeUnwrap returns the underlying value or panics with the stored error
// itself when the Result is Err. Callers that want a descriptive panic should
// use Expect; callers that want recoverable handling should use UnwrapOr,
// Match or FlatMap.
//
// Example:
//
//	func mustConfig(res result.Result[Config]) Config {
//		return res.UnsafeUnwrap()
//	}
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// UnwrapBy returns the value when Ok. On Err it invokes unwrapper with the
// stored error; unwrapper must not return normally (it is expected to panic
// or terminate the process). An unwrapper that returns anyway violates the
// contract and UnwrapBy panics with a descriptive error.
//
// Example:
//
//	cfg := res.UnwrapBy(func(err error) {
//		log.Fatalf("config unavailable: %v", err)
//	})
func (r Result[T]) UnwrapBy(unwrapper func(error)) T {
	if r.err != nil {
		unwrapper(r.err)
		panic(errors.New("result: UnwrapBy handler returned normally on Err"))
	}
	return r.value
}

// Expect returns the value or panics with a new error carrying msg when the
// Result is Err. Unlike UnsafeUnwrap, the original error payload is discarded
// in favor of the caller's message. An empty msg falls back to a generic one.
//
// Example:
//
//	port := res.Expect("listen port must be configured")
func (r Result[T]) Expect(msg string) T {
	if r.err != nil {
		if msg == "" {
			msg = "result: Expect on Err"
		}
		panic(errors.New(msg))
	}
	return r.value
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// ToTuple exposes the underlying (value, error) pair, matching idiomatic Go
// callers that expect tuple returns.
//
// Example:
//
//	value, err := res.ToTuple()
func (r Result[T]) ToTuple() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
//
// Example:
//
//	code := res.UnwrapOr(http.StatusInternalServerError)
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback using fn when the Result is an error.
//
// Example:
//
//	value := res.UnwrapOrElse(func(err error) string {
//		return "error: " + err.Error()
//	})
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// Union returns whatever payload the Result carries, the value on Ok or the
// error on Err, typed as any. It never fails but loses variant information;
// use it only when the caller treats both payloads uniformly.
//
// Example:
//
//	fmt.Println(res.Union())
func (r Result[T]) Union() any {
	if r.err != nil {
		return r.err
	}
	return r.value
}

// Map transforms the value on success. On Err the function is never invoked
// and the failure propagates unchanged. fn must not fail; when the
// transformation itself can fail, use FlatMap.
//
// Example:
//
//	length := result.Map(res, func(s string) int { return len(s) })
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the stored error when present, passing Ok through
// unchanged.
//
// Example:
//
//	res := result.MapErr(load(), func(err error) error {
//		return fmt.Errorf("wrap: %w", err)
//	})
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil {
		return r
	}
	if r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// FlatMap chains a Result-returning computation, flattening the output:
// the Result produced by fn is returned directly, never nested. The first
// error propagates and fn is short-circuited.
//
// Example:
//
//	res := result.FlatMap(loadUser(), fetchProfile)
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err == nil {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// FlatMapErr chains error handlers, allowing recovery paths that still
// return Results. Ok passes through unchanged and fn is never invoked.
//
// Example:
//
//	recovered := result.FlatMapErr(load(), func(err error) result.Result[Config] {
//		return loadFromFallback()
//	})
func FlatMapErr[T any](r Result[T], fn func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	if fn == nil {
		return r
	}
	return fn(r.err)
}

// Recover converts an error Result into success using fn while keeping
// success values untouched.
//
// Example:
//
//	res := result.Recover(loadConfig(), func(err error) Config {
//		return defaultConfig
//	})
func Recover[T any](r Result[T], fn func(error) T) Result[T] {
	if r.err == nil {
		return r
	}
	return Ok(fn(r.err))
}

// Match exhaustively eliminates the Result: exactly one of the two handlers
// runs, receiving the held payload, and its return value is returned
// directly. Every other combinator can be expressed through Match.
//
// Example:
//
//	message := result.Match(res,
//		func(val string) string { return "ok: " + val },
//		func(err error) string { return "failed: " + err.Error() },
//	)
func Match[T any, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Tap executes fn for its side effect when the Result is Ok and returns the
// original Result unchanged, whatever fn does.
//
// Example:
//
//	_ = result.Tap(saveUser(), func(u User) {
//		metrics.Count("user_saved")
//	})
func Tap[T any](r Result[T], fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// TapErr executes fn for its side effect when the Result is Err and returns
// the original Result unchanged.
//
// Example:
//
//	_ = result.TapErr(load(), func(err error) {
//		log.Println("load failed", err)
//	})
func TapErr[T any](r Result[T], fn func(error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}
