package result

import "errors"

// All converts a slice of Results into a single Result containing every
// value in input order. The first Err encountered wins and is returned
// unchanged; later elements are not inspected. An empty slice yields Ok of
// an empty, independently owned slice.
//
// Example:
//
//	res := result.All([]result.Result[int]{loadA(), loadB()})
func All[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Any returns the first Ok encountered in input order, unchanged; later
// elements are not inspected. When every input is Err, the errors are
// aggregated in input order via errors.Join and returned as a single Err.
// An empty slice yields Err, since no Ok exists.
//
// Example:
//
//	res := result.Any([]result.Result[string]{primary(), mirror()})
func Any[T any](results []Result[T]) Result[T] {
	errs := make([]error, 0, len(results))
	for _, r := range results {
		if r.err == nil {
			return r
		}
		errs = append(errs, r.err)
	}
	if len(errs) == 0 {
		return Err[T](errors.New("result: Any of no results"))
	}
	return Err[T](errors.Join(errs...))
}

// Fold reduces items left to right through a fallible folder, starting from
// init. Each step receives the running accumulator, the element and its
// index, and returns a Result: Err stops folding immediately and becomes the
// overall return value, remaining elements never visited; Ok feeds the next
// step. Exhausting the slice yields Ok of the final accumulator. Fold is
// FlatMap-chained reduction: identical to starting with Ok(init) and binding
// each step in turn.
//
// Example:
//
//	total := result.Fold(orders, 0, func(sum int, o Order, _ int) result.Result[int] {
//		if o.Amount < 0 {
//			return result.Err[int](errors.New("negative amount"))
//		}
//		return result.Ok(sum + o.Amount)
//	})
func Fold[E any, A any](items []E, init A, folder func(acc A, item E, index int) Result[A]) Result[A] {
	acc := init
	for i, item := range items {
		step := folder(acc, item, i)
		if step.err != nil {
			return step
		}
		acc = step.value
	}
	return Ok(acc)
}

// Traverse maps input values to Results and aggregates them like All,
// failing fast on the first error without visiting later items.
//
// Example:
//
//	res := result.Traverse(ids, func(id int) result.Result[User] {
//		return loadUser(id)
//	})
func Traverse[A any, B any](items []A, fn func(A) Result[B]) Result[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if res.err != nil {
			return Err[[]B](res.err)
		}
		values = append(values, res.value)
	}
	return Ok(values)
}

// Collect gathers the successful values from the provided Results, ignoring
// failures. The returned slice never shares a backing array with inputs.
//
// Example:
//
//	values := result.Collect([]result.Result[int]{result.Ok(1), result.Err[int](err)})
func Collect[T any](results []Result[T]) []T {
	if len(results) == 0 {
		return []T{}
	}
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err == nil {
			values = append(values, r.value)
		}
	}
	return values
}

// Partition splits the input slice into successful values and collected
// errors, both in input order.
//
// Example:
//
//	vals, errs := result.Partition(results)
func Partition[T any](results []Result[T]) ([]T, []error) {
	if len(results) == 0 {
		return []T{}, []error{}
	}
	values := make([]T, 0, len(results))
	errs := make([]error, 0, len(results))
	for _, r := range results {
		if r.err == nil {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return values, errs
}

// Zip2 combines two results of differing value types into one containing a
// pair, failing with the first Err in argument order.
//
// Example:
//
//	combined := result.Zip2(loadUser(), loadProfile())
func Zip2[A any, B any](ra Result[A], rb Result[B]) Result[Tuple2[A, B]] {
	if ra.err != nil {
		return Err[Tuple2[A, B]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple2[A, B]](rb.err)
	}
	return Ok(Tuple2[A, B]{First: ra.value, Second: rb.value})
}

// Zip3 combines three results into one containing a triple, failing with the
// first Err in argument order.
//
// Example:
//
//	combined := result.Zip3(loadUser(), loadProfile(), loadSettings())
func Zip3[A any, B any, C any](ra Result[A], rb Result[B], rc Result[C]) Result[Tuple3[A, B, C]] {
	if ra.err != nil {
		return Err[Tuple3[A, B, C]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple3[A, B, C]](rb.err)
	}
	if rc.err != nil {
		return Err[Tuple3[A, B, C]](rc.err)
	}
	return Ok(Tuple3[A, B, C]{First: ra.value, Second: rb.value, Third: rc.value})
}

// Tuple2 represents a pair of values.
//
// Example:
//
//	p := result.Tuple2[int, string]{First: 1, Second: "a"}
type Tuple2[A any, B any] struct {
	First  A
	Second B
}

// Tuple3 represents three values.
//
// Example:
//
//	t := result.Tuple3[int, string, bool]{First: 1, Second: "a", Third: true}
type Tuple3[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}
