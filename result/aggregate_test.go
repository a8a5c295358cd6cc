package result_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallible-go/fallible/result"
)

func TestAllCollectsInOrder(t *testing.T) {
	res := result.All([]result.Result[int]{result.Ok(1), result.Ok(2), result.Ok(3)})
	require.True(t, res.IsOk())
	assert.Equal(t, []int{1, 2, 3}, res.UnwrapOr(nil))
}

func TestAllFirstErrorWins(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	res := result.All([]result.Result[int]{
		result.Ok(1),
		result.Err[int](first),
		result.Ok(3),
		result.Err[int](second),
	})
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), first)
	assert.NotErrorIs(t, res.Err(), second)
}

func TestAllEmpty(t *testing.T) {
	res := result.All([]result.Result[string]{})
	require.True(t, res.IsOk())
	assert.Empty(t, res.UnwrapOr(nil))
}

func TestAnyFirstOkWins(t *testing.T) {
	res := result.Any([]result.Result[int]{
		result.Err[int](errors.New("a")),
		result.Ok(2),
		result.Err[int](errors.New("c")),
		result.Ok(4),
	})
	require.True(t, res.IsOk())
	assert.Equal(t, 2, res.UnwrapOr(0))
}

func TestAnyAllErrorsCollectedInOrder(t *testing.T) {
	first := errors.New("a")
	second := errors.New("b")
	res := result.Any([]result.Result[int]{
		result.Err[int](first),
		result.Err[int](second),
	})
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), first)
	assert.ErrorIs(t, res.Err(), second)
	assert.Less(t,
		strings.Index(res.Err().Error(), "a"),
		strings.Index(res.Err().Error(), "b"),
		"errors should be reported in input order")
}

func TestAnyEmpty(t *testing.T) {
	res := result.Any([]result.Result[int]{})
	assert.True(t, res.IsErr())
}

func TestFoldStopsAtFirstError(t *testing.T) {
	calls := 0
	res := result.Fold([]int{1, 2, 3}, 0, func(acc, v, _ int) result.Result[int] {
		calls++
		if v == 2 {
			return result.Err[int](errors.New("stop"))
		}
		return result.Ok(acc + v)
	})
	require.True(t, res.IsErr())
	assert.EqualError(t, res.Err(), "stop")
	assert.Equal(t, 2, calls, "third element's folder call must never occur")
}

func TestFoldAccumulates(t *testing.T) {
	res := result.Fold([]int{1, 2, 3}, 0, func(acc, v, _ int) result.Result[int] {
		return result.Ok(acc + v)
	})
	require.True(t, res.IsOk())
	assert.Equal(t, 6, res.UnwrapOr(0))
}

func TestFoldPassesIndexes(t *testing.T) {
	indexes := []int{}
	res := result.Fold([]string{"a", "b", "c"}, "", func(acc, v string, i int) result.Result[string] {
		indexes = append(indexes, i)
		return result.Ok(acc + v)
	})
	assert.Equal(t, "abc", res.UnwrapOr(""))
	assert.Equal(t, []int{0, 1, 2}, indexes)
}

func TestFoldEmptyInput(t *testing.T) {
	res := result.Fold([]int{}, 42, func(acc, _ int, _ int) result.Result[int] {
		t.Fatal("folder must not run on empty input")
		return result.Ok(acc)
	})
	require.True(t, res.IsOk())
	assert.Equal(t, 42, res.UnwrapOr(0))
}

func TestTraverseShortCircuits(t *testing.T) {
	calls := 0
	res := result.Traverse([]int{1, 2, 3}, func(v int) result.Result[int] {
		calls++
		if v == 2 {
			return result.Err[int](errors.New("stop"))
		}
		return result.Ok(v * 2)
	})
	require.True(t, res.IsErr())
	assert.Equal(t, 2, calls)
}

func TestCollectAndPartition(t *testing.T) {
	boom := errors.New("boom")
	results := []result.Result[int]{result.Ok(1), result.Err[int](boom), result.Ok(2)}

	assert.Equal(t, []int{1, 2}, result.Collect(results))

	values, errs := result.Partition(results)
	assert.Equal(t, []int{1, 2}, values)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)
}

func TestZip(t *testing.T) {
	boom := errors.New("boom")

	pair := result.Zip2(result.Ok(1), result.Ok("a"))
	require.True(t, pair.IsOk())
	tuple := pair.UnwrapOr(result.Tuple2[int, string]{})
	assert.Equal(t, 1, tuple.First)
	assert.Equal(t, "a", tuple.Second)

	assert.ErrorIs(t, result.Zip2(result.Err[int](boom), result.Ok("a")).Err(), boom)

	triple := result.Zip3(result.Ok(1), result.Ok("a"), result.Ok(true))
	require.True(t, triple.IsOk())
	assert.True(t, triple.UnwrapOr(result.Tuple3[int, string, bool]{}).Third)
	assert.ErrorIs(t, result.Zip3(result.Ok(1), result.Ok("a"), result.Err[bool](boom)).Err(), boom)
}
