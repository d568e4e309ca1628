package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-ext-utils/option"
)

func TestBoolHelpers(t *testing.T) {
	calls := 0
	fn := func() int { calls++; return 1 }

	assert.True(t, option.Then(false, fn).IsNone())
	assert.Equal(t, 0, calls)
	assert.Equal(t, option.Some(1), option.Then(true, fn))
	assert.Equal(t, 1, calls)

	assert.Equal(t, option.Some("x"), option.ThenSome(true, "x"))
	assert.True(t, option.ThenSome(false, "x").IsNone())
}

func TestThenAnd(t *testing.T) {
	some := func() option.Option[int] { return option.Some(1) }
	none := func() option.Option[int] { return option.None[int]() }

	assert.Equal(t, option.Some(1), option.ThenAnd(true, some))
	assert.True(t, option.ThenAnd(true, none).IsNone())
	assert.True(t, option.ThenAnd(false, some).IsNone())
}

func TestTryThen(t *testing.T) {
	got, err := option.TryThen(true, func() (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, option.Some(2), got)

	got, err = option.TryThen(false, func() (int, error) { return 0, errBoom })
	require.NoError(t, err)
	assert.True(t, got.IsNone())

	_, err = option.TryThen(true, func() (int, error) { return 0, errBoom })
	assert.ErrorIs(t, err, errBoom)
}

func TestTryThenAnd(t *testing.T) {
	got, err := option.TryThenAnd(true, func() (option.Option[int], error) {
		return option.None[int](), nil
	})
	require.NoError(t, err)
	assert.True(t, got.IsNone())

	got, err = option.TryThenAnd(true, func() (option.Option[int], error) {
		return option.Some(3), nil
	})
	require.NoError(t, err)
	assert.Equal(t, option.Some(3), got)

	_, err = option.TryThenAnd(true, func() (option.Option[int], error) {
		return option.None[int](), errBoom
	})
	assert.ErrorIs(t, err, errBoom)
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, option.Some("a"), option.NonEmptyString("a"))
	assert.True(t, option.NonEmptyString("").IsNone())

	assert.Equal(t, option.Some([]int{1}), option.NonEmptySlice([]int{1}))
	assert.True(t, option.NonEmptySlice([]int{}).IsNone())
	assert.True(t, option.NonEmptySlice[[]int](nil).IsNone())

	assert.True(t, option.NonEmptyMap(map[string]int{"a": 1}).IsSome())
	assert.True(t, option.NonEmptyMap(map[string]int{}).IsNone())

	assert.True(t, option.NonEmptyStringOption(option.Some("")).IsNone())
	assert.Equal(t, option.Some("x"), option.NonEmptyStringOption(option.Some("x")))
	assert.True(t, option.NonEmptyStringOption(option.None[string]()).IsNone())

	assert.True(t, option.NonEmptySliceOption(option.Some([]byte{})).IsNone())
	assert.True(t, option.NonEmptySliceOption(option.Some([]byte("x"))).IsSome())
}
