package pipe_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-ext-utils/option"
	"github.com/hasbyte1/go-ext-utils/pipe"
)

func TestThrush(t *testing.T) {
	assert.Equal(t, "42", pipe.Thrush(42, strconv.Itoa))
}

func TestTap(t *testing.T) {
	var sb strings.Builder
	got := pipe.Tap("bar", func(s *string) {
		sb.WriteString(*s)
		sb.WriteString(*s)
		*s = "mutated"
	})
	assert.Equal(t, "bar", got)
	assert.Equal(t, "barbar", sb.String())
}

func TestWhen(t *testing.T) {
	isFoo := func(s string) bool { return s == "foo" }
	assert.True(t, pipe.When("bar", isFoo).IsNone())
	assert.Equal(t, option.Some("foobar"),
		option.Map(pipe.When("foo", isFoo), func(s string) string { return s + "bar" }))
}

func TestWhenRef(t *testing.T) {
	foo := "foo"
	got := pipe.WhenRef(&foo, func(s *string) bool { return *s == "foo" })
	p, ok := got.Get()
	assert.True(t, ok)
	assert.Same(t, &foo, p)

	assert.True(t, pipe.WhenRef(&foo, func(s *string) bool { return *s == "bar" }).IsNone())
}
