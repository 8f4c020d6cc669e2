package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPop_Normal(t *testing.T) {
	d := newFoo()

	v, err := d.Pop("foo")
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	assert.False(t, d.Has("foo"))

	_, err = d.Pop("foo")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPop_Required(t *testing.T) {
	d := newFoo()

	_, err := d.Pop("bar", Required[any](true))
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := d.Pop("bar", Required[any](false))
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.True(t, d.Has("foo"))
}

func TestPop_Default(t *testing.T) {
	d := newFoo()

	v, err := Pop(d, "bar", WithDefault("default"))
	require.NoError(t, err)
	assert.Equal(t, "default", v)

	v, err = Pop(d, "bar", WithDefault("default"), Required[string](false))
	require.NoError(t, err)
	assert.Equal(t, "default", v)

	f, err := Pop(d, "bar", WithDefault(3.14), Required[float64](false))
	require.NoError(t, err)
	assert.InDelta(t, 3.14, f, 0)
	assert.True(t, d.Has("foo"))
}

func TestPop_DefaultFactory(t *testing.T) {
	d := newFoo()
	calls := 0
	factory := func() string {
		calls++
		return "default"
	}

	v, err := Pop(d, "foo", WithDefaultFactory(factory))
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	assert.Equal(t, 0, calls)
	assert.False(t, d.Has("foo"))

	v, err = Pop(d, "bar", WithDefaultFactory(factory))
	require.NoError(t, err)
	assert.Equal(t, "default", v)
	assert.Equal(t, 1, calls)

	v, err = Pop(d, "bar", WithDefaultFactory(factory), Required[string](false))
	require.NoError(t, err)
	assert.Equal(t, "default", v)
	assert.Equal(t, 2, calls)
}

func TestPop_DefaultRequired(t *testing.T) {
	d := newFoo()

	v, err := Pop(d, "foo", WithDefault("default"), Required[string](true))
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	assert.False(t, d.Has("foo"))

	_, err = d.Pop("bar", WithDefault[any](3.14), Required[any](true))
	assert.ErrorIs(t, err, ErrNotFound)

	v, err = Pop(d, "bar", WithDefault("default"), Required[string](false))
	require.NoError(t, err)
	assert.Equal(t, "default", v)
}

func TestPop_DefaultFactoryRequired(t *testing.T) {
	d := newFoo()
	factory := func() string { return "default" }

	v, err := Pop(d, "foo", WithDefaultFactory(factory), Required[string](true))
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	assert.False(t, d.Has("foo"))

	_, err = Pop(d, "bar", WithDefaultFactory(factory), Required[string](true))
	assert.ErrorIs(t, err, ErrNotFound)

	v, err = Pop(d, "bar", WithDefaultFactory(factory), Required[string](false))
	require.NoError(t, err)
	assert.Equal(t, "default", v)
}

func TestPop_WithTypeMissingKey(t *testing.T) {
	d := newFoo()

	_, err := Pop(d, "bar", WithType(parseInt))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Pop(d, "bar", WithType(parseIntPlusOne))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPop_FailedConversionKeepsKey(t *testing.T) {
	d := newFoo()

	for range 2 {
		_, err := Pop(d, "foo", WithType(mustBeHello), Required[int](true))
		require.ErrorIs(t, err, ErrConversion)
		assert.ErrorIs(t, err, errNotHello)
		assert.Equal(t, "42", d["foo"])
	}

	for range 2 {
		v, err := Pop(d, "foo", WithType(mustBeHello), Required[int](false))
		require.NoError(t, err)
		assert.Equal(t, 0, v)
		assert.Equal(t, "42", d["foo"])
	}

	// Required by default: no fallback was given.
	_, err := Pop(d, "foo", WithType(mustBeHello))
	assert.ErrorIs(t, err, ErrConversion)
	assert.True(t, d.Has("foo"))
}

func TestPop_WithTypeDefault(t *testing.T) {
	d := newFoo()

	v, err := Pop(d, "bar", WithDefault(-1), WithType(parseInt))
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	v, err = Pop(d, "foo", WithDefault(-1), WithType(parseIntPlusOne))
	require.NoError(t, err)
	assert.Equal(t, 43, v)
	assert.False(t, d.Has("foo"))
}

func TestPop_WithTypeDefaultRequired(t *testing.T) {
	d := newFoo()

	_, err := Pop(d, "bar", WithDefault(-1), WithType(parseInt), Required[int](true))
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := Pop(d, "foo", WithDefault(-1), WithType(mustBeHello), Required[int](false))
	require.NoError(t, err)
	assert.Equal(t, -1, v)
	assert.Equal(t, "42", d["foo"])

	_, err = Pop(d, "foo", WithDefault(-1), WithType(mustBeHello), Required[int](true))
	assert.ErrorIs(t, err, errNotHello)
	assert.Equal(t, "42", d["foo"])

	_, err = d.Pop("foo")
	require.NoError(t, err)

	v, err = Pop(d, "foo", WithDefault(-1), WithType(mustBeHello), Required[int](false))
	require.NoError(t, err)
	assert.Equal(t, -1, v)
}

func TestPop_WithTypeDefaultFactoryRequired(t *testing.T) {
	d := newFoo()
	factory := func() int { return -1 }

	_, err := Pop(d, "bar", WithDefaultFactory(factory), WithType(parseInt), Required[int](true))
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := Pop(d, "foo", WithDefaultFactory(factory), WithType(mustBeHello), Required[int](false))
	require.NoError(t, err)
	assert.Equal(t, -1, v)
	assert.True(t, d.Has("foo"))

	_, err = Pop(d, "foo", WithDefaultFactory(factory), WithType(mustBeHello), Required[int](true))
	assert.ErrorIs(t, err, ErrConversion)
	assert.True(t, d.Has("foo"))
}

func TestPop_NullValue(t *testing.T) {
	d := From(map[string]any{"foo": nil})

	_, err := Pop(d, "foo", WithType(parseInt), Required[int](true))
	assert.ErrorIs(t, err, ErrRequiredNull)
	assert.True(t, d.Has("foo"))

	// Required by default: no fallback was given.
	_, err = Pop(d, "foo", WithType(parseInt))
	assert.ErrorIs(t, err, ErrRequiredNull)
	assert.True(t, d.Has("foo"))

	v, err := Pop(d, "foo", WithType(parseInt), Required[int](false))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.False(t, d.Has("foo"))
}

func TestPop_MissingWithType(t *testing.T) {
	d := New[string]()

	_, err := Pop(d, "foo", WithType(parseInt), Required[int](true))
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := Pop(d, "foo", WithType(parseInt), Required[int](false))
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = Pop(d, "foo", WithType(parseInt))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPop_DefaultMatchRemovesWithoutConverting(t *testing.T) {
	d := From(map[string]any{"foo": "default"})
	conv := new(MockConverter)

	v, err := d.Pop("foo", WithDefault[any]("default"), WithType(conv.Convert))
	require.NoError(t, err)
	assert.Equal(t, "default", v)
	assert.False(t, d.Has("foo"))
	conv.AssertNotCalled(t, "Convert", mock.Anything)
}

func TestPop_DefaultAndDefaultFactory(t *testing.T) {
	d := newFoo()
	calls := 0
	factory := func() string {
		calls++
		return "default_factory"
	}

	v, err := Pop(d, "foo", WithDefault("default"), WithDefaultFactory(factory), Required[string](true))
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	assert.False(t, d.Has("foo"))
	assert.Equal(t, 0, calls)

	v, err = Pop(d, "bar", WithDefault("default"), WithDefaultFactory(factory), Required[string](false))
	require.NoError(t, err)
	assert.Equal(t, "default", v)
	assert.False(t, d.Has("bar"))
	assert.Equal(t, 0, calls)
}

func TestPop_PackageExample(t *testing.T) {
	d := From(map[string]any{"foo": "42", "bar": "blub"})

	foo, err := Pop(d, "foo", WithType(parseInt))
	require.NoError(t, err)
	assert.Equal(t, 42, foo)
	assert.False(t, d.Has("foo"))

	bar, err := Pop(d, "bar", WithDefault(-1), WithType(parseInt))
	require.NoError(t, err)
	assert.Equal(t, -1, bar)
	assert.Equal(t, "blub", d["bar"])
}

func TestPop_KeyRemovedByConverter(t *testing.T) {
	d := newFoo()

	v, err := Pop(d, "foo", WithType(func(v any) (int, error) {
		delete(d, "foo")
		return parseInt(v)
	}))
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.False(t, d.Has("foo"))
}
