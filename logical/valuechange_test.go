package logical

import (
	"strings"
	"testing"
	"time"

	"github.com/casualjim/herald"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type textBox struct {
	id string
}

type version struct {
	major, minor int
}

func (v *version) Equal(other *version) bool {
	return other != nil && v.major == other.major
}

func recordValues[T any](values *[]T) ValueChangeHandlerFunc[T] {
	return func(e *ValueChangeEvent[T]) error {
		*values = append(*values, e.Value())
		return nil
	}
}

func TestFireValueChangeIfNotEqual(t *testing.T) {
	bus := herald.New()
	scope := bus.Scope(&textBox{"name"})

	var values []any
	AddValueChangeHandler[any](scope, recordValues(&values))

	tests := []struct {
		name      string
		old, new  any
		fired     bool
		wantValue any
	}{
		{"same value", "a", "a", false, nil},
		{"both nil", nil, nil, false, nil},
		{"from nil", nil, "a", true, "a"},
		{"to nil", "a", nil, true, nil},
		{"different values", "a", "b", true, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values = nil
			require.NoError(t, FireValueChangeIfNotEqual[any](scope, tt.old, tt.new))
			if !tt.fired {
				assert.Empty(t, values)
				return
			}
			require.Len(t, values, 1)
			assert.Equal(t, tt.wantValue, values[0])
		})
	}
}

func TestSameValue(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Now()
	v1 := &version{1, 0}

	tests := []struct {
		name string
		same bool
		eval func() bool
	}{
		{"equal strings", true, func() bool { return sameValue("a", "a") }},
		{"different strings", false, func() bool { return sameValue("a", "b") }},
		{"nil pointers", true, func() bool { return sameValue[*int](nil, nil) }},
		{"nil slice and nil", true, func() bool { return sameValue[any]([]int(nil), nil) }},
		{"same pointer", true, func() bool { return sameValue(v1, v1) }},
		{"equal method", true, func() bool { return sameValue(v1, &version{1, 5}) }},
		{"equal method says no", false, func() bool { return sameValue(v1, &version{2, 0}) }},
		{"nil old with equal method", false, func() bool { return sameValue[*version](nil, v1) }},
		{"new nil with equal method", false, func() bool { return sameValue[*version](v1, nil) }},
		{"time in another zone", true, func() bool { return sameValue(now, now.In(loc)) }},
		{"distinct pointers without equal", false, func() bool {
			a, b := 1, 1
			return sameValue(&a, &b)
		}},
		{"equal slices", true, func() bool { return sameValue([]int{1, 2}, []int{1, 2}) }},
		{"different slices", false, func() bool { return sameValue([]int{1}, []int{2}) }},
		{"mixed dynamic types", false, func() bool { return sameValue[any](1, "1") }},
		{"same slice behind any", true, func() bool { return sameValue[any]([]int{1}, []int{1}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, tt.eval())
		})
	}
}

func TestValueChangeTypedHandlers(t *testing.T) {
	bus := herald.New()
	counter := &textBox{"counter"}
	name := &textBox{"name"}

	var strs []string
	var ints []int
	AddValueChangeHandler[string](bus.Scope(nil), recordValues(&strs))
	AddValueChangeHandler[int](bus.Scope(counter), recordValues(&ints))

	require.NoError(t, FireValueChange(bus.Scope(counter), 5))
	require.NoError(t, FireValueChange(bus.Scope(name), "joe"))
	require.NoError(t, FireValueChange(bus.Scope(name), 7))

	assert.Equal(t, []string{"joe"}, strs, "global handler only sees its value type")
	assert.Equal(t, []int{5}, ints, "scoped handler only sees its source")
	assert.Equal(t, 2, bus.HandlerCount(ValueChangeType()))
}

func TestValueChangeRegistration(t *testing.T) {
	bus := herald.New()
	scope := bus.Scope(&textBox{"t"})

	var values []string
	reg := AddValueChangeHandler[string](scope, recordValues(&values))
	require.NoError(t, FireValueChange(scope, "a"))

	reg.RemoveHandler()
	reg.RemoveHandler()
	require.NoError(t, FireValueChange(scope, "b"))
	assert.Equal(t, []string{"a"}, values)
	assert.False(t, bus.IsHandled(ValueChangeType()))

	assert.PanicsWithValue(t, herald.ErrNilHandler, func() {
		AddValueChangeHandler[string](scope, nil)
	})
}

func TestShouldFireValueChange(t *testing.T) {
	bus := herald.New()
	ValueChangeType()
	scope := bus.Scope(nil)

	assert.True(t, ShouldFireValueChange(scope, 1, 2))
	assert.False(t, ShouldFireValueChange(scope, 2, 2))
}

func TestValueChangeDebugString(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	ev := &ValueChangeEvent[payload]{value: payload{Name: "x", Count: 3}}
	s := ev.DebugString()
	require.True(t, strings.HasPrefix(s, "ValueChangeEvent value = "))

	doc := strings.TrimPrefix(s, "ValueChangeEvent value = ")
	assert.Equal(t, "x", gjson.Get(doc, "name").String())
	assert.Equal(t, int64(3), gjson.Get(doc, "count").Int())

	t.Run("not json encodable", func(t *testing.T) {
		ev := &ValueChangeEvent[chan int]{}
		assert.Equal(t, "ValueChangeEvent value = <nil>", ev.DebugString())
	})
}
