package logical

import (
	"fmt"
	"reflect"

	"github.com/casualjim/herald"
	"github.com/casualjim/herald/pkg/reflectx"
	json "github.com/goccy/go-json"
)

// All value change events share one token, whatever their value type.
// Typed handlers are wrapped on registration, see AddValueChangeHandler.
var valueChangeType = herald.NewLazy[ValueChangeDispatcher]("ValueChangeEvent")

// ValueChangeHandler is notified when the value of its source changes.
type ValueChangeHandler[T any] interface {
	OnValueChange(event *ValueChangeEvent[T]) error
}

// ValueChangeHandlerFunc adapts a function to ValueChangeHandler.
type ValueChangeHandlerFunc[T any] func(event *ValueChangeEvent[T]) error

func (f ValueChangeHandlerFunc[T]) OnValueChange(event *ValueChangeEvent[T]) error {
	return f(event)
}

// ValueChangeDispatcher is the handler capability stored under the value
// change token. It is only implemented by the wrappers AddValueChangeHandler
// creates.
type ValueChangeDispatcher interface {
	dispatchValueChange(event any) error
}

type valueChangeAdapter[T any] struct {
	handler ValueChangeHandler[T]
}

// dispatchValueChange skips events carrying a value of another type: a
// global handler for strings shares the token with sources holding ints.
func (a *valueChangeAdapter[T]) dispatchValueChange(event any) error {
	ev, ok := event.(*ValueChangeEvent[T])
	if !ok {
		return nil
	}
	return a.handler.OnValueChange(ev)
}

// ValueChangeEvent is fired when the value of its source changes.
type ValueChangeEvent[T any] struct {
	value T
}

// ValueChangeType returns the token of the value change kind, minting it on
// first use.
func ValueChangeType() *herald.Type[ValueChangeDispatcher] {
	return valueChangeType.Get()
}

// AddValueChangeHandler registers handler for value change events fired from
// the scope. Events whose value is not a T are not delivered to it.
// Remove the handler through the returned registration.
func AddValueChangeHandler[T any](scope *herald.Scope, handler ValueChangeHandler[T]) herald.Registration {
	if handler == nil {
		panic(herald.ErrNilHandler)
	}
	return herald.AddScoped[ValueChangeDispatcher](scope, ValueChangeType(), &valueChangeAdapter[T]{handler: handler})
}

// FireValueChange fires a value change event carrying value from the scope.
func FireValueChange[T any](scope *herald.Scope, value T) error {
	if valueChangeType.Peek() == nil {
		return nil
	}
	return herald.FireFrom[ValueChangeDispatcher](scope, &ValueChangeEvent[T]{value: value})
}

// FireValueChangeIfNotEqual fires a value change event carrying newValue,
// unless it equals oldValue. Prefer it over comparing the values yourself:
// it handles nil values. See ShouldFireValueChange.
func FireValueChangeIfNotEqual[T any](scope *herald.Scope, oldValue, newValue T) error {
	if !ShouldFireValueChange(scope, oldValue, newValue) {
		return nil
	}
	return herald.FireFrom[ValueChangeDispatcher](scope, &ValueChangeEvent[T]{value: newValue})
}

// ShouldFireValueChange reports whether a change from oldValue to newValue
// is worth an event. It is false when the value change token does not exist
// yet, when both values are nil or identical, and when oldValue is non-nil
// and equal to newValue. Equality uses an Equal(T) bool method when oldValue
// has one, and deep equality for values that are not comparable.
func ShouldFireValueChange[T any](scope *herald.Scope, oldValue, newValue T) bool {
	return valueChangeType.Peek() != nil && !sameValue(oldValue, newValue)
}

func sameValue[T any](oldValue, newValue T) bool {
	o, n := any(oldValue), any(newValue)
	if reflectx.IsNil(o) || reflectx.IsNil(n) {
		return reflectx.IsNil(o) && reflectx.IsNil(n)
	}

	ov := reflect.ValueOf(o)
	if ov.Type() == reflect.TypeOf(n) && ov.Comparable() && o == n {
		return true
	}
	if eq, ok := o.(interface{ Equal(T) bool }); ok {
		return eq.Equal(newValue)
	}
	if ov.Comparable() {
		return false
	}
	return reflect.DeepEqual(o, n)
}

func (e *ValueChangeEvent[T]) AssociatedType() *herald.Type[ValueChangeDispatcher] {
	return valueChangeType.Peek()
}

func (e *ValueChangeEvent[T]) Dispatch(handler ValueChangeDispatcher) error {
	return handler.dispatchValueChange(e)
}

func (e *ValueChangeEvent[T]) DebugString() string {
	b, err := json.Marshal(e.value)
	if err != nil {
		return fmt.Sprintf("%s value = %v", herald.KindString(e), e.value)
	}
	return herald.KindString(e) + " value = " + string(b)
}

// Value returns the new value.
func (e *ValueChangeEvent[T]) Value() T {
	return e.value
}
