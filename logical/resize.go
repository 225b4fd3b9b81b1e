package logical

import (
	"strconv"

	"github.com/casualjim/herald"
)

var resizeType = herald.NewLazy[ResizeHandler]("ResizeEvent")

// ResizeHandler is notified when its source is resized.
type ResizeHandler interface {
	OnResize(event *ResizeEvent) error
}

// ResizeHandlerFunc adapts a function to ResizeHandler.
type ResizeHandlerFunc func(event *ResizeEvent) error

func (f ResizeHandlerFunc) OnResize(event *ResizeEvent) error {
	return f(event)
}

// ResizeEvent is fired when the event source is resized.
type ResizeEvent struct {
	width  int
	height int
}

// ResizeType returns the token of the resize kind, minting it on first use.
func ResizeType() *herald.Type[ResizeHandler] {
	return resizeType.Get()
}

// AddResizeHandler registers handler for resize events fired from the scope.
func AddResizeHandler(scope *herald.Scope, handler ResizeHandler) herald.Registration {
	return herald.AddScoped(scope, ResizeType(), handler)
}

// FireResize fires a resize event from the scope.
func FireResize(scope *herald.Scope, width, height int) error {
	if resizeType.Peek() == nil {
		return nil
	}
	return herald.FireFrom[ResizeHandler](scope, &ResizeEvent{width: width, height: height})
}

func (e *ResizeEvent) AssociatedType() *herald.Type[ResizeHandler] {
	return resizeType.Peek()
}

func (e *ResizeEvent) Dispatch(handler ResizeHandler) error {
	return handler.OnResize(e)
}

func (e *ResizeEvent) DebugString() string {
	return herald.KindString(e) + " width = " + strconv.Itoa(e.width) + " height =" + strconv.Itoa(e.height)
}

// Width returns the new width.
func (e *ResizeEvent) Width() int {
	return e.width
}

// Height returns the new height.
func (e *ResizeEvent) Height() int {
	return e.height
}
