// ABOUTME: Sentinel errors for skipped measurement passes
// ABOUTME: None of these escape the controller; they are logged and the pass retried on the next trigger

package overflow

import "errors"

var (
	// ErrContainerDetached means the container has no width yet.
	ErrContainerDetached = errors.New("container not attached")

	// ErrMoreDetached means the more indicator has not been rendered yet.
	ErrMoreDetached = errors.New("more indicator not attached")

	// ErrItemUnmeasured means an item has no rendered extent yet.
	ErrItemUnmeasured = errors.New("item not measured")
)
