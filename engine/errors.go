package engine

import "errors"

var (
	// ErrNoControlledEntity means no avatar exists; passes that need one skip the frame
	ErrNoControlledEntity = errors.New("no controlled entity")

	// ErrMultipleControlledEntities means more than one avatar exists; setup must fail
	ErrMultipleControlledEntities = errors.New("multiple controlled entities")

	// ErrVisualHandleMissing means a fixture has no material to write brightness into
	ErrVisualHandleMissing = errors.New("fixture has no visual handle")
)
