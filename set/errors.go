package set

import "errors"

var (
	ErrEmpty      = errors.New("set is empty")
	ErrUnhashable = errors.New("item of unhashable type")
)
