package set

import "reflect"

// mayHoldUnhashable reports whether a value of type T can hold,
// somewhere inside it, an interface whose dynamic value is not hashable.
// Using such a value as a map key panics at runtime.
func mayHoldUnhashable[T comparable]() bool {
	return holdsInterface(reflect.TypeFor[T]())
}

func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}

func isHashable[T comparable](item T) bool {
	v := reflect.ValueOf(any(item))
	if !v.IsValid() {
		// nil interface
		return true
	}

	return v.Comparable()
}
