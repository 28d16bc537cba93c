package jsonext

import "reflect"

// IsAssignableTo reports whether a value of type source may be assigned to a
// variable of type target, following the Go assignability rules implemented by
// reflect.Type.AssignableTo.
// A nil source or target panics, as reflect does.
func IsAssignableTo(source, target reflect.Type) bool {
	return source.AssignableTo(target)
}

// IsAssignableToType is like IsAssignableTo with the target type given as a
// type parameter.
func IsAssignableToType[T any](source reflect.Type) bool {
	return IsAssignableTo(source, reflect.TypeFor[T]())
}
