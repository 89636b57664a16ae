package helpers

import "reflect"

// StrPanic panics with panicMessage if s is empty; otherwise returns s. Used for fail-fast
// validation of required strings (peer addresses, service names).
//
// Called from constructors such as service.NewConnectionPool and adapters/transport.Dial.
func StrPanic(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// NilPanic panics with panicMessage if v is nil (nil interface, or a nil pointer, slice, map,
// chan or func held in T); otherwise returns v unchanged.
//
// Called from every constructor that takes required dependencies.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
