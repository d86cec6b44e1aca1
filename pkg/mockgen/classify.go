package mockgen

import "reflect"

// Kind classifies a source member for the generation walk.
type Kind int

const (
	// KindCallable members are replaced by a call-recording stand-in.
	KindCallable Kind = iota
	// KindPrimitive members are copied unchanged.
	KindPrimitive
	// KindNested members are walked recursively into a child Object.
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindCallable:
		return "callable"
	case KindPrimitive:
		return "primitive"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// classify decides how a member value is treated. Nil pointers and nil
// interfaces are primitives (copied as-is, never walked). A declared func
// member is callable even when its value is nil, so export tables made of
// nil func fields still derive stand-ins. Slices, arrays and channels are
// outside the well-formed input set and fall back to plain copies.
func classify(v reflect.Value) Kind {
	if !v.IsValid() {
		return KindPrimitive
	}
	switch v.Kind() {
	case reflect.Func:
		return KindCallable
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindPrimitive
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return KindPrimitive
		}
		return classify(v.Elem())
	case reflect.Struct:
		return KindNested
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			return KindNested
		}
		return KindPrimitive
	default:
		return KindPrimitive
	}
}
