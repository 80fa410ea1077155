package pages

import (
	"fmt"
	"reflect"
)

// argRegistry holds the services injected into page methods, keyed by their
// dynamic type.
type argRegistry map[reflect.Type]reflect.Value

func (args argRegistry) addArg(v any) error {
	if v == nil {
		return nil
	}
	typ := reflect.TypeOf(v)
	if _, ok := args[typ]; ok {
		return fmt.Errorf("duplicate type %s in args registry", typ)
	}
	args[typ] = reflect.ValueOf(v)
	return nil
}

// getArg finds a value for a parameter of type want. Exact matches win, then
// pointer/value conversions, then the first registered value assignable to an
// interface parameter.
func (args argRegistry) getArg(want reflect.Type) (reflect.Value, bool) {
	if v, ok := args[want]; ok {
		return v, true
	}
	if want.Kind() == reflect.Ptr {
		if v, ok := args[want.Elem()]; ok {
			if v.CanAddr() {
				return v.Addr(), true
			}
			pv := reflect.New(want.Elem())
			pv.Elem().Set(v)
			return pv, true
		}
	} else if v, ok := args[reflect.PointerTo(want)]; ok && !v.IsNil() {
		return v.Elem(), true
	}
	if want.Kind() == reflect.Interface {
		for t, v := range args {
			if t.Implements(want) {
				return v, true
			}
		}
	}
	return reflect.Value{}, false
}
