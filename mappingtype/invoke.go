package mappingtype

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"

	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/validation"
)

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	durationType = reflect.TypeOf(time.Duration(0))
)

// checkSignature records every reason fn cannot be called with argc arguments.
func checkSignature(v *validation.Validator, field string, fn any, argc int) {
	if name, ok := fn.(string); ok {
		v.AddError(field, fmt.Sprintf("unknown function %q", name))
		return
	}
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		v.AddError(field, "must be a function")
		return
	}
	if reflect.ValueOf(fn).IsNil() {
		v.AddError(field, "must not be a nil function")
		return
	}

	switch {
	case ft.IsVariadic() && argc < ft.NumIn()-1:
		v.AddError(field, fmt.Sprintf("takes at least %d argument(s), mapping declares %d", ft.NumIn()-1, argc))
	case !ft.IsVariadic() && argc != ft.NumIn():
		v.AddError(field, fmt.Sprintf("takes %d argument(s), mapping declares %d", ft.NumIn(), argc))
	}

	switch ft.NumOut() {
	case 1:
	case 2:
		if !ft.Out(1).Implements(errorType) {
			v.AddError(field, "second return value must be an error")
		}
	default:
		v.AddError(field, "must return either (instance) or (instance, error)")
	}
}

// call resolves the mapping's arguments in order and invokes fn with them.
func call(fn any, m *mapping.Mapping, resolve mapping.ResolveFunc) (any, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s is %T, not a function", m.Name(), fn)
	}
	ft := fv.Type()

	args := m.Arguments()
	in := make([]reflect.Value, len(args))
	for i, key := range args {
		value, err := resolve(key)
		if err != nil {
			return nil, err
		}
		in[i], err = convert(value, paramType(ft, i))
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, key, err)
		}
	}

	return handleResults(fv.Call(in))
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// convert adapts a resolved value to a parameter type. Values that are not
// assignable are coerced when the target is a scalar, since environment and
// configuration resolvers produce strings.
func convert(value any, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(target) {
		return rv, nil
	}

	out := reflect.New(target).Elem()
	switch {
	case target == durationType:
		d, err := cast.ToDurationE(value)
		if err != nil {
			return reflect.Value{}, coercionError(value, target, err)
		}
		out.SetInt(int64(d))
	case target.Kind() >= reflect.Int && target.Kind() <= reflect.Int64:
		n, err := cast.ToInt64E(value)
		if err != nil {
			return reflect.Value{}, coercionError(value, target, err)
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", n, target)
		}
		out.SetInt(n)
	case target.Kind() >= reflect.Uint && target.Kind() <= reflect.Uintptr:
		n, err := cast.ToUint64E(value)
		if err != nil {
			return reflect.Value{}, coercionError(value, target, err)
		}
		if out.OverflowUint(n) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", n, target)
		}
		out.SetUint(n)
	case target.Kind() == reflect.Float32 || target.Kind() == reflect.Float64:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return reflect.Value{}, coercionError(value, target, err)
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("%g overflows %s", f, target)
		}
		out.SetFloat(f)
	case target.Kind() == reflect.Bool:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return reflect.Value{}, coercionError(value, target, err)
		}
		out.SetBool(b)
	case target.Kind() == reflect.String:
		str, err := cast.ToStringE(value)
		if err != nil {
			return reflect.Value{}, coercionError(value, target, err)
		}
		out.SetString(str)
	default:
		return reflect.Value{}, fmt.Errorf("%T is not assignable to %s", value, target)
	}
	return out, nil
}

func coercionError(value any, target reflect.Type, err error) error {
	return fmt.Errorf("cannot convert %T to %s: %w", value, target, err)
}

func handleResults(results []reflect.Value) (any, error) {
	switch len(results) {
	case 1:
		// Constructor returns just the instance
		return results[0].Interface(), nil
	case 2:
		// Constructor returns (instance, error)
		if err, _ := results[1].Interface().(error); err != nil {
			return nil, err
		}
		return results[0].Interface(), nil
	default:
		return nil, fmt.Errorf("constructor must return either (instance) or (instance, error)")
	}
}
