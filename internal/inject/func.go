// SPDX-License-Identifier: MPL-2.0

package inject

import (
	"context"
	"reflect"
)

var (
	ctxType = reflect.TypeFor[context.Context]()
	errType = reflect.TypeFor[error]()
)

// Func is a handler function analyzed against the handler convention:
//
//	func([ctx context.Context][, in T]) ([T2, ]error) | ([T2]) | ()
//
// where T is a struct or pointer to struct whose fields are bound by name
// at call time.
type Func struct {
	fn       reflect.Value
	takesCtx bool
	inType   reflect.Type // parameter struct type, nil when absent
	inIsPtr  bool
	hasOut   bool
	hasErr   bool
}

// NewFunc validates fn against the handler convention.
func NewFunc(fn any) (*Func, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() {
		return nil, &InvalidFuncError{Type: "nil", Reason: "not a function"}
	}
	if rv.Kind() != reflect.Func {
		return nil, &InvalidFuncError{Type: rv.Type().String(), Reason: "not a function"}
	}
	if rv.IsNil() {
		return nil, &InvalidFuncError{Type: rv.Type().String(), Reason: "function is nil"}
	}
	rt := rv.Type()
	f := &Func{fn: rv}

	switch rt.NumIn() {
	case 0:
	case 1:
		if rt.In(0) == ctxType {
			f.takesCtx = true
		} else if err := f.setInType(rt, rt.In(0)); err != nil {
			return nil, err
		}
	case 2:
		if rt.In(0) != ctxType {
			return nil, &InvalidFuncError{Type: rt.String(), Reason: "first of two parameters must be context.Context"}
		}
		f.takesCtx = true
		if err := f.setInType(rt, rt.In(1)); err != nil {
			return nil, err
		}
	default:
		return nil, &InvalidFuncError{Type: rt.String(), Reason: "too many parameters"}
	}

	switch rt.NumOut() {
	case 0:
	case 1:
		if rt.Out(0) == errType {
			f.hasErr = true
		} else {
			f.hasOut = true
		}
	case 2:
		if rt.Out(1) != errType {
			return nil, &InvalidFuncError{Type: rt.String(), Reason: "second result must be error"}
		}
		f.hasOut = true
		f.hasErr = true
	default:
		return nil, &InvalidFuncError{Type: rt.String(), Reason: "too many results"}
	}
	return f, nil
}

func (f *Func) setInType(rt, in reflect.Type) error {
	t := in
	if t.Kind() == reflect.Pointer {
		f.inIsPtr = true
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return &InvalidFuncError{Type: rt.String(), Reason: "parameter must be a struct or pointer to struct"}
	}
	f.inType = t
	return nil
}

// ReturnsError reports whether the function's results include an error.
func (f *Func) ReturnsError() bool {
	return f.hasErr
}

// Call invokes the function. The parameter struct, when the function takes
// one, is bound from values first and r second. The returned value is the
// function's non-error result, or nil when it has none.
func (f *Func) Call(ctx context.Context, values map[string]any, r Resolver) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	args := make([]reflect.Value, 0, 2)
	if f.takesCtx {
		args = append(args, reflect.ValueOf(ctx))
	}
	if f.inType != nil {
		in := reflect.New(f.inType)
		if err := Bind(in.Interface(), values, r); err != nil {
			return nil, err
		}
		if f.inIsPtr {
			args = append(args, in)
		} else {
			args = append(args, in.Elem())
		}
	}

	results := f.fn.Call(args)

	var out any
	var err error
	switch {
	case f.hasOut && f.hasErr:
		out = results[0].Interface()
		if e := results[1].Interface(); e != nil {
			err = e.(error)
		}
	case f.hasErr:
		if e := results[0].Interface(); e != nil {
			err = e.(error)
		}
	case f.hasOut:
		out = results[0].Interface()
	}
	return out, err
}
