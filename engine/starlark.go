package engine

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
)

const entryPoint = "evaluate"

var (
	cacheMu sync.Mutex
	cache   = map[string]*starlark.Function{}
)

// SourceHash identifies a compiled expression in the program cache.
// Expressions with the same parameters and source share a program
// whatever name they are compiled under.
func SourceHash(params []string, expr string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%q\n%q", params, expr)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// expr is a compiled Starlark expression. The first evaluation error is
// kept; every later call returns NaN without running the program.
type expr struct {
	name   string
	fn     *starlark.Function
	thread *starlark.Thread
	err    error
}

// Err reports the first evaluation error, if any.
func (e *expr) Err() error { return e.err }

func (e *expr) call(args ...float64) float64 {
	if e.err != nil {
		return math.NaN()
	}
	tuple := make(starlark.Tuple, len(args))
	for i, a := range args {
		tuple[i] = starlark.Float(a)
	}
	v, err := starlark.Call(e.thread, e.fn, tuple, nil)
	if err != nil {
		e.err = fmt.Errorf("%s: %w", e.name, err)
		return math.NaN()
	}
	f, ok := toFloat(v)
	if !ok {
		e.err = fmt.Errorf("%s: result is %s, not a number", e.name, v.Type())
		return math.NaN()
	}
	return f
}

// FuncExpr is a Func backed by a Starlark expression in x.
type FuncExpr struct{ expr }

func (f *FuncExpr) Eval(x float64) float64 { return f.call(x) }

// FieldExpr is a Field backed by a Starlark expression in x and y.
type FieldExpr struct{ expr }

func (f *FieldExpr) Angle(x, y float64) float64 { return f.call(x, y) }

// CompileFunc compiles a Starlark expression of x, e.g.
// "math.pi * math.sin(x / math.pi)". The math module is predeclared.
func CompileFunc(name, src string) (*FuncExpr, error) {
	e, err := compile(name, []string{"x"}, src)
	if err != nil {
		return nil, err
	}
	return &FuncExpr{*e}, nil
}

// CompileField compiles a Starlark expression of x and y giving an angle.
func CompileField(name, src string) (*FieldExpr, error) {
	e, err := compile(name, []string{"x", "y"}, src)
	if err != nil {
		return nil, err
	}
	return &FieldExpr{*e}, nil
}

func compile(name string, params []string, src string) (*expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%s: empty expression", name)
	}
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { log.Printf("[%s] %s", name, msg) }}

	key := SourceHash(params, src)
	cacheMu.Lock()
	fn, ok := cache[key]
	cacheMu.Unlock()
	if ok {
		return &expr{name: name, fn: fn, thread: thread}, nil
	}

	script := fmt.Sprintf("def %s(%s):\n    return (%s)\n", entryPoint, strings.Join(params, ", "), src)
	predeclared := starlark.StringDict{"math": starlarkmath.Module}
	globals, err := starlark.ExecFile(thread, name, script, predeclared)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	fn, ok = globals[entryPoint].(*starlark.Function)
	if !ok {
		return nil, fmt.Errorf("%s: expression did not compile to a function", name)
	}

	cacheMu.Lock()
	cache[key] = fn
	cacheMu.Unlock()
	return &expr{name: name, fn: fn, thread: thread}, nil
}

// Check returns the joined evaluation errors of any values that record one.
// Go closures never fail and are skipped.
func Check(fns ...any) error {
	var errs []error
	for _, f := range fns {
		if e, ok := f.(interface{ Err() error }); ok && e.Err() != nil {
			errs = append(errs, e.Err())
		}
	}
	return errors.Join(errs...)
}

func toFloat(v starlark.Value) (float64, bool) {
	switch val := v.(type) {
	case starlark.Float:
		return float64(val), true
	case starlark.Int:
		i, ok := val.Int64()
		if !ok {
			return 0, false
		}
		return float64(i), true
	}
	return 0, false
}
