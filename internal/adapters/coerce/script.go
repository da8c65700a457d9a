package coerce

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

const tengoResult = "__res__"

// script is the source of a script node together with its input variables.
type script struct {
	src  string
	vars map[string]any
}

// parseScript accepts either a bare source string or {src, vars}.
func parseScript(e domain.Typed) (script, error) {
	switch data := e.Data.(type) {
	case domain.String:
		return script{src: string(data)}, nil
	case domain.Object:
		src, ok := data["src"].(domain.String)
		if !ok {
			return script{}, tagError(e, "expects src to be a string")
		}
		s := script{src: string(src), vars: map[string]any{}}
		if raw, ok := data["vars"]; ok {
			vars, ok := raw.(domain.Object)
			if !ok {
				return script{}, tagError(e, "expects vars to be a mapping")
			}
			for name, v := range vars {
				s.vars[name] = native(v)
			}
		}
		return s, nil
	}
	return script{}, tagError(e, "expects a source string or {src, vars}")
}

// native converts a concrete expression to plain Go values understood by the
// script engines.
func native(e domain.Expression) any {
	switch v := e.(type) {
	case domain.Bool:
		return bool(v)
	case domain.Number:
		return float64(v)
	case domain.String:
		return string(v)
	case domain.Array:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = native(item)
		}
		return out
	case domain.Object:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = native(item)
		}
		return out
	case domain.MatrixValue:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = float64(f)
		}
		return out
	case domain.Typed:
		return map[string]any{"tag": v.Tag, "data": native(v.Data)}
	}
	return nil
}

func (c *Coercer) runTengo(e domain.Typed) (domain.Matrix, error) {
	s, err := parseScript(e)
	if err != nil {
		return domain.Matrix{}, err
	}

	sc := tengo.NewScript([]byte(tengoResult + " := (" + s.src + ")"))
	sc.SetImports(stdlib.GetModuleMap("math"))
	for _, name := range slices.Sorted(maps.Keys(s.vars)) {
		if err := sc.Add(name, s.vars[name]); err != nil {
			return domain.Matrix{}, scriptError(e, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.scriptTimeout)
	defer cancel()

	compiled, err := sc.RunContext(ctx)
	if err != nil {
		return domain.Matrix{}, scriptError(e, err)
	}
	return matrixFromNative(e, compiled.Get(tengoResult).Value())
}

func (c *Coercer) runCEL(e domain.Typed) (domain.Matrix, error) {
	s, err := parseScript(e)
	if err != nil {
		return domain.Matrix{}, err
	}

	prg, err := c.cel.program(s)
	if err != nil {
		return domain.Matrix{}, scriptError(e, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.scriptTimeout)
	defer cancel()

	vars := s.vars
	if vars == nil {
		vars = map[string]any{}
	}
	out, _, err := prg.ContextEval(ctx, vars)
	if err != nil {
		return domain.Matrix{}, scriptError(e, err)
	}
	value, err := celNative(out)
	if err != nil {
		return domain.Matrix{}, scriptError(e, err)
	}
	return matrixFromNative(e, value)
}

// celCache keeps compiled programs keyed by source and variable names.
type celCache struct {
	mu       sync.Mutex
	programs map[string]cel.Program
}

func newCELCache() *celCache {
	return &celCache{programs: make(map[string]cel.Program)}
}

func (c *celCache) program(s script) (cel.Program, error) {
	names := slices.Sorted(maps.Keys(s.vars))
	key := s.src + "\x00" + strings.Join(names, ",")

	c.mu.Lock()
	defer c.mu.Unlock()
	if prg, ok := c.programs[key]; ok {
		return prg, nil
	}

	opts := make([]cel.EnvOption, 0, len(names))
	for _, name := range names {
		opts = append(opts, cel.Variable(name, cel.DynType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(s.src)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	prg, err := env.Program(ast, cel.InterruptCheckFrequency(100))
	if err != nil {
		return nil, err
	}
	c.programs[key] = prg
	return prg, nil
}

var errUnsupportedResult = errors.New("unsupported result type")

func celNative(v ref.Val) (any, error) {
	switch v.Type() {
	case types.IntType:
		return v.Value().(int64), nil
	case types.UintType:
		return v.Value().(uint64), nil
	case types.DoubleType:
		return v.Value().(float64), nil
	case types.ListType:
		lister, ok := v.(traits.Lister)
		if !ok {
			return nil, errUnsupportedResult
		}
		var out []any
		it := lister.Iterator()
		for it.HasNext() == types.True {
			item, err := celNative(it.Next())
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	}
	return nil, zerr.With(zerr.Wrap(errUnsupportedResult, "cel result"), "type", v.Type().TypeName())
}

// matrixFromNative accepts a list of 16 numbers in column-major order.
func matrixFromNative(e domain.Typed, value any) (domain.Matrix, error) {
	items, ok := value.([]any)
	if !ok {
		return domain.Matrix{}, tagError(e, "script must yield a list of 16 numbers")
	}
	values := make([]float32, 0, len(items))
	for _, item := range items {
		switch n := item.(type) {
		case int64:
			values = append(values, float32(n))
		case uint64:
			values = append(values, float32(n))
		case float64:
			values = append(values, float32(n))
		default:
			return domain.Matrix{}, tagError(e, "script must yield a list of 16 numbers")
		}
	}
	m, ok := domain.MatrixFromSlice(values)
	if !ok {
		return domain.Matrix{}, tagError(e, "script must yield a list of 16 numbers")
	}
	return m, nil
}

func scriptError(e domain.Typed, err error) error {
	return zerr.With(errors.Join(domain.ErrTypeCoercion, zerr.Wrap(err, e.Tag+" script failed")), "tag", e.Tag)
}
