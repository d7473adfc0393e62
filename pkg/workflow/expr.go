package workflow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dop251/goja"
)

// Substitution forms in user-authored strings:
//
//	${dotted.path}  safe lookup into the variable context
//	$(expression)   arithmetic / comparison / concatenation in a sandbox
var (
	varPattern  = regexp.MustCompile(`\$\{([A-Za-z0-9_.\[\]]+)\}`)
	exprPattern = regexp.MustCompile(`\$\(([^)]+)\)`)
)

// Substitute resolves both substitution forms in s against vars. Missing
// variable paths render as empty strings; expression errors are returned so
// the caller can attach them to the node.
func Substitute(s string, vars map[string]any) (string, error) {
	out := varPattern.ReplaceAllStringFunc(s, func(m string) string {
		path := varPattern.FindStringSubmatch(m)[1]
		val, ok := LookupPath(vars, path)
		if !ok || val == nil {
			return ""
		}
		return stringify(val)
	})

	var exprErr error
	out = exprPattern.ReplaceAllStringFunc(out, func(m string) string {
		expr := exprPattern.FindStringSubmatch(m)[1]
		val, err := Evaluate(expr, vars)
		if err != nil {
			if exprErr == nil {
				exprErr = err
			}
			return ""
		}
		return stringify(val)
	})
	return out, exprErr
}

// SubstituteValue walks an arbitrary JSON-shaped value and substitutes every
// string leaf.
func SubstituteValue(v any, vars map[string]any) (any, error) {
	switch val := v.(type) {
	case string:
		return Substitute(val, vars)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			sub, err := SubstituteValue(item, vars)
			if err != nil {
				return nil, err
			}
			out[k] = sub
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			sub, err := SubstituteValue(item, vars)
			if err != nil {
				return nil, err
			}
			out[i] = sub
		}
		return out, nil
	default:
		return v, nil
	}
}

// Evaluate runs one $() expression in a sandboxed runtime that exposes only
// the variable context. eval and the Function constructor are removed so
// user expressions cannot reach beyond it.
func Evaluate(expr string, vars map[string]any) (any, error) {
	vm := goja.New()
	for k, v := range vars {
		if err := vm.Set(k, v); err != nil {
			return nil, fmt.Errorf("seeding context %q: %w", k, err)
		}
	}
	for _, global := range []string{"eval", "Function"} {
		if err := vm.GlobalObject().Delete(global); err != nil {
			return nil, fmt.Errorf("sealing sandbox: %w", err)
		}
	}

	val, err := vm.RunString(expr)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", expr, err)
	}
	return val.Export(), nil
}

// pathSegment matches one dotted-path segment with optional [n] indices.
var pathSegment = regexp.MustCompile(`^([A-Za-z0-9_]+)((?:\[\d+\])*)$`)

// LookupPath resolves a dotted path with [n] array indices against a
// JSON-shaped value. Missing paths report ok=false, never an error.
func LookupPath(root any, path string) (any, bool) {
	current := root
	for _, seg := range strings.Split(path, ".") {
		m := pathSegment.FindStringSubmatch(seg)
		if m == nil {
			return nil, false
		}

		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[m[1]]
		if !ok {
			return nil, false
		}

		if m[2] != "" {
			for _, idx := range strings.Split(strings.Trim(m[2], "[]"), "][") {
				n, err := strconv.Atoi(idx)
				if err != nil {
					return nil, false
				}
				arr, ok := current.([]any)
				if !ok || n < 0 || n >= len(arr) {
					return nil, false
				}
				current = arr[n]
			}
		}
	}
	return current, true
}

// stringify renders a substituted value the way templates expect: numbers
// without a trailing .0, booleans as true/false.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
