package fnplot

import "math"

// Func is a function of one real variable that expressions can call.
type Func int8

const (
	// FuncNone is the Func of a name that isn't a known function. Evaluating
	// it is an UnknownFunctionError.
	FuncNone Func = iota
	FuncSin
	FuncCos
	FuncTan
	FuncSqrt
	FuncLog2
)

// funcs maps each Func to its name and implementation. Trig functions take
// radians. Arguments outside a function's domain produce NaN or ±Inf rather
// than errors.
var funcs = [...]struct {
	name string
	f    func(float64) float64
}{
	FuncNone: {"", nil},
	FuncSin:  {"sin", math.Sin},
	FuncCos:  {"cos", math.Cos},
	FuncTan:  {"tan", math.Tan},
	FuncSqrt: {"sqrt", math.Sqrt},
	FuncLog2: {"log2", math.Log2},
}

// LookupFunc returns the function with the given name, or FuncNone if there
// is none.
func LookupFunc(name string) Func {
	for k := FuncNone + 1; int(k) < len(funcs); k++ {
		if funcs[k].name == name {
			return k
		}
	}
	return FuncNone
}

// FuncNames lists the names of all known functions.
func FuncNames() []string {
	r := make([]string, 0, len(funcs)-1)
	for _, fn := range funcs[FuncNone+1:] {
		r = append(r, fn.name)
	}
	return r
}

// Name returns the function's name. The name of FuncNone is empty.
func (f Func) Name() string {
	if f < 0 || int(f) >= len(funcs) {
		return ""
	}
	return funcs[f].name
}

func (f Func) String() string {
	if f == FuncNone {
		return "FuncNone"
	}
	return f.Name()
}

// Call applies the function to x. The second result is false if f is not a
// known function.
func (f Func) Call(x float64) (float64, bool) {
	if f <= FuncNone || int(f) >= len(funcs) {
		return 0, false
	}
	return funcs[f].f(x), true
}
