package types

// SymbolFlags encode the small set of boolean attributes a Symbol needs
// during resolution and type-checking, following the teacher's bitflag
// convention for compact semantic records.
type SymbolFlags uint8

const (
	// FlagMutable marks a binding declared with `let mut`.
	FlagMutable SymbolFlags = 1 << iota
	// FlagInitialized marks a binding whose initializer has already been
	// resolved — the resolver sets this only after visiting the
	// initializer expression, so `let a = a;` cannot bind to itself
	// (spec.md §4.3).
	FlagInitialized
	// FlagCallable marks a function symbol (as opposed to a variable or
	// parameter), used by the type checker to validate call expressions.
	FlagCallable
)

func (f SymbolFlags) Has(flag SymbolFlags) bool { return f&flag != 0 }

// Symbol is the semantic record for one identifier within one scope
// (spec.md §3): its static type, mutability, and initialization state.
type Symbol struct {
	Name  string
	Type  Type
	Flags SymbolFlags

	// Params and ReturnType are populated only for callable symbols
	// (SPEC_FULL.md §3.2's per-function parameter/return-type
	// annotations); zero value otherwise.
	Params     []Type
	ReturnType Type
}

func (s Symbol) Mutable() bool     { return s.Flags.Has(FlagMutable) }
func (s Symbol) Initialized() bool { return s.Flags.Has(FlagInitialized) }
func (s Symbol) Callable() bool    { return s.Flags.Has(FlagCallable) }

// NewVarSymbol builds a Symbol for a `let`-declared variable or a function
// parameter.
func NewVarSymbol(name string, typ Type, mutable, initialized bool) Symbol {
	var flags SymbolFlags
	if mutable {
		flags |= FlagMutable
	}
	if initialized {
		flags |= FlagInitialized
	}
	return Symbol{Name: name, Type: typ, Flags: flags}
}

// NewFunctionSymbol builds a Symbol for a function declaration, carrying
// its parameter types and declared return type for call-site checking.
func NewFunctionSymbol(name string, params []Type, returnType Type) Symbol {
	return Symbol{
		Name:       name,
		Type:       returnType,
		Flags:      FlagCallable | FlagInitialized,
		Params:     params,
		ReturnType: returnType,
	}
}
