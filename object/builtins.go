package object

// Builtins is the name/index registry the compiler seeds its builtin scope
// from (see compiler.New). A CALL against any of these always traps (§4.G) —
// the table exists to make OpGetBuiltin's operand space and the BuiltinScope
// symbol resolution path reachable, not to provide working implementations.
var Builtins = []struct {
	// The name of the built-in function.
	Name string

	// The definition of the built-in function.
	Builtin *Builtin
}{
	{"len", &Builtin{}},
	{"first", &Builtin{}},
	{"rest", &Builtin{}},
	{"last", &Builtin{}},
	{"push", &Builtin{}},
	{"puts", &Builtin{}},
}

func init() {
	for i := range Builtins {
		Builtins[i].Builtin.Index = i
	}
}

// GetBuiltinByName retrieves a built-in function definition by its name from the predefined [Builtins] collection.
//
// It returns a pointer to the corresponding [Builtin] or nil if the name is not found.
func GetBuiltinByName(name string) *Builtin {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin
		}
	}
	return nil
}
