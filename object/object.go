// Package object defines the runtime value representation for the tau
// virtual machine: a closed tagged union (Integer, Float, Boolean, Null,
// String, CompiledFunction, Closure, Builtin, GetSetter) plus the
// constructors, singletons, and type predicates the dispatch loop and
// compiler share.
//
// Booleans and Null are interned singletons compared by identity; every
// other kind is heap-allocated and owned by whichever stack slot, constant
// pool entry, or closure free-list currently holds it.
package object

import (
	"fmt"
	"strconv"

	"github.com/taulang/tau/code"
)

//nolint:revive
const (
	INTEGER_OBJ           = "INTEGER"
	FLOAT_OBJ             = "FLOAT"
	BOOLEAN_OBJ           = "BOOLEAN"
	STRING_OBJ            = "STRING"
	NULL_OBJ              = "NULL"
	BUILTIN_OBJ           = "BUILTIN"
	COMPILED_FUNCTION_OBJ = "COMPILED_FUNCTION_OBJ"
	CLOSURE_OBJ           = "CLOSURE"
	GETSETTER_OBJ         = "GETSETTER"
)

// Type represents the type of object.
type Type string

// Object is the interface that wraps the basic operations of all Monke objects.
// All Monke objects implement this interface.
type Object interface {
	// Type returns the type of the object as a value of Type.
	Type() Type

	// Inspect returns a string representation of the object.
	Inspect() string
}

// Integer represents a Monke integer value.
type Integer struct {
	Value int64
}

// Type returns the type of the object.
func (i *Integer) Type() Type { return INTEGER_OBJ }

// Inspect returns a string representation of the object.
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Float represents a tau floating-point value.
type Float struct {
	Value float64
}

// Type returns the type of the object.
func (f *Float) Type() Type { return FLOAT_OBJ }

// Inspect returns a string representation of the object.
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Boolean represents a Monke boolean value.
type Boolean struct {
	Value bool
}

// Type returns the type of the object.
func (b *Boolean) Type() Type { return BOOLEAN_OBJ }

// Inspect returns a string representation of the object.
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

// String represents a Monke string value.
type String struct {
	Value string
}

// Type returns the type of the object.
func (s *String) Type() Type { return STRING_OBJ }

// Inspect returns a string representation of the object.
func (s *String) Inspect() string { return s.Value }

// Null represents a Monke null value.
type Null struct{}

// Type returns the type of the object.
func (n *Null) Type() Type { return NULL_OBJ }

// Inspect returns a string representation of the object.
func (n *Null) Inspect() string { return "null" }

// Builtin represents a host-provided builtin, identified by its position in
// the builtin table the symbol table was seeded from (see object.Builtins).
// OpGetBuiltin and a CALL against a Builtin both trap (§4.G), so a Builtin
// value is reachable but inert at runtime.
type Builtin struct {
	Index int
}

// Type returns the type of the object.
func (b *Builtin) Type() Type { return BUILTIN_OBJ }

// Inspect returns a string representation of the object.
func (b *Builtin) Inspect() string { return "builtin function" }

// CompiledFunction represents a compiled piece of bytecode with its instructions, local variables, and parameters.
type CompiledFunction struct {
	// Represents the bytecode sequence of a compiled function.
	Instructions code.Instructions

	// NumLocals indicates the number of local variables used within the compiled function.
	NumLocals int

	// NumParameters specifies the number of parameters accepted by the compiled function.
	NumParameters int
}

// Type returns the object type of the compiled function, which is [COMPILED_FUNCTION_OBJ].
func (c *CompiledFunction) Type() Type { return COMPILED_FUNCTION_OBJ }

// Inspect returns a formatted string representation of the CompiledFunction instance, including its memory address.
func (c *CompiledFunction) Inspect() string { return fmt.Sprintf("CompiledFunction[%p]", c) }

// Closure represents a function and its free variables in a virtual machine's execution context.
type Closure struct {
	// Fn is a reference to the compiled function containing the bytecode and metadata for closure execution.
	Fn *CompiledFunction

	// Free holds the objects representing free variables captured by the closure for use during its execution.
	Free []Object
}

// Type returns the type of the object, specifically [CLOSURE_OBJ] for instances of Closure.
func (c *Closure) Type() Type { return CLOSURE_OBJ }

// Inspect returns a string representation of the Closure instance, including its memory address.
func (c *Closure) Inspect() string { return fmt.Sprintf("Closure[%p]", c) }

// GetSetter is a placeholder l-value wrapper: a future DOT/INDEX store would
// wrap a reference target in one of these instead of the plain Object it
// refers to. Nothing in this VM constructs a GetSetter today — OpDot and
// OpIndex both trap before one would ever be produced — but every stack pop
// in the dispatch loop runs values through Unwrap so adding real l-value
// support later doesn't require touching every opcode.
type GetSetter struct {
	Value Object
}

// Type returns the type of the object.
func (g *GetSetter) Type() Type { return GETSETTER_OBJ }

// Inspect returns a string representation of the wrapped value.
func (g *GetSetter) Inspect() string { return g.Value.Inspect() }

// Unwrap returns obj unchanged unless it is a GetSetter, in which case it
// returns the wrapped value. Every value the VM pops off the stack passes
// through here.
func Unwrap(obj Object) Object {
	if gs, ok := obj.(*GetSetter); ok {
		return gs.Value
	}
	return obj
}

// IsTruthy reports whether obj counts as true in a condition. Boolean is its
// own value, Integer and Float are truthy unless zero, Null is always
// falsy, and every other type (String, Closure, Builtin, ...) is truthy.
func IsTruthy(obj Object) bool {
	switch o := obj.(type) {
	case *Boolean:
		return o.Value
	case *Integer:
		return o.Value != 0
	case *Float:
		return o.Value != 0
	case *Null:
		return false
	default:
		return true
	}
}

// ToDouble converts an Integer or Float to a float64. ok is false for any
// other type.
func ToDouble(obj Object) (value float64, ok bool) {
	switch o := obj.(type) {
	case *Integer:
		return float64(o.Value), true
	case *Float:
		return o.Value, true
	default:
		return 0, false
	}
}
