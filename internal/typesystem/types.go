package typesystem

// InternalType is an object-level type: a named base type or an arrow.
type InternalType interface {
	isInternalType()
}

// TNamed is a base type such as `o` or `nat`.
type TNamed struct {
	Name Ident
}

// TFunc is the arrow type Arg -> Ret.
type TFunc struct {
	Arg InternalType
	Ret InternalType
}

func (TNamed) isInternalType() {}
func (TFunc) isInternalType()  {}

// Arrow builds a right-nested arrow a1 -> a2 -> ... -> ret.
func Arrow(ret InternalType, args ...InternalType) InternalType {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = TFunc{Arg: args[i], Ret: t}
	}
	return t
}

// EqualTypes reports structural equality of two internal types.
func EqualTypes(a, b InternalType) bool {
	switch x := a.(type) {
	case TNamed:
		y, ok := b.(TNamed)
		return ok && x.Name == y.Name
	case TFunc:
		y, ok := b.(TFunc)
		return ok && EqualTypes(x.Arg, y.Arg) && EqualTypes(x.Ret, y.Ret)
	default:
		return a == nil && b == nil
	}
}

// MetaType classifies what a binding denotes.
type MetaType interface {
	isMetaType()
}

// MType classifies a name that denotes a base type.
type MType struct{}

// MTerm classifies a value of the given internal type.
type MTerm struct {
	Type InternalType
}

// MFormula classifies an n-ary relation. Args lists the argument types
// still to be supplied; application consumes them from the end, so the
// first source-level argument is the last element.
type MFormula struct {
	Args []InternalType
}

// MSchema classifies a template over further meta-typed parameters.
// Params follows the same consumed-from-the-end convention as MFormula.
type MSchema struct {
	Params []MetaType
	Ret    MetaType
}

func (MType) isMetaType()    {}
func (MTerm) isMetaType()    {}
func (MFormula) isMetaType() {}
func (MSchema) isMetaType()  {}

// EqualMeta reports structural equality of two meta-types.
func EqualMeta(a, b MetaType) bool {
	switch x := a.(type) {
	case MType:
		_, ok := b.(MType)
		return ok
	case MTerm:
		y, ok := b.(MTerm)
		return ok && EqualTypes(x.Type, y.Type)
	case MFormula:
		y, ok := b.(MFormula)
		return ok && equalTypeSlices(x.Args, y.Args)
	case MSchema:
		y, ok := b.(MSchema)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !EqualMeta(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return EqualMeta(x.Ret, y.Ret)
	default:
		return a == nil && b == nil
	}
}

func equalTypeSlices(a, b []InternalType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualTypes(a[i], b[i]) {
			return false
		}
	}
	return true
}

// CloneTypes copies an argument-type slice so builders can pop from it
// without aliasing a binding's stored meta-type.
func CloneTypes(ts []InternalType) []InternalType {
	if len(ts) == 0 {
		return nil
	}
	out := make([]InternalType, len(ts))
	copy(out, ts)
	return out
}

// ArgsFromSource converts source-order argument types into storage order.
func ArgsFromSource(ts []InternalType) []InternalType {
	out := make([]InternalType, len(ts))
	for i, t := range ts {
		out[len(ts)-1-i] = t
	}
	return out
}

// ParamsFromSource is ArgsFromSource for schema parameters.
func ParamsFromSource(ms []MetaType) []MetaType {
	out := make([]MetaType, len(ms))
	for i, m := range ms {
		out[len(ms)-1-i] = m
	}
	return out
}
