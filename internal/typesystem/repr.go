package typesystem

import (
	"fmt"
	"strings"
)

// Repr renders an internal type with global names resolved through names.
// Locals have no source name in the global table and render as #n.
func Repr(t InternalType, names Namer) string {
	switch typ := t.(type) {
	case TNamed:
		return IdentRepr(typ.Name, names)
	case TFunc:
		return fmt.Sprintf("(%s -> %s)", Repr(typ.Arg, names), Repr(typ.Ret, names))
	default:
		return "?"
	}
}

// ReprMeta renders a meta-type. Sequence payloads print in source order.
func ReprMeta(m MetaType, names Namer) string {
	switch typ := m.(type) {
	case MType:
		return "Type"
	case MTerm:
		return fmt.Sprintf("(Term %s)", Repr(typ.Type, names))
	case MFormula:
		var sb strings.Builder
		for i := len(typ.Args) - 1; i >= 0; i-- {
			sb.WriteString(" ")
			sb.WriteString(Repr(typ.Args[i], names))
		}
		return fmt.Sprintf("(Formula %s)", sb.String())
	case MSchema:
		var sb strings.Builder
		for i := len(typ.Params) - 1; i >= 0; i-- {
			sb.WriteString(" ")
			sb.WriteString(ReprMeta(typ.Params[i], names))
		}
		return fmt.Sprintf("(Schema %s to %s)", sb.String(), ReprMeta(typ.Ret, names))
	default:
		return "?"
	}
}

// IdentRepr renders an identifier the way types render their names.
func IdentRepr(id Ident, names Namer) string {
	if id.Kind == LocalIdent {
		return fmt.Sprintf("#%d", id.N)
	}
	if names != nil {
		if name, ok := names.Name(id.N); ok {
			return name
		}
	}
	return fmt.Sprintf("$%d", id.N)
}
