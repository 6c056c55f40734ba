package analyzer

import (
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/symbols"
	"github.com/funvibe/rlang/internal/typesystem"
)

// NamedType resolves a base type name. Schema binders of meta-type Type
// shadow global type names.
func NamedType(id int, locals *symbols.LocalBindings, globals *symbols.Bindings, loc diagnostics.FileLocation) (typesystem.InternalType, error) {
	if local, ok := locals.Local(id); ok {
		mtype, _ := locals.Type(local)
		if _, ok := mtype.(typesystem.MType); !ok {
			return nil, diagnostics.New(diagnostics.MTypeMismatch{
				Found:    typesystem.ReprMeta(mtype, globals),
				Expected: "Type",
			}, loc)
		}
		return typesystem.TNamed{Name: typesystem.Local(local)}, nil
	}
	mtype, ok := globals.Type(id)
	if !ok {
		return nil, diagnostics.New(diagnostics.NoBinding{Ident: nameOf(id, globals)}, loc)
	}
	if _, ok := mtype.(typesystem.MType); !ok {
		return nil, diagnostics.New(diagnostics.MTypeMismatch{
			Found:    typesystem.ReprMeta(mtype, globals),
			Expected: "Type",
		}, loc)
	}
	return typesystem.TNamed{Name: typesystem.Global(id)}, nil
}

