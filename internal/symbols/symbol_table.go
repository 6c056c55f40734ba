// symbols/symbol_table.go - Environment entry point
//
// The environment is split into focused files:
// - symbol_table_core.go: Binding record and contract-violation errors
// - symbol_table_ids.go: name <-> global id interning
// - symbol_table_chain.go: ChainMap, the scoped map every table is built on
// - symbol_table_operations.go: Bindings (global values, theorems, local counter)
// - symbol_table_locals.go: LocalBindings for the binders currently open

package symbols
