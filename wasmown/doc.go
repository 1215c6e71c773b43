// Package wasmown puts wazero guest lifetimes behind owned handles.
//
// A wazero runtime, compiled module, and module instance each need to
// be closed exactly once, across every exit path. Wrapping them in
// owned.Ptr makes the close path structural instead of manual:
//
//	rt := wasmown.NewRuntime(ctx)
//	defer rt.Close()
//
//	mod, err := rt.MustGet().Compile(ctx, "greeter", wasmBytes)
//	if err != nil {
//	    return err
//	}
//	defer mod.Close()
//
//	inst, err := rt.MustGet().Instantiate(ctx, mod.MustGet())
//	if err != nil {
//	    return err
//	}
//	defer inst.Close()
//
// Ownership of a runtime can move between components like any other
// handle; whichever handle holds it last shuts it down.
//
// Guest close errors are best-effort: disposal never fails, matching
// the handle contract.
package wasmown
