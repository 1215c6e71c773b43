package wasmown

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/owned"
	"github.com/wippyai/owned/errors"
)

// Runtime wraps a wazero runtime so exactly one handle owns its
// shutdown. Obtain one through NewRuntime and close it through the
// returned owned.Ptr.
type Runtime struct {
	rt wazero.Runtime
}

// Config holds configuration for runtime creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages
	// (64KB each). 0 means the wazero default.
	MemoryLimitPages uint32
}

// NewRuntime creates a wazero runtime owned by the returned handle.
// Disposal closes the runtime, which in turn closes every module it
// instantiated; close errors are best-effort and not surfaced.
func NewRuntime(ctx context.Context) owned.Ptr[Runtime] {
	return NewRuntimeWithConfig(ctx, nil)
}

// NewRuntimeWithConfig creates a runtime with custom configuration.
func NewRuntimeWithConfig(ctx context.Context, cfg *Config) owned.Ptr[Runtime] {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	return owned.Adopt(&Runtime{rt: rt}, owned.WithDisposer(func(r *Runtime) {
		// Disposal must not fail; shutdown is detached from any
		// request context that may already be canceled.
		_ = r.rt.Close(context.Background())
	}))
}

// Unwrap returns the underlying wazero runtime. Ownership stays with
// the handle.
func (r *Runtime) Unwrap() wazero.Runtime {
	return r.rt
}

// Module is a compiled guest module whose release is owned by a
// handle.
type Module struct {
	name     string
	compiled wazero.CompiledModule
}

// Compile compiles wasmBytes and returns a handle owning the compiled
// module's release.
func (r *Runtime) Compile(ctx context.Context, name string, wasmBytes []byte) (owned.Ptr[Module], error) {
	compiled, err := r.rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return owned.Ptr[Module]{}, errors.Load(name, err)
	}

	return owned.Adopt(&Module{name: name, compiled: compiled}, owned.WithDisposer(func(m *Module) {
		_ = m.compiled.Close(context.Background())
	})), nil
}

// Name returns the name the module was compiled under.
func (m *Module) Name() string {
	return m.name
}

// Instance is an instantiated guest module whose teardown is owned by
// a handle.
type Instance struct {
	name string
	mod  api.Module
}

// Instantiate instantiates the compiled module in r and returns a
// handle owning the instance's teardown.
func (r *Runtime) Instantiate(ctx context.Context, m *Module) (owned.Ptr[Instance], error) {
	mod, err := r.rt.InstantiateModule(ctx, m.compiled, wazero.NewModuleConfig().WithName(m.name))
	if err != nil {
		return owned.Ptr[Instance]{}, errors.Instantiation(m.name, err)
	}

	return owned.Adopt(&Instance{name: m.name, mod: mod}, owned.WithDisposer(func(i *Instance) {
		_ = i.mod.Close(context.Background())
	})), nil
}

// Unwrap returns the underlying module instance. Ownership stays with
// the handle.
func (i *Instance) Unwrap() api.Module {
	return i.mod
}

// Name returns the instance's module name.
func (i *Instance) Name() string {
	return i.name
}
