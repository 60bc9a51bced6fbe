package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/peat/pkg/adapters/file"
	"github.com/aretw0/peat/pkg/adapters/memory"
	"github.com/aretw0/peat/pkg/adapters/sqlite"
	"github.com/aretw0/peat/pkg/core"
)

// Open assembles a ready Store over the configured backend. The stateDir
// argument is backend-specific: the state directory for "file" and
// "sqlite", ignored for "memory" and injected adapters. An empty stateDir
// means the platform default.
func Open(ctx context.Context, stateDir string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	adapter, err := buildAdapter(ctx, stateDir, o)
	if err != nil {
		return nil, err
	}

	return core.NewStore(ctx, adapter, o.logger), nil
}

func buildAdapter(ctx context.Context, stateDir string, o *options) (core.Adapter, error) {
	if o.adapter != nil {
		return o.adapter, nil
	}

	// Development runs get sandboxed into a temp directory unless the call
	// is read-only or the caller opted out.
	useTemp := o.forceTemp || (IsDevRun() && o.devSafety && !o.readOnly)
	resolved := ResolveStateDir(stateDir, useTemp)

	if useTemp && o.logger != nil {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "requested_dir", stateDir, "resolved_dir", resolved)
	}

	switch o.backend {
	case BackendFile:
		a := file.New(file.Config{
			Dir:      resolved,
			ReadOnly: o.readOnly,
			Logger:   o.logger,
		})
		if !o.readOnly {
			if err := a.Initialize(ctx); err != nil {
				return nil, err
			}
		}
		return a, nil

	case BackendSQLite:
		if o.readOnly {
			return nil, fmt.Errorf("read-only mode is not supported by the %s backend", BackendSQLite)
		}
		return sqlite.New(sqlite.Config{
			Path:   filepath.Join(resolved, "peat.db"),
			Logger: o.logger,
		})

	case BackendMemory:
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown backend: %s", o.backend)
	}
}
