package core

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// LoadJSON retrieves key from the adapter and unmarshals it into T. Any
// failure (missing key, storage error, malformed payload) yields def: the
// caller always gets a usable value and the session starts from a clean
// state instead of aborting.
func LoadJSON[T any](ctx context.Context, a Adapter, key string, def T, logger *slog.Logger) T {
	data, err := a.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) && logger != nil {
			logger.Warn("load failed, using default", "key", key, "error", err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		if logger != nil {
			logger.Warn("corrupt payload, using default", "key", key, "error", err)
		}
		return def
	}
	return v
}

// SaveJSON marshals v and persists it under key. Failures are logged and
// swallowed: in-memory state is the source of truth for the session, and a
// failed write must not interrupt the user.
func SaveJSON[T any](ctx context.Context, a Adapter, key string, v T, logger *slog.Logger) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		if logger != nil {
			logger.Warn("marshal failed, skipping save", "key", key, "error", err)
		}
		return
	}

	if err := a.Save(ctx, key, data); err != nil {
		if logger != nil {
			logger.Warn("save failed, keeping in-memory state", "key", key, "error", err)
		}
	}
}
