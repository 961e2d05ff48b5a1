// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// GetTyped retrieves a JSON-encoded value from the cache and decodes it into T.
func GetTyped[T any](ctx context.Context, c Cache, key string) (T, error) {
	var zero T

	data, err := c.Get(ctx, key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("decoding cached value for %q: %w", key, err)
	}
	return value, nil
}

// SetTyped JSON-encodes a value and stores it in the cache.
func SetTyped[T any](ctx context.Context, c Cache, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}
