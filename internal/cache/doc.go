// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides the bounded LRU that memoizes encoded texture
// headers.
//
//	c := cache.New[texhead.Descriptor, texhead.Output](1024)
//	if out, ok := c.Get(desc); ok {
//	    return &out, nil
//	}
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
