package cache

import "time"

// LayeredCache is a small hot memory layer over a persistent disk layer.
// Memory entries live at most memoryTTL regardless of the requested TTL;
// the disk layer keeps the full lifetime.
type LayeredCache struct {
	memory    Cache
	disk      Cache
	memoryTTL time.Duration
}

// NewLayeredCache creates a layered cache over a disk directory
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	if memoryTTL <= 0 {
		memoryTTL = time.Hour
	}
	return &LayeredCache{
		memory:    NewMemoryCache(memoryTTL),
		disk:      NewDiskCache(diskDir, diskTTL),
		memoryTTL: memoryTTL,
	}
}

// Get checks memory first, then disk. Disk hits are promoted into the
// memory layer for the memory TTL.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, c.memoryTTL)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers, capping the memory layer at its TTL
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	memTTL := ttl
	if memTTL <= 0 || memTTL > c.memoryTTL {
		memTTL = c.memoryTTL
	}
	if err := c.memory.Set(key, value, memTTL); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear removes all values from both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
