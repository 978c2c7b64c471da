package assist

import "sync"

const cacheLimit = 50

// Cache keeps recent assistant replies so repeated requests about the same
// word do not spend API calls. The oldest entry falls out first.
type Cache struct {
	mu    sync.RWMutex
	data  map[string]string
	order []string
}

func NewCache() *Cache {
	return &Cache{
		data: make(map[string]string),
	}
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, exists := c.data[key]

	return result, exists
}

func (c *Cache) Set(key, val string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists {
		c.order = append(c.order, key)
		if len(c.order) > cacheLimit {
			delete(c.data, c.order[0])
			c.order = c.order[1:]
		}
	}
	c.data[key] = val
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
