package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

// Singular is an in-process cache of a single T value.
type Singular[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	key string

	c *cache.Cache
}

func (c *Singular[T]) Get(dest *T) error {
	result, ok := c.c.Get(c.key)
	if !ok {
		return ErrNotFound
	}
	v, ok := result.(T)
	if !ok {
		return ErrNotFound
	}
	*dest = v

	return nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) error {
	c.c.Set(c.key, value, expire)
	return nil
}

// MutexGetSet gets the value and writes it to dest, or if absent computes it
// via valueFunc exactly once among concurrent callers, stores and returns it.
func (c *Singular[T]) MutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	err := c.Get(dest)
	if err == nil {
		return nil
	}
	// onwards, cache key does not exist

	return c.slowMutexGetSet(dest, valueFunc, expire)
}

func (c *Singular[T]) slowMutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	c.m.Lock()
	defer c.m.Unlock()
	err := c.Get(dest)

	if err == nil {
		return nil
	}

	value, err := valueFunc()
	if err != nil {
		return err
	}

	if err := c.Set(value, expire); err != nil {
		return err
	}

	*dest = value

	return nil
}

func (c *Singular[T]) Delete() error {
	c.c.Flush()
	return nil
}
