// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package cache provides a capacity-bounded, thread-safe LRU cache.
package cache

import "sync"

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 10000

// entry is a node of the recency list.
type entry[V any] struct {
	key   string
	value V
	prev  *entry[V]
	next  *entry[V]
}

// LRUCache is a thread-safe Least Recently Used cache with O(1) Get, Put and
// eviction. It has no expiry: entries live until evicted or cleared.
//
// A doubly-linked list orders entries by recency and a map indexes them by
// key. head.next is the most recently used entry, tail.prev the least.
type LRUCache[V any] struct {
	mu sync.Mutex

	capacity int
	items    map[string]*entry[V]

	// head and tail are sentinels
	head *entry[V]
	tail *entry[V]

	evictions int64
}

// NewLRUCache creates a cache holding at most capacity entries.
func NewLRUCache[V any](capacity int) *LRUCache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &LRUCache[V]{
		capacity: capacity,
		items:    make(map[string]*entry[V], capacity),
		head:     &entry[V]{},
		tail:     &entry[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get returns the value stored under key and marks it most recently used.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.moveToFront(e)
		return e.value, true
	}
	var zero V
	return zero, false
}


// Put stores value under key. When the cache is full the least recently
// used entry is evicted. It reports whether an eviction happened.
func (c *LRUCache[V]) Put(key string, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.value = value
		c.moveToFront(e)
		return false
	}

	e := &entry[V]{key: key, value: value}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.evictOldest()
		evicted = true
	}
	return evicted
}


// Len returns the number of entries.
func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the maximum number of entries.
func (c *LRUCache[V]) Capacity() int {
	return c.capacity
}

// Evictions returns the number of capacity evictions since creation or the
// last Clear.
func (c *LRUCache[V]) Evictions() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictions
}


// Clear removes every entry.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.evictions = 0
}

// Internal methods (must be called with lock held)

func (c *LRUCache[V]) addToFront(e *entry[V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRUCache[V]) moveToFront(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRUCache[V]) removeEntry(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

func (c *LRUCache[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.evictions++
}
