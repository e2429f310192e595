package store

import (
	"context"
	"sync"
)

// Memory keeps resources in a slice ordered by creation.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	items  []Resource
}

// NewMemory returns an empty store whose first id is 1.
func NewMemory() *Memory {
	return &Memory{nextID: 1, items: []Resource{}}
}

func (m *Memory) List(_ context.Context) ([]Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Resource, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory) Get(_ context.Context, id int64) (Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return Resource{}, ErrNotFound
	}
	return m.items[i], nil
}

func (m *Memory) Create(_ context.Context, name, description string) (Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := Resource{ID: m.nextID, Name: name, Description: description}
	m.nextID++
	m.items = append(m.items, r)
	return r, nil
}

// Update overwrites name and description in place; id and position stay.
func (m *Memory) Update(_ context.Context, id int64, name, description string) (Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return Resource{}, ErrNotFound
	}
	m.items[i].Name = name
	m.items[i].Description = description
	return m.items[i], nil
}

func (m *Memory) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return nil
}

func (m *Memory) Close() error { return nil }

// indexOf does a linear scan; caller holds mu.
func (m *Memory) indexOf(id int64) int {
	for i, r := range m.items {
		if r.ID == id {
			return i
		}
	}
	return -1
}
