package inventory

import "QuantumStore/internal/catalog"

type Store interface {
	Put(it *catalog.Item)
	Get(id string) (*catalog.Item, bool)
	Delete(id string)
	List() []*catalog.Item
}

// MemStore is keyed by item ID and remembers first-insertion order, so scans
// are repeatable. Not safe for concurrent use.
type MemStore struct {
	m     map[string]*catalog.Item
	order []string
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]*catalog.Item{}}
}

func (s *MemStore) Put(it *catalog.Item) {
	if _, ok := s.m[it.ID]; !ok {
		s.order = append(s.order, it.ID)
	}
	s.m[it.ID] = it
}

func (s *MemStore) Get(id string) (*catalog.Item, bool) {
	it, ok := s.m[id]
	return it, ok
}

func (s *MemStore) Delete(id string) {
	if _, ok := s.m[id]; !ok {
		return
	}
	delete(s.m, id)

	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *MemStore) List() []*catalog.Item {
	out := make([]*catalog.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out
}
