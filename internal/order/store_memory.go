package order

import "github.com/shopspring/decimal"

// MemStore keeps orders in creation order. Not safe for concurrent use.
type MemStore struct {
	m     map[string]Order
	order []string
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]Order{}}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Create(o Order) error {
	if _, ok := s.m[o.ID]; !ok {
		s.order = append(s.order, o.ID)
	}
	s.m[o.ID] = o
	return nil
}

func (s *MemStore) Get(id string) (Order, bool, error) {
	o, ok := s.m[id]
	return o, ok, nil
}

func (s *MemStore) List() ([]Order, error) {
	out := make([]Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out, nil
}

// Revenue sums the totals of every stored order.
func Revenue(s Store) (decimal.Decimal, error) {
	orders, err := s.List()
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.Total)
	}
	return sum, nil
}
