package productapi

import "sync"

// Product is a single catalog record.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Store holds the catalog in insertion order for the lifetime of the
// process. All access goes through the mutex; id assignment happens under
// the write lock, so concurrent creates cannot hand out the same id.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

// NewStore returns a store seeded with the fixed demo catalog.
func NewStore() *Store {
	return &Store{products: []Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Stock: 50},
		{ID: 2, Name: "Mouse", Price: 29.99, Stock: 200},
		{ID: 3, Name: "Keyboard", Price: 79.99, Stock: 150},
		{ID: 4, Name: "Monitor", Price: 299.99, Stock: 75},
		{ID: 5, Name: "Webcam", Price: 89.99, Stock: 100},
	}}
}

// NewEmptyStore returns a store with no seed data.
func NewEmptyStore() *Store { return &Store{} }

// List returns a copy of all products in insertion order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the first product with the given id.
func (s *Store) Get(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Add appends a new product under the next free id: one past the highest
// existing id, or 1 for an empty catalog.
func (s *Store) Add(name string, price float64, stock int) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, p := range s.products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}

	p := Product{ID: next, Name: name, Price: price, Stock: stock}
	s.products = append(s.products, p)
	return p
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
