package productapi

import (
	"sync"
	"testing"
)

func TestNewStoreSeed(t *testing.T) {
	s := NewStore()

	got := s.List()
	if len(got) != 5 {
		t.Fatalf("seed count=%d want=5", len(got))
	}
	for i, p := range got {
		if p.ID != i+1 {
			t.Fatalf("products[%d].ID=%d want=%d", i, p.ID, i+1)
		}
	}
	if got[0].Name != "Laptop" || got[0].Price != 999.99 || got[0].Stock != 50 {
		t.Fatalf("unexpected first seed product: %+v", got[0])
	}
}

func TestStoreGet(t *testing.T) {
	s := NewStore()

	p, ok := s.Get(3)
	if !ok {
		t.Fatalf("expected id=3 to exist")
	}
	if p.Name != "Keyboard" || p.Price != 79.99 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok := s.Get(99); ok {
		t.Fatalf("expected id=99 to be missing")
	}
}

func TestStoreAddAssignsNextID(t *testing.T) {
	s := NewStore()

	p := s.Add("Pen", 1.99, 500)
	if p.ID != 6 {
		t.Fatalf("id=%d want=6", p.ID)
	}

	q := s.Add("Notebook", 4.50, 120)
	if q.ID != 7 {
		t.Fatalf("id=%d want=7", q.ID)
	}

	if s.Count() != 7 {
		t.Fatalf("count=%d want=7", s.Count())
	}
}

func TestStoreAddEmpty(t *testing.T) {
	s := NewEmptyStore()

	p := s.Add("Pen", 1.99, 500)
	if p.ID != 1 {
		t.Fatalf("id=%d want=1", p.ID)
	}
}

func TestStoreListReturnsCopy(t *testing.T) {
	s := NewStore()

	got := s.List()
	got[0].Name = "mutated"

	again := s.List()
	if again[0].Name != "Laptop" {
		t.Fatalf("store mutated through List result: %+v", again[0])
	}
}

func TestStoreConcurrentAdds(t *testing.T) {
	s := NewStore()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Add("Pen", 1.99, 500)
		}()
	}
	wg.Wait()

	got := s.List()
	if len(got) != 5+n {
		t.Fatalf("count=%d want=%d", len(got), 5+n)
	}

	seen := make(map[int]bool, len(got))
	for _, p := range got {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
}
