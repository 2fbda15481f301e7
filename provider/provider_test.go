package provider

import (
	"context"
	"testing"
)

type stubProvider struct {
	name      string
	available bool
}

func (s *stubProvider) Name() string                       { return s.name }
func (s *stubProvider) IsAvailable(_ context.Context) bool { return s.available }

func stubFactory(name string, available bool) Factory[*stubProvider] {
	return func(_ map[string]any) (*stubProvider, error) {
		return &stubProvider{name: name, available: available}, nil
	}
}

func TestRegistry_CreateAndList(t *testing.T) {
	r := NewRegistry[*stubProvider]()
	r.RegisterFactory("b", stubFactory("b", true))
	r.RegisterFactory("a", stubFactory("a", true))

	names := r.List()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("List() = %v, want [a b]", names)
	}

	p, err := r.Create("a", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name() != "a" {
		t.Errorf("Name() = %q, want a", p.Name())
	}

	if _, err := r.Create("missing", nil); err == nil {
		t.Fatal("expected error for unregistered factory")
	}
}

func TestPrioritySelector(t *testing.T) {
	providers := map[string]*stubProvider{
		"down":    {name: "down", available: false},
		"standby": {name: "standby", available: true},
		"primary": {name: "primary", available: true},
	}

	s := &PrioritySelector[*stubProvider]{Priority: []string{"down", "primary", "standby"}}
	p, err := s.Select(context.Background(), providers)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if p.Name() != "primary" {
		t.Errorf("selected %q, want primary", p.Name())
	}

	none := &PrioritySelector[*stubProvider]{Priority: []string{"missing"}}
	if _, err := none.Select(context.Background(), providers); err == nil {
		t.Fatal("expected error when priority list matches nothing")
	}
}

func TestHealthCheckSelector(t *testing.T) {
	providers := map[string]*stubProvider{
		"a": {name: "a", available: false},
		"b": {name: "b", available: true},
	}

	s := &HealthCheckSelector[*stubProvider]{}
	p, err := s.Select(context.Background(), providers)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if p.Name() != "b" {
		t.Errorf("selected %q, want b", p.Name())
	}

	if _, err := s.Select(context.Background(), map[string]*stubProvider{}); err == nil {
		t.Fatal("expected error with no providers")
	}
}

func TestManager_InitializeAndGet(t *testing.T) {
	m := NewManager[*stubProvider](NewRegistry[*stubProvider](), &HealthCheckSelector[*stubProvider]{})
	m.Register("alpha", stubFactory("alpha", true))
	m.Register("beta", stubFactory("beta", true))

	if err := m.Initialize("alpha", nil); err != nil {
		t.Fatalf("Initialize alpha: %v", err)
	}
	if err := m.Initialize("beta", nil); err != nil {
		t.Fatalf("Initialize beta: %v", err)
	}

	p, err := m.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name() != "alpha" {
		t.Errorf("selector pick = %q, want alpha (first in name order)", p.Name())
	}

	m.SetDefault("beta")
	p, err = m.Get(context.Background())
	if err != nil {
		t.Fatalf("Get with default: %v", err)
	}
	if p.Name() != "beta" {
		t.Errorf("default pick = %q, want beta", p.Name())
	}
}

func TestManager_InitializeUnknownFactory(t *testing.T) {
	m := NewManager[*stubProvider](NewRegistry[*stubProvider](), &HealthCheckSelector[*stubProvider]{})
	if err := m.Initialize("ghost", nil); err == nil {
		t.Fatal("expected error for unknown factory")
	}
}
