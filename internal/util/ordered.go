package util

// OrderedGroups maps keys to value slices and remembers the order in which
// keys were first added.
type OrderedGroups[K comparable, V any] struct {
	keys   []K
	groups map[K][]V
}

func NewOrderedGroups[K comparable, V any]() *OrderedGroups[K, V] {
	return &OrderedGroups[K, V]{groups: map[K][]V{}}
}

func (g *OrderedGroups[K, V]) Add(key K, value V) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], value)
}

func (g *OrderedGroups[K, V]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

func (g *OrderedGroups[K, V]) Get(key K) []V {
	return g.groups[key]
}

func (g *OrderedGroups[K, V]) Len() int {
	return len(g.keys)
}

// Each visits groups in first-insertion order.
func (g *OrderedGroups[K, V]) Each(fn func(key K, values []V)) {
	for _, k := range g.keys {
		fn(k, g.groups[k])
	}
}
