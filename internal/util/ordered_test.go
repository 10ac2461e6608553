package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderedGroupsKeepsFirstInsertionOrder(t *testing.T) {
	g := NewOrderedGroups[string, int]()
	g.Add("b", 5)
	g.Add("a", 10)
	g.Add("b", 1)

	if diff := cmp.Diff([]string{"b", "a"}, g.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 1}, g.Get("b")); diff != "" {
		t.Fatalf("group mismatch (-want +got):\n%s", diff)
	}

	var visited []string
	g.Each(func(key string, values []int) {
		visited = append(visited, key)
	})
	if diff := cmp.Diff([]string{"b", "a"}, visited); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
	if g.Len() != 2 {
		t.Fatalf("len=%d", g.Len())
	}
}
