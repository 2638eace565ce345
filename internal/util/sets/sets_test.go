package sets

import "testing"

func TestSet(t *testing.T) {
	s := New[string]()
	if !s.Add("a") {
		t.Fatal("first Add should report newly added")
	}
	if s.Add("a") {
		t.Fatal("second Add of same value should report already present")
	}
	s.Add("b")

	if !s.Has("a") || !s.Has("b") || s.Has("c") {
		t.Fatalf("unexpected membership: %v", s)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestSorted(t *testing.T) {
	s := New[int]()
	s.Add(3)
	s.Add(1)
	s.Add(2)

	got := Sorted(s)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted = %v, want %v", got, want)
		}
	}
}
