package pagination

import "testing"

func TestResolvePage(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"absent", "", 0},
		{"negative", "-3", 0},
		{"minus prefix only", "-", 0},
		{"unparsable", "abc", 0},
		{"zero", "0", 0},
		{"positive", "7", 7},
		{"large", "1000", 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolvePage(tc.raw); got != tc.want {
				t.Fatalf("ResolvePage(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	for _, page := range []int{0, 1, 5, 123} {
		if got := Offset(page); got != page*10 {
			t.Fatalf("Offset(%d) = %d, want %d", page, got, page*10)
		}
	}
}

func TestNewState(t *testing.T) {
	state := NewState(4)
	if state.Page != 4 || state.Next != 5 || state.Prev != 3 {
		t.Fatalf("NewState(4) = %+v, want {4 5 3}", state)
	}
}

func TestNewStateFirstPage(t *testing.T) {
	// Prev is deliberately unclamped; the template suppresses the link.
	state := NewState(0)
	if state.Prev != -1 {
		t.Fatalf("NewState(0).Prev = %d, want -1", state.Prev)
	}
	if state.Next != 1 {
		t.Fatalf("NewState(0).Next = %d, want 1", state.Next)
	}
}
