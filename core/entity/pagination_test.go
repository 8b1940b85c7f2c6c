package entity

import "testing"

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		size      int
		wantLen   int
		wantFirst int
		wantPages int
	}{
		{"first page", 1, 12, 12, 0, 3},
		{"last page", 3, 12, 1, 24, 3},
		{"past the end", 4, 12, 0, -1, 3},
		{"page zero clamps", 0, 12, 12, 0, 3},
		{"huge page number", 1 << 62, 12, 0, -1, 3},
		{"max int page", int(^uint(0) >> 1), 1, 0, -1, 25},
		{"max int size", 1, int(^uint(0) >> 1), 25, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.page, tt.size)
			if len(p.Items) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(p.Items), tt.wantLen)
			}
			if tt.wantFirst >= 0 && p.Items[0] != tt.wantFirst {
				t.Fatalf("first = %d, want %d", p.Items[0], tt.wantFirst)
			}
			if p.TotalPages != tt.wantPages || p.TotalItems != 25 {
				t.Fatalf("pages = %d total = %d", p.TotalPages, p.TotalItems)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	t.Parallel()

	p := Paginate([]string{}, 1<<62, 12)
	if len(p.Items) != 0 || p.TotalPages != 0 || p.PageNumber != 1<<62 {
		t.Fatalf("page = %+v", p)
	}
}
