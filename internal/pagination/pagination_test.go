package pagination

import "testing"

func TestParse(t *testing.T) {
	sortable := []string{"created_at", "name"}

	tests := []struct {
		name      string
		page      string
		size      string
		sort      string
		direction string
		want      Params
	}{
		{"defaults", "", "", "", "", Params{Page: 0, Size: 10, Sort: "created_at", Direction: "asc"}},
		{"explicit values", "2", "25", "name", "desc", Params{Page: 2, Size: 25, Sort: "name", Direction: "desc"}},
		{"size clamped to max", "0", "500", "", "", Params{Page: 0, Size: 100, Sort: "created_at", Direction: "asc"}},
		{"size below minimum falls back", "0", "0", "", "", Params{Page: 0, Size: 10, Sort: "created_at", Direction: "asc"}},
		{"negative page falls back", "-3", "10", "", "", Params{Page: 0, Size: 10, Sort: "created_at", Direction: "asc"}},
		{"unknown sort falls back", "0", "10", "password", "", Params{Page: 0, Size: 10, Sort: "created_at", Direction: "asc"}},
		{"junk direction falls back", "0", "10", "", "sideways", Params{Page: 0, Size: 10, Sort: "created_at", Direction: "asc"}},
		{"desc is case insensitive", "0", "10", "", "DESC", Params{Page: 0, Size: 10, Sort: "created_at", Direction: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.page, tt.size, tt.sort, tt.direction, "created_at", sortable)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestNewPage(t *testing.T) {
	p := Params{Page: 1, Size: 10}

	t.Run("exact multiple", func(t *testing.T) {
		page := NewPage([]int{1, 2, 3}, 30, p)
		if page.TotalPages != 3 {
			t.Fatalf("expected 3 pages, got %d", page.TotalPages)
		}
	})

	t.Run("partial last page", func(t *testing.T) {
		page := NewPage([]int{1}, 31, p)
		if page.TotalPages != 4 {
			t.Fatalf("expected 4 pages, got %d", page.TotalPages)
		}
	})

	t.Run("nil content becomes empty slice", func(t *testing.T) {
		page := NewPage[int](nil, 0, p)
		if page.Content == nil || len(page.Content) != 0 {
			t.Fatalf("expected empty content, got %v", page.Content)
		}
		if page.TotalPages != 0 {
			t.Fatalf("expected 0 pages, got %d", page.TotalPages)
		}
	})
}
