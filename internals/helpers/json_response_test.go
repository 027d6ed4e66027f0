package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		count     int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"primeira página cheia", 45, 1, 20, 20, 3, true, false},
		{"página do meio", 45, 2, 20, 20, 3, true, true},
		{"última página parcial", 45, 3, 20, 5, 3, false, true},
		{"lista vazia", 0, 1, 20, 0, 0, false, false},
		{"per_page zerado usa default", 10, 1, 0, 10, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPagination(tt.total, tt.page, tt.perPage, tt.count)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantNext)
			}
			if p.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantPrev)
			}
			if p.Count != tt.count {
				t.Errorf("Count = %d, want %d", p.Count, tt.count)
			}
		})
	}
}
