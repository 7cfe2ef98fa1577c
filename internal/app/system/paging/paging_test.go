package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/?page=1", 1},
		{"/?page=3", 3},
		{"/", 1},
		{"/?page=0", 1},
		{"/?page=-2", 1},
		{"/?page=abc", 1},
		{"/?page=", 1},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := ParsePage(r); got != tt.want {
				t.Errorf("ParsePage(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 8, 1},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
		{100, 10, 10},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		page     int
		total    int64
		pageSize int
		want     int
	}{
		{1, 20, 8, 1},
		{3, 20, 8, 3},
		{4, 20, 8, 3},  // beyond last page clamps to last
		{99, 20, 8, 3}, // far beyond
		{0, 20, 8, 1},
		{-5, 20, 8, 1},
		{5, 0, 8, 1}, // empty result set still has page 1
	}

	for _, tt := range tests {
		if got := Clamp(tt.page, tt.total, tt.pageSize); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.page, tt.total, tt.pageSize, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	p := Resolve(2, 20, 8)
	if p.Page != 2 || p.TotalPages != 3 || !p.HasPrev || !p.HasNext {
		t.Errorf("Resolve(2, 20, 8) = %+v", p)
	}

	p = Resolve(9, 20, 8)
	if p.Page != 3 || p.HasNext {
		t.Errorf("beyond-last page should clamp to last with no next: %+v", p)
	}

	p = Resolve(1, 0, 8)
	if p.Page != 1 || p.TotalPages != 1 || p.HasPrev || p.HasNext {
		t.Errorf("empty set should resolve to single empty page: %+v", p)
	}
}
