package sqlite

import (
	"testing"
)

func TestQueryBuilder_Build(t *testing.T) {
	query, params, err := NewQueryBuilder().
		Select("id", "slug").
		From("pages").
		Where("kind", "=", "news").
		Where("live", "=", 1).
		WhereNotNull("first_published_at").
		OrderBy("first_published_at", true).
		Limit(3).
		Build()

	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "SELECT id, slug FROM pages WHERE kind = ? AND live = ? AND first_published_at IS NOT NULL ORDER BY first_published_at DESC LIMIT 3"
	if query != want {
		t.Errorf("query = %q\nwant    %q", query, want)
	}
	if len(params) != 2 || params[0] != "news" || params[1] != 1 {
		t.Errorf("params = %v", params)
	}
}

func TestQueryBuilder_SelectAllWithoutLimit(t *testing.T) {
	query, _, err := NewQueryBuilder().From("pages").Limit(0).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if query != "SELECT * FROM pages" {
		t.Errorf("query = %q", query)
	}
}

func TestQueryBuilder_ContainsParamsFollowPlaceholderOrder(t *testing.T) {
	query, params, err := NewQueryBuilder().
		Select("id").
		From("pages").
		Where("kind", "=", "drug").
		WhereContains("search_text", "Flu").
		OrderByContainsFirst("title", "Flu").
		OrderBy("id", false).
		Build()

	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := `SELECT id FROM pages WHERE kind = ? AND search_text LIKE ? ESCAPE '\' ORDER BY CASE WHEN title LIKE ? ESCAPE '\' THEN 0 ELSE 1 END, id ASC`
	if query != want {
		t.Errorf("query = %q\nwant    %q", query, want)
	}
	if len(params) != 3 || params[0] != "drug" || params[1] != "%flu%" || params[2] != "%flu%" {
		t.Errorf("params = %v", params)
	}
}

func TestQueryBuilder_WhereIn(t *testing.T) {
	query, params, err := NewQueryBuilder().
		Select("id").
		From("pages").
		Where("kind", "=", "article").
		WhereIn("category_slug", "sleep", "fitness").
		Build()

	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "SELECT id FROM pages WHERE kind = ? AND category_slug IN (?, ?)"
	if query != want {
		t.Errorf("query = %q\nwant    %q", query, want)
	}
	if len(params) != 3 || params[1] != "sleep" || params[2] != "fitness" {
		t.Errorf("params = %v", params)
	}
}

func TestQueryBuilder_WhereInWithoutValuesMatchesNothing(t *testing.T) {
	query, params, err := NewQueryBuilder().Select("id").From("pages").WhereIn("category_slug").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if query != "SELECT id FROM pages WHERE 0" {
		t.Errorf("query = %q", query)
	}
	if len(params) != 0 {
		t.Errorf("params = %v", params)
	}
}

func TestQueryBuilder_RejectsUnsafeInput(t *testing.T) {
	tests := []struct {
		name string
		qb   *QueryBuilder
	}{
		{"injected column", NewQueryBuilder().Select("id; DROP TABLE pages;").From("pages")},
		{"injected table", NewQueryBuilder().From("pages--")},
		{"bad operator", NewQueryBuilder().From("pages").Where("kind", "LIKE", "x")},
		{"injected order", NewQueryBuilder().From("pages").OrderBy("id DESC", false)},
		{"missing table", NewQueryBuilder().Select("id")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.qb.Build(); err == nil {
				t.Error("Build() should fail")
			}
		})
	}
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Flu", "%flu%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}

	for _, tt := range tests {
		if got := ContainsPattern(tt.in); got != tt.want {
			t.Errorf("ContainsPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
