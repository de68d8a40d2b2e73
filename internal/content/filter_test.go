// internal/content/filter_test.go
package content

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testPost(slug string, pub time.Time) *Post {
	return &Post{Meta: Metadata{Title: slug, Slug: slug, PubDatetime: pub}}
}

func slugsOf(posts []*Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Meta.Slug
	}
	return out
}

func TestVisibleExcludesDrafts(t *testing.T) {
	draft := testPost("draft", base.Add(-time.Hour))
	draft.Meta.Draft = true
	published := testPost("published", base.Add(-time.Hour))

	got := Visible([]*Post{draft, published}, base, 0)
	assert.Equal(t, []string{"published"}, slugsOf(got))

	// A draft stays hidden no matter how old it is.
	draft.Meta.PubDatetime = base.AddDate(-10, 0, 0)
	got = Visible([]*Post{draft}, base, time.Hour)
	assert.Empty(t, got)
}

func TestVisibleScheduledMargin(t *testing.T) {
	scheduled := testPost("scheduled", base.Add(20*time.Minute))
	margin := 15 * time.Minute

	// Publish time is beyond now+margin: hidden.
	got := Visible([]*Post{scheduled}, base, margin)
	assert.Empty(t, got)

	// Inside the margin window: visible even though still future-dated.
	got = Visible([]*Post{scheduled}, base.Add(6*time.Minute), margin)
	assert.Equal(t, []string{"scheduled"}, slugsOf(got))

	// Zero margin hides anything future-dated.
	got = Visible([]*Post{scheduled}, base, 0)
	assert.Empty(t, got)
}

func TestVisibleOrdersByEffectiveDateDescending(t *testing.T) {
	old := testPost("old", base.AddDate(0, -3, 0))
	mid := testPost("mid", base.AddDate(0, -2, 0))
	edited := testPost("edited", base.AddDate(0, -6, 0))
	mod := base.AddDate(0, -1, 0)
	edited.Meta.ModDatetime = &mod

	got := Visible([]*Post{old, mid, edited}, base, 0)
	assert.Equal(t, []string{"edited", "mid", "old"}, slugsOf(got),
		"an edited post sorts by its modification date")
}

func TestVisibleTieBreaksBySlug(t *testing.T) {
	when := base.Add(-time.Hour)
	b := testPost("banana", when)
	a := testPost("apple", when)
	c := testPost("cherry", when)

	got := Visible([]*Post{b, c, a}, base, 0)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, slugsOf(got))
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	p1 := testPost("zzz", base.Add(-time.Hour))
	p2 := testPost("aaa", base.Add(-2*time.Hour))
	in := []*Post{p1, p2}

	Visible(in, base, 0)
	assert.Equal(t, []string{"zzz", "aaa"}, slugsOf(in), "input order is untouched")
}

func TestPaginate(t *testing.T) {
	posts := make([]*Post, 10)
	for i := range posts {
		// Newest first, matching what Visible produces.
		posts[i] = testPost(fmt.Sprintf("post-%02d", i), base.Add(-time.Duration(i)*time.Hour))
	}

	pages := Paginate(posts, 4)
	require.Len(t, pages, 3)
	assert.Len(t, pages[0], 4)
	assert.Len(t, pages[1], 4)
	assert.Len(t, pages[2], 2)

	// Exhaustive and non-overlapping: concatenation reproduces the input.
	var flat []*Post
	for _, page := range pages {
		flat = append(flat, page...)
	}
	assert.Equal(t, posts, flat)

	// The last page holds the two oldest posts.
	assert.Equal(t, []string{"post-08", "post-09"}, slugsOf(pages[2]))
}

func TestPaginateEmpty(t *testing.T) {
	assert.Empty(t, Paginate(nil, 4), "an empty eligible set yields zero pages")
	assert.Empty(t, Paginate([]*Post{testPost("a", base)}, 0))
}

func TestTagsAndByTag(t *testing.T) {
	a := testPost("a", base)
	a.Meta.Tags = []string{"go", "web"}
	b := testPost("b", base)
	b.Meta.Tags = []string{"go"}

	assert.Equal(t, []string{"go", "web"}, Tags([]*Post{a, b}))
	assert.Equal(t, []string{"a", "b"}, slugsOf(ByTag([]*Post{a, b}, "go")))
	assert.Equal(t, []string{"a"}, slugsOf(ByTag([]*Post{a, b}, "web")))
	assert.Empty(t, ByTag([]*Post{a, b}, "missing"))
}

func TestByYearGroupsByPublishYear(t *testing.T) {
	newYear := testPost("new", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	oldYear := testPost("old", time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC))
	// Edited long after publication, but archives keep it in 2022.
	mod := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	oldYear.Meta.ModDatetime = &mod

	groups := ByYear([]*Post{newYear, oldYear})
	require.Len(t, groups, 2)
	assert.Equal(t, 2024, groups[0].Year)
	assert.Equal(t, []string{"new"}, slugsOf(groups[0].Posts))
	assert.Equal(t, 2022, groups[1].Year)
	assert.Equal(t, []string{"old"}, slugsOf(groups[1].Posts))
}
