// internal/content/filter.go
package content

import (
	"sort"
	"time"
)

// Order returns a freshly sorted copy of posts: newest effective date
// first, ties broken by slug ascending so pagination links stay stable
// across builds.
func Order(posts []*Post) []*Post {
	out := make([]*Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Effective(), out[j].Effective()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].Meta.Slug < out[j].Meta.Slug
	})
	return out
}

// Visible returns the ordered posts eligible for listing at the given
// moment. Drafts never appear; a future-dated post stays hidden until
// now is within margin of its publish time. Pure function of its
// inputs: the input slice is not modified.
func Visible(posts []*Post, now time.Time, margin time.Duration) []*Post {
	horizon := now.Add(margin)
	eligible := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p.Meta.Draft {
			continue
		}
		if p.Meta.PubDatetime.After(horizon) {
			continue
		}
		eligible = append(eligible, p)
	}
	return Order(eligible)
}

// Featured filters an ordered sequence down to featured posts,
// preserving order.
func Featured(posts []*Post) []*Post {
	var out []*Post
	for _, p := range posts {
		if p.Meta.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Paginate partitions posts in order into pages of size; the final page
// may be shorter. An empty input yields zero pages. Concatenating the
// pages reproduces the input exactly.
func Paginate(posts []*Post, size int) [][]*Post {
	if size <= 0 || len(posts) == 0 {
		return nil
	}
	pages := make([][]*Post, 0, (len(posts)+size-1)/size)
	for start := 0; start < len(posts); start += size {
		end := start + size
		if end > len(posts) {
			end = len(posts)
		}
		pages = append(pages, posts[start:end:end])
	}
	return pages
}

// Tags returns every tag used by the given posts, sorted, without
// duplicates.
func Tags(posts []*Post) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range posts {
		for _, t := range p.Meta.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// ByTag returns the posts carrying tag, preserving order.
func ByTag(posts []*Post, tag string) []*Post {
	var out []*Post
	for _, p := range posts {
		for _, t := range p.Meta.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// YearGroup is one archives bucket: a year and its posts in listing
// order.
type YearGroup struct {
	Year  int
	Posts []*Post
}

// ByYear groups an ordered sequence into archive buckets, newest year
// first. Grouping uses the publish date, not the effective date, so an
// edited old post stays in its original year.
func ByYear(posts []*Post) []YearGroup {
	var groups []YearGroup
	index := make(map[int]int)
	for _, p := range posts {
		y := p.Meta.PubDatetime.Year()
		i, ok := index[y]
		if !ok {
			i = len(groups)
			index[y] = i
			groups = append(groups, YearGroup{Year: y})
		}
		groups[i].Posts = append(groups[i].Posts, p)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Year > groups[j].Year })
	return groups
}
