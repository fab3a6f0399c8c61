package appcore

import (
	"context"
	"sort"

	"github.com/feedrecap/appcore/rest"
)

// Feed is the curated post list ready for display: newest first, with the
// distinct category set for the filter bar.
type Feed struct {
	Posts      []rest.Post
	Categories []string
}

// FeedPosts fetches the feed for the signed-in session.
func (e *Engine) FeedPosts(ctx context.Context) (*Feed, error) {
	email, err := e.sessionEmail()
	if err != nil {
		return nil, err
	}

	posts, err := e.api.Posts(ctx, email)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time.After(posts[j].Time)
	})

	seen := make(map[string]struct{})
	var categories []string
	for _, p := range posts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return &Feed{Posts: posts, Categories: categories}, nil
}

// FilterPostsByCategory mirrors the feed screen's toggle: selecting a
// category narrows the list, selecting it again clears the filter.
func FilterPostsByCategory(posts []rest.Post, selected, category string) ([]rest.Post, string) {
	if category == selected {
		return posts, ""
	}

	filtered := make([]rest.Post, 0, len(posts))
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, category
}
