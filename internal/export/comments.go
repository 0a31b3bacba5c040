package export

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	// idPageSize is the batch size used when only IDs are fetched.
	idPageSize = 100
	// postChunk caps how many post IDs go into one comments query string.
	postChunk = 100
)

// CommentIndex resolves post type selections to comment IDs by listing the
// selected items and then the comments on them.
type CommentIndex struct {
	registry *Registry
	acc      *Accumulator
	log      *slog.Logger
}

// NewCommentIndex creates a CommentResolver backed by lister.
func NewCommentIndex(registry *Registry, lister Lister, log *slog.Logger) *CommentIndex {
	if log == nil {
		log = slog.Default()
	}
	return &CommentIndex{
		registry: registry,
		acc:      NewAccumulator(lister, nil, log),
		log:      log,
	}
}

// CommentIDs implements CommentResolver. Unknown post types are skipped.
func (c *CommentIndex) CommentIDs(ctx context.Context, postTypes []string) ([]int64, error) {
	var postIDs []int64
	for _, pt := range postTypes {
		t, ok := c.registry.TypeForPostType(pt)
		if !ok {
			c.log.Debug("skipping unknown post type", "post_type", pt)
			continue
		}
		ids, err := c.collectIDs(ctx, t, QueryArgs{})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", pt, err)
		}
		postIDs = append(postIDs, ids...)
	}
	if len(postIDs) == 0 {
		return nil, nil
	}

	var commentIDs []int64
	for start := 0; start < len(postIDs); start += postChunk {
		end := min(start+postChunk, len(postIDs))
		ids, err := c.collectIDs(ctx, TypeComments, QueryArgs{ArgPost: postIDs[start:end]})
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}
		commentIDs = append(commentIDs, ids...)
	}
	return commentIDs, nil
}

func (c *CommentIndex) collectIDs(ctx context.Context, t ContentType, args QueryArgs) ([]int64, error) {
	args[ArgFields] = "id"
	variant, _ := c.registry.Lookup(t)
	res, err := c.acc.Run(ctx, &Query{Type: t, Variant: variant, Args: args}, idPageSize)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(res.Records))
	for _, rec := range res.Records {
		if id, ok := rec.Int64("id"); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
