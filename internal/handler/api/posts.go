// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"alumni-go/internal/cache"
	"alumni-go/internal/store"
	"alumni-go/internal/util"
)

// Cache keys and TTL for the public news surfaces.
const (
	cacheKeyHighlighted = "posts:highlighted"
	cacheKeyFeatured    = "posts:featured"
	postCacheTTL        = 5 * time.Minute
)

// postResponse is the public JSON projection of a listed post. Nullable
// columns become pointers so absent values serialize as null instead of
// database wrapper objects.
type postResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Image         *string    `json:"image"`
	PublishedAt   *time.Time `json:"publishedAt"`
	ViewCount     int64      `json:"viewCount"`
	AuthorName    string     `json:"authorName"`
	CategoryName  *string    `json:"categoryName"`
	CategorySlug  *string    `json:"categorySlug"`
	CategoryColor *string    `json:"categoryColor"`
}

func toPostResponse(r store.PublicPostRow) postResponse {
	return postResponse{
		ID:            r.ID,
		Title:         r.Title,
		Slug:          r.Slug,
		Excerpt:       r.Excerpt,
		Image:         util.PtrFromNullString(r.Image),
		PublishedAt:   util.PtrFromNullTime(r.PublishedAt),
		ViewCount:     r.ViewCount,
		AuthorName:    r.AuthorName,
		CategoryName:  util.PtrFromNullString(r.CategoryName),
		CategorySlug:  util.PtrFromNullString(r.CategorySlug),
		CategoryColor: util.PtrFromNullString(r.CategoryColor),
	}
}

// HighlightedPosts handles GET /api/news/highlighted. Only approved posts
// carrying the highlighted flag are returned, newest update first.
func (h *Handler) HighlightedPosts(w http.ResponseWriter, r *http.Request) {
	h.servePostList(w, r, cacheKeyHighlighted, h.queries.ListHighlightedPosts)
}

// FeaturedPosts handles GET /api/news/featured. Approved featured posts are
// returned in rank order, unranked ones last.
func (h *Handler) FeaturedPosts(w http.ResponseWriter, r *http.Request) {
	h.servePostList(w, r, cacheKeyFeatured, h.queries.ListFeaturedPosts)
}

func (h *Handler) servePostList(w http.ResponseWriter, r *http.Request, key string, list func(context.Context) ([]store.PublicPostRow, error)) {
	if h.cache != nil {
		cached, err := cache.GetTyped[[]postResponse](r.Context(), h.cache, key)
		if err == nil {
			WriteSuccess(w, "", cached)
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Warn("post list cache read failed", "key", key, "error", err)
		}
	}

	posts, err := list(r.Context())
	if err != nil {
		slog.Error("failed to list posts", "key", key, "error", err)
		WriteInternalError(w)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}

	if h.cache != nil {
		if err := cache.SetTyped(r.Context(), h.cache, key, out, postCacheTTL); err != nil {
			slog.Warn("post list cache write failed", "key", key, "error", err)
		}
	}

	WriteSuccess(w, "", out)
}

// InvalidatePostCaches drops the cached news surfaces. Called after any
// post mutation so stale lists never outlive the TTL unnecessarily.
func (h *Handler) InvalidatePostCaches(ctx context.Context) {
	if h.cache == nil {
		return
	}
	for _, key := range []string{cacheKeyHighlighted, cacheKeyFeatured} {
		if err := h.cache.Delete(ctx, key); err != nil {
			slog.Warn("post cache invalidation failed", "key", key, "error", err)
		}
	}
}
