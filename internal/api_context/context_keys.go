package api_context

import "context"

type ctxKey string

const (
	MovieIDKey     ctxKey = "movieID"
	SearchQueryKey ctxKey = "searchQuery"
)

func MovieIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(MovieIDKey).(string)
	return id, ok && id != ""
}

func SearchQueryFromContext(ctx context.Context) (string, bool) {
	q, ok := ctx.Value(SearchQueryKey).(string)
	return q, ok && q != ""
}
