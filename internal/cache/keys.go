package cache

// SearchKey is the response-cache key of a rendered search.
func SearchKey(query string) string {
	return "search:" + query
}

// MovieKey is the response-cache key of a rendered movie detail.
func MovieKey(imdbID string) string {
	return "movie:" + imdbID
}

func etagKey(key string) string {
	return "etag:" + key
}
