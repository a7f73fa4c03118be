package servicecache

import "context"

type bypassContextKey struct{}

// WithCacheBypass marks ctx so that FindByID skips the cache read. The value
// loaded from the underlying service still refreshes the cache.
func WithCacheBypass(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, bypassContextKey{}, true)
}

// IsCacheBypassed reports whether ctx was marked by WithCacheBypass.
func IsCacheBypassed(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	bypass, _ := ctx.Value(bypassContextKey{}).(bool)
	return bypass
}
