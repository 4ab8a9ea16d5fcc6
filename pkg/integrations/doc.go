// Package integrations provides the HTTP client shared by upstream API
// clients.
//
// [Client] applies default headers, maps HTTP statuses to the sentinel
// errors of this package ([ErrNotFound], [ErrUnauthorized], [ErrNetwork],
// [RateLimitError]), retries transient failures through [httputil] and
// caches decoded responses in a [cache.Cache]:
//
//	c := integrations.NewClient(store, 24*time.Hour, map[string]string{
//	    "Authorization": "Bearer " + token,
//	})
//	var out Response
//	err := c.Cached(ctx, key, false, &out, func() error {
//	    return c.PostJSON(ctx, endpoint, query, &out)
//	})
//
// The only upstream today is the GitHub GraphQL API in [github].
//
// [httputil]: github.com/matzehuels/pacmaze/pkg/httputil
// [cache.Cache]: github.com/matzehuels/pacmaze/pkg/cache.Cache
// [github]: github.com/matzehuels/pacmaze/pkg/integrations/github
package integrations
