// Package httputil provides the retry helper shared by the HTTP clients.
//
// Transient failures (transport errors, 5xx responses) are wrapped with
// [Retryable] by the caller; [Policy.Retry] re-runs the operation with
// exponential backoff and gives up immediately on anything else:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := http.DefaultClient.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// [DefaultPolicy] makes 3 attempts with a 1 second initial delay.
package httputil
