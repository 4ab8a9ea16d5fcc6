package httputil_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/pacmaze/pkg/httputil"
)

func ExamplePolicy_Retry() {
	policy := httputil.Policy{Attempts: 3, Delay: time.Millisecond}

	attempt := 0
	err := policy.Retry(context.Background(), func() error {
		attempt++
		if attempt < 3 {
			return httputil.Retryable(errors.New("connection reset"))
		}
		return nil
	})
	fmt.Println("Attempts:", attempt)
	fmt.Println("Error:", err)
	// Output:
	// Attempts: 3
	// Error: <nil>
}
