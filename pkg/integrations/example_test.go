package integrations_test

import (
	"fmt"

	"github.com/matzehuels/pacmaze/pkg/integrations"
)

func ExampleRateLimitError() {
	fmt.Println(&integrations.RateLimitError{RetryAfter: 60})
	fmt.Println(&integrations.RateLimitError{})
	// Output:
	// rate limited: retry after 60 seconds
	// rate limited
}
