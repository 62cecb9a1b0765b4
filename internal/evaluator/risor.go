package evaluator

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/risor/v2"
)

// probe is a trivial script used to verify the bundled engine before
// declaring the binding ready.
const probe = `1 + 2`

func risorEval(ctx context.Context, source string) (string, error) {
	result, err := risor.Eval(ctx, source)
	if err != nil {
		return "", fmt.Errorf("eval: %w", err)
	}
	return fmt.Sprintf("%v", result), nil
}

// Resolve builds the bundled Risor-backed binding. Resolution is expected
// to be invoked once, off the initial render path; the returned capability
// is either Ready or Unavailable, never Unready.
func Resolve(ctx context.Context) Capability {
	if _, err := risorEval(ctx, probe); err != nil {
		return Refused()
	}
	return Bind(risorEval)
}
