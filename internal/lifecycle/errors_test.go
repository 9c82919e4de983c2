package lifecycle

import (
	"fmt"
	"testing"
)

func TestDistributionNotFoundPredicate(t *testing.T) {
	err := ErrDistributionNotFound("Ubuntu")
	if !IsDistributionNotFound(err) {
		t.Fatalf("predicate rejected its own error")
	}
	if got := err.Error(); got != "distribution not found: Ubuntu" {
		t.Fatalf("unexpected message %q", got)
	}
	if IsDistributionNotFound(fmt.Errorf("other")) {
		t.Fatalf("predicate matched unrelated error")
	}
	if IsDistributionNotFound(nil) {
		t.Fatalf("predicate matched nil")
	}
}
