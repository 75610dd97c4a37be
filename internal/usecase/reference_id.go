package usecase

import (
	"fmt"
	"math/rand"
	"time"
)

const referenceIDPrefix = "ILS"

// GenerateReferenceID produces a human-readable submission identifier of the
// form ILS-<year>-<NNNN> with NNNN uniform in [1000, 9999].
//
// 9000 values per year is nowhere near globally unique, so callers must treat
// a collision as retryable: the submission orchestrator attempts the insert
// under a uniqueness condition and regenerates on conflict.
func GenerateReferenceID() string {
	return fmt.Sprintf("%s-%d-%d", referenceIDPrefix, time.Now().Year(), 1000+rand.Intn(9000))
}
