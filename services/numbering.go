package services

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Clock returns the current time; services take one so tests can pin it.
type Clock func() time.Time

const numberAttempts = 20

func invoiceNumber(t time.Time) string {
	return fmt.Sprintf("INV-%d-%04d", t.Year(), t.UnixMilli()%10000)
}

func caseNumber(t time.Time) string {
	return fmt.Sprintf("CASE-%d", t.UnixMilli())
}

// nextNumber formats candidates from now, stepping one millisecond at a time
// until exists reports a free one.
func nextNumber(ctx context.Context, entity string, now time.Time, format func(time.Time) string, exists func(context.Context, string) (bool, error)) (string, error) {
	for i := 0; i < numberAttempts; i++ {
		candidate := format(now.Add(time.Duration(i) * time.Millisecond))
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fromStore(err, entity, nil)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", &ConflictError{Message: "could not allocate a unique " + strings.ToLower(entity) + " number"}
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
