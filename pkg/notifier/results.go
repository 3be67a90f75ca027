package notifier

import (
	"fmt"
	"sync"
)

// Results aggregates the outcome of one batch invocation. All mutators are
// safe for concurrent use so the batch can process subscriptions in parallel.
type Results struct {
	mu sync.Mutex

	Total   int      `json:"total"`
	Day7    int      `json:"day7"`
	Day3    int      `json:"day3"`
	Day1    int      `json:"day1"`
	Expired int      `json:"expired"`
	Errors  []string `json:"errors"`
}

func (r *Results) scanned() {
	r.mu.Lock()
	r.Total++
	r.mu.Unlock()
}

func (r *Results) warned(bucket Bucket) {
	r.mu.Lock()
	switch bucket {
	case BucketDay7:
		r.Day7++
	case BucketDay3:
		r.Day3++
	case BucketDay1:
		r.Day1++
	}
	r.mu.Unlock()
}

func (r *Results) expired() {
	r.mu.Lock()
	r.Expired++
	r.mu.Unlock()
}

func (r *Results) fail(id fmt.Stringer, err error) {
	r.mu.Lock()
	r.Errors = append(r.Errors, fmt.Sprintf("subscription %s: %v", id, err))
	r.mu.Unlock()
}

func newResults() *Results {
	return &Results{Errors: []string{}}
}
