package notifier

// Bucket is the classification of a trialing subscription for one invocation.
// Exactly one bucket applies per subscription, in the precedence order below.
type Bucket string

const (
	BucketExpired Bucket = "expired"
	BucketDay7    Bucket = "day7"
	BucketDay3    Bucket = "day3"
	BucketDay1    Bucket = "day1"
	BucketNone    Bucket = "none"
)

// DaysLeft returns the warning threshold a bucket represents, or 0 for
// non-warning buckets.
func (b Bucket) DaysLeft() int {
	switch b {
	case BucketDay7:
		return 7
	case BucketDay3:
		return 3
	case BucketDay1:
		return 1
	default:
		return 0
	}
}

// IsWarning reports whether the bucket triggers a reminder email.
func (b Bucket) IsWarning() bool {
	return b == BucketDay7 || b == BucketDay3 || b == BucketDay1
}

// Classify maps the calendar-day ceiling of days-until-expiry onto a bucket.
// Expired takes precedence, then the fixed 7/3/1 thresholds; every other
// value means no action today.
func Classify(daysUntilExpiry int) Bucket {
	switch {
	case daysUntilExpiry <= 0:
		return BucketExpired
	case daysUntilExpiry == 7:
		return BucketDay7
	case daysUntilExpiry == 3:
		return BucketDay3
	case daysUntilExpiry == 1:
		return BucketDay1
	default:
		return BucketNone
	}
}
