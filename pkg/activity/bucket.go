package activity

// Bucket is an ordinal color-intensity class derived from a count.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketLow
	BucketMedium
	BucketHigh
	BucketMax
)

// BucketCount is the number of distinct buckets. Themes supply one color
// per bucket.
const BucketCount = 5

// Lower bounds of the non-empty buckets.
const (
	mediumThreshold = 5
	highThreshold   = 10
	maxThreshold    = 20
)

// BucketFor maps a count to its bucket. It is monotone non-decreasing in
// count; negative counts are treated as zero.
func BucketFor(count int) Bucket {
	switch {
	case count <= 0:
		return BucketNone
	case count < mediumThreshold:
		return BucketLow
	case count < highThreshold:
		return BucketMedium
	case count < maxThreshold:
		return BucketHigh
	default:
		return BucketMax
	}
}

// String returns a short bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketNone:
		return "none"
	case BucketLow:
		return "low"
	case BucketMedium:
		return "medium"
	case BucketHigh:
		return "high"
	case BucketMax:
		return "max"
	}
	return "unknown"
}
