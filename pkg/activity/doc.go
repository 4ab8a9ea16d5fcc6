// Package activity turns a contribution calendar into an immutable grid of
// counted cells.
//
// A [Calendar] is the normalized shape of the data the GitHub GraphQL API
// returns: an ordered list of weeks, each holding up to seven days. [NewGrid]
// places each day at (weekday, week index) on a 7-row [Grid]. The weekday
// index comes from the payload and is never re-derived from the date.
//
// Each [Cell] maps to a color [Bucket] through fixed thresholds:
//
//	count == 0        -> BucketNone
//	0 < count < 5     -> BucketLow
//	5 <= count < 10   -> BucketMedium
//	10 <= count < 20  -> BucketHigh
//	count >= 20       -> BucketMax
package activity
