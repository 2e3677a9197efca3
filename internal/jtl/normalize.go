package jtl

import "regexp"

// variantSuffix matches a numeric variant suffix such as "-12" at the end of a label.
// JMeter appends these to sub-samples of parametrized requests.
var variantSuffix = regexp.MustCompile(`-[0-9]+$`)

// Normalize strips one trailing "-<digits>" suffix from label.
// Labels without such suffix are returned unchanged.
func Normalize(label string) string {
	loc := variantSuffix.FindStringIndex(label)
	if loc == nil {
		return label
	}
	return label[:loc[0]]
}
