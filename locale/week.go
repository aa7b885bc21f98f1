// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import "time"

// Week start rules derived from the CLDR supplemental week data,
// keyed by region. Regions not listed start their week on Monday per
// ISO 8601.
var (
	sundayFirst = regionSet(
		"AG", "AS", "BD", "BR", "BS", "BT", "BW", "BZ", "CA", "CN",
		"CO", "DM", "DO", "ET", "GT", "GU", "HK", "HN", "ID", "IL",
		"IN", "JM", "JP", "KE", "KH", "KR", "LA", "MH", "MM", "MO",
		"MT", "MX", "MZ", "NI", "NP", "PA", "PE", "PH", "PK", "PR",
		"PY", "SA", "SG", "SV", "TH", "TT", "TW", "UM", "US", "VE",
		"VI", "WS", "YE", "ZA", "ZW",
	)
	saturdayFirst = regionSet(
		"AE", "AF", "BH", "DJ", "DZ", "EG", "IQ", "IR", "JO", "KW",
		"LY", "OM", "QA", "SD", "SY",
	)
)

func regionSet(regions ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		s[r] = struct{}{}
	}
	return s
}

// FirstDay returns the weekday on which a week starts in this locale.
// The region is inferred from the language tag when the locale does
// not name one explicitly, e.g. "en" resolves to the United States.
func (l Locale) FirstDay() time.Weekday {
	region, _ := l.tag.Region()
	code := region.String()
	if _, ok := sundayFirst[code]; ok {
		return time.Sunday
	}
	if _, ok := saturdayFirst[code]; ok {
		return time.Saturday
	}
	return time.Monday
}
