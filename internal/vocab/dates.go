package vocab

import (
	"regexp"
	"strings"
)

// Date patterns are deliberately loose: durations are matched and carried as
// raw strings, never normalized to a calendar type.
const (
	monthExpr = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	yearExpr  = `(?:19|20)\d{2}`
	endExpr   = `(?:present|current|now|today)`
	sepExpr   = `\s*(?:-|–|—|to|till|until)\s*`
)

var (
	monthYearRe = regexp.MustCompile(`(?i)\b` + monthExpr + `,?\s*` + yearExpr + `\b`)
	yearRe      = regexp.MustCompile(`\b` + yearExpr + `\b`)
	presentRe   = regexp.MustCompile(`(?i)\b` + endExpr + `\b`)

	rangeRe = regexp.MustCompile(`(?i)\b(?:` + monthExpr + `,?\s*)?` + yearExpr + sepExpr +
		`(?:(?:` + monthExpr + `,?\s*)?` + yearExpr + `|` + endExpr + `)\b`)

	// durationRe matches the widest span a duration can occupy inside a
	// combined "Title  Jan 2020 - Dec 2022" line, parentheses included.
	durationRe = regexp.MustCompile(`(?i)\(?\s*(?:` + monthExpr + `,?\s*)?` + yearExpr +
		`(?:` + sepExpr + `(?:(?:` + monthExpr + `,?\s*)?` + yearExpr + `|` + endExpr + `))?\s*\)?`)
)

// HasDate reports whether s contains any month-year or bare-year pattern.
func HasDate(s string) bool {
	return monthYearRe.MatchString(s) || yearRe.MatchString(s)
}

// HasDateRange reports whether s contains a date range such as
// "Jan 2020 - Dec 2022", "2019-2021", or "2020 - present".
func HasDateRange(s string) bool {
	return rangeRe.MatchString(s)
}

// HasPresentMarker reports whether s contains an open-ended duration marker.
func HasPresentMarker(s string) bool {
	return presentRe.MatchString(s)
}

// LooksLikeDuration reports whether s reads as a duration value: a month-year,
// a date range, or an open-ended marker.
func LooksLikeDuration(s string) bool {
	return rangeRe.MatchString(s) || monthYearRe.MatchString(s) || presentRe.MatchString(s)
}

// ExtractYear returns the first four-digit year in s, or "".
func ExtractYear(s string) string {
	return yearRe.FindString(s)
}

// SplitTitleDates splits a combined "Title    Jan 2020 - Dec 2022" line at the
// date-pattern boundary. It returns the text before the date span and the date
// span itself, stripped of wrapping punctuation. ok is false when s contains
// no date.
func SplitTitleDates(s string) (title, dates string, ok bool) {
	loc := durationRe.FindStringIndex(s)
	if loc == nil {
		return s, "", false
	}
	title = strings.TrimRight(strings.TrimSpace(s[:loc[0]]), ",|-–—(")
	title = strings.TrimSpace(title)
	dates = strings.TrimSpace(s[loc[0]:loc[1]])
	dates = strings.Trim(dates, "()")
	dates = strings.TrimSpace(dates)
	return title, dates, true
}
