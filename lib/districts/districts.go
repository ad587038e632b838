// Package districts converts between the two formats Massachusetts uses
// for legislative district names: word-form ordinals ("First Middlesex")
// and numeric ordinals ("1st Middlesex"). It is a display/lookup helper
// only; grouping elsewhere is always done on the raw district string.
package districts

import "strings"

var wordToNumber = map[string]string{
	"First":          "1st",
	"Second":         "2nd",
	"Third":          "3rd",
	"Fourth":         "4th",
	"Fifth":          "5th",
	"Sixth":          "6th",
	"Seventh":        "7th",
	"Eighth":         "8th",
	"Ninth":          "9th",
	"Tenth":          "10th",
	"Eleventh":       "11th",
	"Twelfth":        "12th",
	"Thirteenth":     "13th",
	"Fourteenth":     "14th",
	"Fifteenth":      "15th",
	"Sixteenth":      "16th",
	"Seventeenth":    "17th",
	"Eighteenth":     "18th",
	"Nineteenth":     "19th",
	"Twentieth":      "20th",
	"Twenty-First":   "21st",
	"Twenty-Second":  "22nd",
	"Twenty-Third":   "23rd",
	"Twenty-Fourth":  "24th",
	"Twenty-Fifth":   "25th",
	"Twenty-Sixth":   "26th",
	"Twenty-Seventh": "27th",
	"Twenty-Eighth":  "28th",
	"Twenty-Ninth":   "29th",
	"Thirtieth":      "30th",
	"Thirty-First":   "31st",
	"Thirty-Second":  "32nd",
	"Thirty-Third":   "33rd",
	"Thirty-Fourth":  "34th",
	"Thirty-Fifth":   "35th",
	"Thirty-Sixth":   "36th",
	"Thirty-Seventh": "37th",
}

var numberToWord = func() map[string]string {
	out := make(map[string]string, len(wordToNumber))
	for word, num := range wordToNumber {
		out[num] = word
	}
	return out
}()

func replaceLeadingWord(name string, mapping map[string]string) string {
	head, rest := name, ""
	if i := strings.IndexByte(name, ' '); i >= 0 {
		head, rest = name[:i], name[i:]
	}
	replacement, ok := mapping[head]
	if !ok {
		return name
	}
	return replacement + rest
}

// WordToNumber converts a district name like "First Middlesex" to
// "1st Middlesex". Names without a known leading ordinal word are
// returned unchanged.
func WordToNumber(name string) string {
	return replaceLeadingWord(name, wordToNumber)
}

// NumberToWord converts a district name like "1st Middlesex" to
// "First Middlesex". Names without a known leading numeric ordinal are
// returned unchanged.
func NumberToWord(name string) string {
	return replaceLeadingWord(name, numberToWord)
}
