// Package extract provides pure text feature extractors for experience analysis.
// All functions are synchronous pattern matchers with no external calls; missing
// signals are reported via empty or sentinel values, never errors.
package extract

import (
	"regexp"
	"strconv"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// yearsPatterns are tried in order; more specific phrasings come first so that
// compound phrases are not mis-parsed by the generic trailing pattern.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)experience\s*:\s*(\d{1,2})\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)minimum\s+(?:of\s+)?(\d{1,2})\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)at\s+least\s+(\d{1,2})\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s+of\s+experience`),
	regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s+of\s+\w`),
	regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s+in\s+\w`),
	regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s+required`),
	regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)`),
}

// ExtractYears returns the first years-of-experience figure found in the text,
// or types.YearsNotFound if no pattern matches.
func ExtractYears(text string) int {
	if text == "" {
		return types.YearsNotFound
	}

	for _, pattern := range yearsPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return years
	}

	return types.YearsNotFound
}
