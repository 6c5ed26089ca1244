package resolve

import (
	"regexp"
	"strings"
)

// Full-width digits and punctuation folded to half-width, 年/月 treated
// as date separators.
var widthFolder = strings.NewReplacer(
	"０", "0", "１", "1", "２", "2", "３", "3", "４", "4",
	"５", "5", "６", "6", "７", "7", "８", "8", "９", "9",
	"／", "/", "：", ":", "．", ".", "　", " ",
	"年", "/", "月", "/",
)

// A trailing 日 right after digits closes a date (5月1日); 日 elsewhere
// (明日, 今日) must survive for the relative keywords.
var trailingDayRx = regexp.MustCompile(`(\d)日`)

// Normalize folds text into the canonical form the matchers run on:
// half-width digits and punctuation, slash-separated date components,
// lower-cased Latin letters.
func Normalize(text string) string {
	s := widthFolder.Replace(text)
	s = trailingDayRx.ReplaceAllString(s, "$1")
	return strings.ToLower(s)
}
