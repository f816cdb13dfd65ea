// Package form holds the pure normalization helpers shared by the admin
// and public form handlers: comma separated lists, checkbox toggles,
// publish timestamps and slug generation.
package form

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var disallowedSlugChars = regexp.MustCompile(`[^a-z0-9\s-]+`)

// Slugify converts a title to a URL-friendly slug: accents are
// transliterated, everything outside [a-z0-9] acts as a separator and
// separator runs collapse into a single hyphen.
// The function is idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = disallowedSlugChars.ReplaceAllString(result, "")
	// Existing hyphens count as separators so re-slugging a slug is a no-op.
	result = strings.ReplaceAll(result, "-", " ")

	return strings.Join(strings.Fields(result), "-")
}

// SplitList parses a comma separated form field into a trimmed list.
// An empty field yields an empty list, never [""].
func SplitList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}

// JoinList 将列表还原为表单回显用的逗号分隔字符串
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// Checkbox 判断 HTML 复选框是否勾选。
// 浏览器在勾选时提交 "on"，未勾选时省略该字段。
func Checkbox(value string) bool {
	return strings.TrimSpace(value) == "on"
}

// PublishedAt resolves the publish toggle: ticked stamps the given
// instant, unticked stores nil. A previous timestamp is never reused.
func PublishedAt(published bool, now time.Time) *time.Time {
	if !published {
		return nil
	}
	stamp := now
	return &stamp
}
