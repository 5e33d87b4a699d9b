package notes

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

var (
	openingTag = regexp.MustCompile(`<([\w-]+)>`)
	jsonBlock  = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
)

// ParseAndroid collects every <code>body</code> block in text, in order of
// appearance. The closing tag must repeat the opening code; the body may span
// lines and ends at the first matching closing tag. Blocks never overlap.
// Text without any complete block yields empty notes.
func ParseAndroid(text string) domain.AndroidNotes {
	var out domain.AndroidNotes

	pos := 0
	for pos < len(text) {
		loc := openingTag.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		code := text[pos+loc[2] : pos+loc[3]]
		bodyStart := pos + loc[1]

		closing := "</" + code + ">"
		rel := strings.Index(text[bodyStart:], closing)
		if rel < 0 {
			// Unterminated tag: look for another opening tag right after its '<'.
			pos = start + 1
			continue
		}
		end := bodyStart + rel + len(closing)

		out.Entries = append(out.Entries, domain.LocalizedNote{
			Language: code,
			Text:     strings.TrimSpace(text[bodyStart : bodyStart+rel]),
			Block:    text[start:end],
		})
		pos = end
	}

	return out
}

// ParseIOS decodes the first ```json fenced block of text as an object of
// language code to note. A missing fence, invalid JSON, or an object with
// non-string values yields an empty, non-nil map.
func ParseIOS(text string) domain.IOSNotes {
	m := jsonBlock.FindStringSubmatch(text)
	if m == nil {
		return domain.IOSNotes{}
	}

	var notes map[string]string
	if err := json.Unmarshal([]byte(m[1]), &notes); err != nil || notes == nil {
		return domain.IOSNotes{}
	}
	return notes
}
