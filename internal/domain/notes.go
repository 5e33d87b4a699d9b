package domain

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// ReleaseNoteRequest is the input of one generation: note content written in
// BaseLanguage plus the raw target language list for each platform. Lists are
// kept exactly as the user typed them because they are embedded verbatim in
// the prompt.
type ReleaseNoteRequest struct {
	Content          string
	BaseLanguage     string
	IOSLanguages     string
	AndroidLanguages string
}

// Languages returns the raw target language list for p.
func (r ReleaseNoteRequest) Languages(p Platform) string {
	switch p {
	case PlatformIOS:
		return r.IOSLanguages
	case PlatformAndroid:
		return r.AndroidLanguages
	}
	return ""
}

// IOSNotes maps a language code to its note text.
type IOSNotes map[string]string

// LocalizedNote is a single <code>...</code> block extracted from a
// tag-style response.
type LocalizedNote struct {
	Language string `json:"language"`
	Text     string `json:"text"`
	// Block is the block as it appeared in the response, tags included.
	Block string `json:"-"`
}

// AndroidNotes holds tag-style notes in order of appearance.
type AndroidNotes struct {
	Entries []LocalizedNote
}

// Flatten joins the raw blocks with newlines. This is the format clients
// paste into the Play Console and the one the API has always returned.
func (n AndroidNotes) Flatten() string {
	blocks := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		blocks[i] = e.Block
	}
	return strings.Join(blocks, "\n")
}

// Lookup returns the first note for the given language code.
func (n AndroidNotes) Lookup(language string) (string, bool) {
	for _, e := range n.Entries {
		if e.Language == language {
			return e.Text, true
		}
	}
	return "", false
}

var languageToken = regexp.MustCompile(`[\w-]+`)

// ParseLanguageList extracts language codes from a user-entered list. Both
// "ja,en,fr" and "<en-US></en-US>,<ja-JP></ja-JP>" are accepted. Order is
// preserved and duplicates are dropped.
func ParseLanguageList(raw string) []string {
	return lo.Uniq(languageToken.FindAllString(raw, -1))
}
