// Package notes renders release note prompts and extracts per-language notes
// from completion text. Everything here is pure: no I/O, no logging.
package notes

import "fmt"

// JSONFence opens the code block the iOS prompt asks the model to answer in.
const JSONFence = "```json"

// BuildIOSPrompt renders the prompt for JSON-style (iOS) notes. languages is
// embedded verbatim, e.g. "ja,en,fr".
func BuildIOSPrompt(content, baseLanguage, languages string) string {
	return fmt.Sprintf(`Generate iOS App Store release notes from the content, base language, and language list below.

Content:
%s

Base language: %s
Language list: %s

Format the release notes exactly like this:

%s
{
  "language-code": "release notes in that language",
  ...
}
%s

Replace "language-code" with the actual code of each language in the list.
Start with the base language, then write release notes for every other language in the list.`,
		content, baseLanguage, languages, JSONFence, "```")
}

// BuildAndroidPrompt renders the prompt for tag-style (Android) notes.
// languages is embedded verbatim, e.g. "<en-US></en-US>,<ja-JP></ja-JP>".
func BuildAndroidPrompt(content, baseLanguage, languages string) string {
	return fmt.Sprintf(`Generate Google Play release notes from the content, base language, and language list below.

Content:
%s

Base language: %s
Language list: %s

Format the release notes exactly like this, one block per language and nothing else:

<language-code>
[release notes in that language]
</language-code>

Replace <language-code> and </language-code> with the actual code of each language in the list.
Start with the base language, then write release notes for every other language in the list.`,
		content, baseLanguage, languages)
}
