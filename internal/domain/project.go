package domain

import "time"

// Project is a saved generation preset. Projects live on the client side
// only; the server never sees them, just the language lists copied out of
// them into a ReleaseNoteRequest.
type Project struct {
	// ID is the creation time in Unix milliseconds, bumped on collision.
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	BaseLanguage     string `json:"baseLanguage"`
	IOSLanguages     string `json:"iOSLanguages"`
	AndroidLanguages string `json:"androidLanguages"`
}

// CreatedAt derives the creation time from the ID.
func (p Project) CreatedAt() time.Time {
	return time.UnixMilli(p.ID)
}

// Request builds a ReleaseNoteRequest for content using this project's
// language settings.
func (p Project) Request(content string) ReleaseNoteRequest {
	return ReleaseNoteRequest{
		Content:          content,
		BaseLanguage:     p.BaseLanguage,
		IOSLanguages:     p.IOSLanguages,
		AndroidLanguages: p.AndroidLanguages,
	}
}
