package domain

// Platform identifies a mobile distribution target. Each platform has its own
// release note output format.
type Platform string

const (
	// PlatformIOS expects a JSON object mapping language code to note text.
	PlatformIOS Platform = "ios"
	// PlatformAndroid expects <language-code>...</language-code> blocks.
	PlatformAndroid Platform = "android"
)

func (p Platform) String() string { return string(p) }

func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid:
		return true
	}
	return false
}

// DisplayName returns the human-readable platform name used in messages.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformAndroid:
		return "Android"
	}
	return string(p)
}

// Selection says which platforms a single generation request covers.
type Selection int

const (
	SelectIOSOnly Selection = iota + 1
	SelectAndroidOnly
	SelectBoth
)

func (s Selection) String() string {
	switch s {
	case SelectIOSOnly:
		return "ios"
	case SelectAndroidOnly:
		return "android"
	case SelectBoth:
		return "both"
	}
	return "unknown"
}

func (s Selection) IsValid() bool {
	return s >= SelectIOSOnly && s <= SelectBoth
}

// Includes reports whether p is generated for this selection.
func (s Selection) Includes(p Platform) bool {
	switch p {
	case PlatformIOS:
		return s == SelectIOSOnly || s == SelectBoth
	case PlatformAndroid:
		return s == SelectAndroidOnly || s == SelectBoth
	}
	return false
}

// Platforms lists the selected platforms, iOS first.
func (s Selection) Platforms() []Platform {
	var out []Platform
	for _, p := range []Platform{PlatformIOS, PlatformAndroid} {
		if s.Includes(p) {
			out = append(out, p)
		}
	}
	return out
}

// ParseSelection maps "ios", "android" or "both" to a Selection.
func ParseSelection(s string) (Selection, bool) {
	switch s {
	case "ios":
		return SelectIOSOnly, true
	case "android":
		return SelectAndroidOnly, true
	case "both", "":
		return SelectBoth, true
	}
	return 0, false
}
