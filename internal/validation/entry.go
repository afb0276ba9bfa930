package validation

import "fmt"

const (
	// MaxTitleLen caps the entry title length
	MaxTitleLen = 200
	// MaxTags caps how many tags one entry can carry
	MaxTags = 32
	// MaxTagLen caps a single tag's length
	MaxTagLen = 64
)

// ValidateDraft checks the user-supplied fields of a new or edited entry.
// Free-text bodies are unrestricted; only the title and tags have limits.
func ValidateDraft(title string, tags []string) error {
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}
	if len(tags) > MaxTags {
		return fmt.Errorf("an entry can carry at most %d tags", MaxTags)
	}
	for _, tag := range tags {
		if tag == "" {
			return fmt.Errorf("tags cannot be empty")
		}
		if len(tag) > MaxTagLen {
			return fmt.Errorf("tag %q exceeds %d characters", tag, MaxTagLen)
		}
	}
	return nil
}
