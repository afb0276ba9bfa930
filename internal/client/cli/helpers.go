package cli

import (
	"fmt"
	"strings"

	"github.com/Benjie-san/cbc-journal/internal/models"
)

// readMultiline collects lines until an empty line
func (c *Cli) readMultiline(label string) (string, error) {
	c.io.Printf("%s (finish with an empty line):\n", label)

	var lines []string
	for {
		line, err := c.io.ReadInput("")
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

// readTags reads a comma-separated tag list
func (c *Cli) readTags() ([]string, error) {
	raw, err := c.io.ReadInput("Tags (comma separated, optional): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	return splitTags(raw), nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// printEntryLine prints one row of a list
func (c *Cli) printEntryLine(idx int, entry *models.Entry) {
	c.io.Printf("%d. %s\n", idx, entry.Title)
	c.io.Printf("   ID:      %s\n", entry.LocalID)
	if entry.ScriptureRef != "" {
		c.io.Printf("   Passage: %s\n", entry.ScriptureRef)
	}
	if len(entry.Tags) > 0 {
		c.io.Printf("   Tags:    %s\n", strings.Join(entry.Tags, ", "))
	}
	c.io.Printf("   State:   %s\n", syncStateLabel(entry.SyncState))
	c.io.Println("")
}

func syncStateLabel(state models.SyncState) string {
	switch state {
	case models.SyncStateSynced:
		return "synced"
	case models.SyncStateConflict:
		return "CONFLICT (needs resolve)"
	default:
		return "waiting to sync"
	}
}
