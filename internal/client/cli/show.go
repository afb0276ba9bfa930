package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: cbc-journal show <id>")
	}

	entry, err := c.journal.Get(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", entry.Title)
	c.io.Println("")
	if entry.ScriptureRef != "" {
		c.io.Printf("Passage: %s\n", entry.ScriptureRef)
	}
	if entry.Scripture != "" {
		c.io.Println("")
		c.io.Println(entry.Scripture)
	}
	if entry.Content != "" {
		c.io.Println("")
		c.io.Println(entry.Content)
	}
	c.io.Println("")
	if len(entry.Tags) > 0 {
		c.io.Printf("Tags:    %s\n", strings.Join(entry.Tags, ", "))
	}
	c.io.Printf("ID:      %s\n", entry.LocalID)
	c.io.Printf("State:   %s\n", syncStateLabel(entry.SyncState))
	c.io.Printf("Created: %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	c.io.Printf("Updated: %s\n", entry.UpdatedAt.Format("2006-01-02 15:04"))

	return nil
}
