package cli

import (
	"context"
	"fmt"

	"github.com/Benjie-san/cbc-journal/internal/client/journal"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== New Entry ===")
	c.io.Println("")

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	scriptureRef, err := c.io.ReadInput("Scripture reference (e.g. John 3:16): ")
	if err != nil {
		return fmt.Errorf("failed to read scripture reference: %w", err)
	}

	scripture, err := c.readMultiline("Scripture text")
	if err != nil {
		return err
	}

	content, err := c.readMultiline("Reflection")
	if err != nil {
		return err
	}

	tags, err := c.readTags()
	if err != nil {
		return err
	}

	entry, err := c.journal.Create(ctx, journal.Draft{
		Title:        title,
		ScriptureRef: scriptureRef,
		Scripture:    scripture,
		Content:      content,
		Tags:         tags,
	})
	if err != nil {
		return err
	}

	c.io.Println("")
	c.io.Printf("Entry saved locally (id %s). It will sync in the background.\n", entry.LocalID)

	return nil
}
