package cli

import (
	"context"
	"fmt"

	"github.com/Benjie-san/cbc-journal/internal/models"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: cbc-journal edit <id>")
	}

	localID := args[0]
	entry, err := c.journal.Get(ctx, localID)
	if err != nil {
		return err
	}

	c.io.Printf("=== Edit: %s ===\n", entry.Title)
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println("")

	patch := &models.EntryPatch{}

	title, err := c.io.ReadInput(fmt.Sprintf("Title [%s]: ", entry.Title))
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title != "" {
		patch.Title = &title
	}

	scriptureRef, err := c.io.ReadInput(fmt.Sprintf("Scripture reference [%s]: ", entry.ScriptureRef))
	if err != nil {
		return fmt.Errorf("failed to read scripture reference: %w", err)
	}
	if scriptureRef != "" {
		patch.ScriptureRef = &scriptureRef
	}

	replaceScripture, err := c.io.ReadInput("Replace scripture text? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if replaceScripture == "y" || replaceScripture == "Y" {
		scripture, err := c.readMultiline("Scripture text")
		if err != nil {
			return err
		}
		patch.Scripture = &scripture
	}

	replaceContent, err := c.io.ReadInput("Replace reflection? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if replaceContent == "y" || replaceContent == "Y" {
		content, err := c.readMultiline("Reflection")
		if err != nil {
			return err
		}
		patch.Content = &content
	}

	tagsRaw, err := c.io.ReadInput("Tags (comma separated, empty to keep): ")
	if err != nil {
		return fmt.Errorf("failed to read tags: %w", err)
	}
	if tagsRaw != "" {
		tags := splitTags(tagsRaw)
		patch.Tags = &tags
	}

	updated, err := c.journal.Update(ctx, localID, patch)
	if err != nil {
		return err
	}

	c.io.Println("")
	c.io.Printf("Entry saved (state: %s).\n", syncStateLabel(updated.SyncState))

	return nil
}
