package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Benjie-san/cbc-journal/internal/client/journal"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: cbc-journal delete <id>")
	}

	if err := c.journal.SoftDelete(ctx, args[0]); err != nil {
		if errors.Is(err, journal.ErrConflictPending) {
			return fmt.Errorf("entry has an unresolved conflict; resolve it first with 'cbc-journal resolve'")
		}
		return err
	}

	c.io.Println("Entry moved to trash. Use 'cbc-journal restore' to undo.")
	return nil
}

func (c *Cli) runRestore(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: cbc-journal restore <id>")
	}

	if err := c.journal.Restore(ctx, args[0]); err != nil {
		if errors.Is(err, journal.ErrConflictPending) {
			return fmt.Errorf("entry has an unresolved conflict; resolve it first with 'cbc-journal resolve'")
		}
		return err
	}

	c.io.Println("Entry restored.")
	return nil
}

func (c *Cli) runPurge(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: cbc-journal purge <id>")
	}

	answer, err := c.io.ReadInput("Permanently delete this entry? This cannot be undone. [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if answer != "y" && answer != "Y" {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.journal.PermanentDelete(ctx, args[0]); err != nil {
		if errors.Is(err, journal.ErrConflictPending) {
			return fmt.Errorf("entry has an unresolved conflict; resolve it first with 'cbc-journal resolve'")
		}
		return err
	}

	c.io.Println("Entry will be permanently deleted on the next sync.")
	return nil
}
