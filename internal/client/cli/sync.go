package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Benjie-san/cbc-journal/internal/client/auth"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Syncing...")

	result, err := c.reconciler.Sync(ctx)
	if err != nil {
		// Not being logged in is the normal offline mode, not a failure.
		if errors.Is(err, auth.ErrNoSession) {
			c.io.Println("Not logged in; working offline.")
			c.io.Println("Run 'cbc-journal login' to start syncing.")
			return nil
		}
		return fmt.Errorf("sync failed: %w", err)
	}
	if result == nil {
		c.io.Println("A sync pass is already running.")
		return nil
	}

	c.io.Println("")
	c.io.Printf("Pushed:  %d\n", result.Pushed)
	c.io.Printf("Settled: %d\n", result.Settled)
	c.io.Printf("Pulled:  %d\n", result.Pulled)
	c.io.Printf("Merged:  %d\n", result.Merged)
	c.io.Printf("Pruned:  %d\n", result.Pruned)

	if result.Conflicts > 0 {
		c.io.Println("")
		c.io.Printf("%d entry hit a version conflict.\n", result.Conflicts)
		c.io.Println("Run 'cbc-journal status' to see it, then resolve with")
		c.io.Println("'cbc-journal resolve keep-remote <id>' or 'resolve keep-mine <id>'.")
	}

	return nil
}

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: cbc-journal resolve <keep-remote|keep-mine> <id>")
	}

	choice, localID := args[0], args[1]

	switch choice {
	case "keep-remote":
		if err := c.reconciler.KeepRemote(ctx, localID); err != nil {
			return err
		}
		c.io.Println("Kept the server's version. Your local edits to this entry were discarded.")
	case "keep-mine":
		if err := c.reconciler.KeepMine(ctx, localID); err != nil {
			return err
		}
		c.io.Println("Kept your version. The server has been updated.")
	default:
		return fmt.Errorf("unknown resolution %q: use keep-remote or keep-mine", choice)
	}

	return nil
}
