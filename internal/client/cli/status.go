package cli

import (
	"context"
	"errors"

	"github.com/Benjie-san/cbc-journal/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println("")

	session, err := c.auth.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNoSession):
		c.io.Println("Session:  not logged in")
	case err != nil:
		return err
	default:
		c.io.Printf("Session:  logged in as %s\n", session.Username)
	}

	st := c.reconciler.Status(ctx)

	if st.Online {
		c.io.Println("Server:   online")
	} else {
		c.io.Println("Server:   offline")
	}

	if st.LastSyncAt.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", st.LastSyncAt.Format("2006-01-02 15:04:05"))
	}

	if st.Error != "" {
		c.io.Printf("Last error: %s\n", st.Error)
	}

	if st.Conflict != nil {
		c.io.Println("")
		c.io.Printf("Unresolved conflict on entry %s (server version %d).\n",
			st.Conflict.LocalID, st.Conflict.ServerVersion)
		c.io.Println("Resolve with 'cbc-journal resolve keep-remote <id>' or 'resolve keep-mine <id>'.")
	}

	return nil
}
