// Package cli implements the interactive command surface of the journal
// client. Commands only talk to the local services; the network is touched
// exclusively through the reconciler.
package cli

import (
	"github.com/Benjie-san/cbc-journal/internal/client/auth"
	"github.com/Benjie-san/cbc-journal/internal/client/iocli"
	"github.com/Benjie-san/cbc-journal/internal/client/journal"
	"github.com/Benjie-san/cbc-journal/internal/client/sync"
)

type Cli struct {
	io         iocli.IO
	auth       *auth.Service
	journal    *journal.Service
	reconciler *sync.Reconciler
}

func New(io iocli.IO, authService *auth.Service, journalService *journal.Service, reconciler *sync.Reconciler) *Cli {
	return &Cli{
		io:         io,
		auth:       authService,
		journal:    journalService,
		reconciler: reconciler,
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("CBC Journal Client")
	c.io.Println("")
	c.io.Println("Usage:")
	c.io.Println("  cbc-journal [OPTIONS] COMMAND")
	c.io.Println("")
	c.io.Println("Options:")
	c.io.Println("  --server URL   Server URL (default: http://localhost:8080)")
	c.io.Println("  --db PATH      Path to local database (default: cbc-journal.db)")
	c.io.Println("")
	c.io.Println("Commands:")
	c.io.Println("  register                Register a new account")
	c.io.Println("  login                   Log in to the sync server")
	c.io.Println("  logout                  Forget the local session")
	c.io.Println("  status                  Show session and sync status")
	c.io.Println("  add                     Write a new journal entry")
	c.io.Println("  list                    List active entries")
	c.io.Println("  trash                   List trashed entries")
	c.io.Println("  show <id>               Show one entry in full")
	c.io.Println("  edit <id>               Edit an entry")
	c.io.Println("  delete <id>             Move an entry to the trash")
	c.io.Println("  restore <id>            Restore an entry from the trash")
	c.io.Println("  purge <id>              Permanently delete an entry")
	c.io.Println("  sync                    Run a sync pass now")
	c.io.Println("  resolve <keep-remote|keep-mine> <id>")
	c.io.Println("                          Resolve a version conflict")
	c.io.Println("")
	c.io.Println("All writes land locally first; entries sync in the background")
	c.io.Println("whenever the server is reachable.")
}
