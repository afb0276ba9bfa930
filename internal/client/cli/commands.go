package cli

import (
	"context"
	"fmt"
)

// Run dispatches one command. Unknown commands print usage and fail.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx)
	case "trash":
		return c.runTrash(ctx)
	case "show":
		return c.runShow(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "restore":
		return c.runRestore(ctx, args)
	case "purge":
		return c.runPurge(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "resolve":
		return c.runResolve(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
