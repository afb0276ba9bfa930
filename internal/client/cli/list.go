package cli

import "context"

func (c *Cli) runList(ctx context.Context) error {
	entries, err := c.journal.ListActive(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Journal ===")
	c.io.Println("")

	if len(entries) == 0 {
		c.io.Println("No entries yet. Use 'cbc-journal add' to write your first one.")
		return nil
	}

	for i, entry := range entries {
		c.printEntryLine(i+1, entry)
	}

	return nil
}

func (c *Cli) runTrash(ctx context.Context) error {
	entries, err := c.journal.ListTrashed(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Trash ===")
	c.io.Println("")

	if len(entries) == 0 {
		c.io.Println("Trash is empty.")
		return nil
	}

	for i, entry := range entries {
		c.printEntryLine(i+1, entry)
	}

	c.io.Println("Use 'cbc-journal restore <id>' to bring an entry back,")
	c.io.Println("or 'cbc-journal purge <id>' to delete it permanently.")

	return nil
}
