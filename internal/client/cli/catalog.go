package cli

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// runTemplatesRefresh загружает шаблоны операций и запчастей с портала в локальный кеш
func (c *Cli) runTemplatesRefresh(ctx context.Context) error {
	if _, err := c.connect(ctx); err != nil {
		return err
	}

	ops, err := c.apiClient.GetOperationTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch operation templates: %w", err)
	}
	parts, err := c.apiClient.GetSparePartTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch spare part templates: %w", err)
	}

	if err := c.templates.SaveOperationTemplates(ctx, ops); err != nil {
		return fmt.Errorf("failed to cache operation templates: %w", err)
	}
	if err := c.templates.SaveSparePartTemplates(ctx, parts); err != nil {
		return fmt.Errorf("failed to cache spare part templates: %w", err)
	}

	c.io.Printf("✓ Cached %d operation and %d spare part templates\n", len(ops), len(parts))
	return nil
}

func (c *Cli) runTemplatesList(ctx context.Context) error {
	ops, err := c.templates.GetOperationTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to read operation templates: %w", err)
	}
	parts, err := c.templates.GetSparePartTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to read spare part templates: %w", err)
	}
	if len(ops) == 0 && len(parts) == 0 {
		c.io.Println("No templates cached. Run 'fieldsync templates refresh'.")
		return nil
	}

	table := tablewriter.NewWriter(c.io)
	table.Header("Kind", "Name", "Unit", "Active")
	for _, t := range ops {
		if err := table.Append([]string{"operation", t.Name, "", yesNo(t.Active)}); err != nil {
			return err
		}
	}
	for _, t := range parts {
		if err := table.Append([]string{"spare part", t.Name, t.Unit, yesNo(t.Active)}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
