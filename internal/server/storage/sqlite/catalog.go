package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/fieldsync/internal/models"
)

// ListOperationTemplates returns operation templates ordered by name
func (s *Storage) ListOperationTemplates(ctx context.Context) ([]models.OperationTemplate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, active, created_at
		FROM operation_templates
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation templates: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	templates := []models.OperationTemplate{}
	for rows.Next() {
		var t models.OperationTemplate
		var active int
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation template: %w", err)
		}
		t.Active = active == 1
		t.CreatedAt = fromNanos(createdAt)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return templates, nil
}

// ListSparePartTemplates returns spare part templates ordered by name
func (s *Storage) ListSparePartTemplates(ctx context.Context) ([]models.SparePartTemplate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, unit, active, created_at
		FROM spare_part_templates
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query spare part templates: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	templates := []models.SparePartTemplate{}
	for rows.Next() {
		var t models.SparePartTemplate
		var active int
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.Name, &t.Unit, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan spare part template: %w", err)
		}
		t.Active = active == 1
		t.CreatedAt = fromNanos(createdAt)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return templates, nil
}
