package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rsubramani/policy-tracker/internal/entity"
)

// agentsSchema is the shape agents.json must satisfy before provisioning.
var agentsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"code", "name"},
		"properties": map[string]any{
			"code":         map[string]any{"type": "string", "minLength": 1},
			"name":         map[string]any{"type": "string", "minLength": 1},
			"branch_code":  map[string]any{"type": "string"},
			"relationship": map[string]any{"type": "string"},
			"phone":        map[string]any{"type": "string"},
			"email":        map[string]any{"type": "string"},
			"active":       map[string]any{"type": "boolean"},
		},
	},
}

type agentRecord struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	BranchCode   *string `json:"branch_code,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// LoadAgents reads and validates agents.json. A missing file yields an
// empty list; agent provisioning is optional.
func LoadAgents(path string) ([]entity.Agent, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read agents config: %w", err)
	}
	if err := ValidateJSONAgainstSchema(agentsSchema, b); err != nil {
		return nil, fmt.Errorf("agents config: %w", err)
	}
	var records []agentRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse agents config: %w", err)
	}
	agents := make([]entity.Agent, 0, len(records))
	for _, r := range records {
		a := entity.Agent{
			Code:         r.Code,
			Name:         r.Name,
			BranchCode:   r.BranchCode,
			Relationship: r.Relationship,
			Phone:        r.Phone,
			Email:        r.Email,
			Active:       true,
		}
		if r.Active != nil {
			a.Active = *r.Active
		}
		agents = append(agents, a)
	}
	return agents, nil
}
