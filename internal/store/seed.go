package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"visibilitystack-cli/internal/model"

	"go.yaml.in/yaml/v3"
)

// SeedError describes why a seed snapshot cannot initialize a store.
type SeedError struct {
	Kind   string
	ID     int64
	Reason string
}

func (e SeedError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("seed %s %d: %s", e.Kind, e.ID, e.Reason)
	}
	return fmt.Sprintf("seed %s: %s", e.Kind, e.Reason)
}

// DefaultSeed returns the built-in mock data the dashboard starts with.
func DefaultSeed() model.Snapshot {
	return model.Snapshot{
		Profile: model.CompanyProfile{
			Name:    "VisibilityStack.ai",
			Website: "https://visibilitystack.ai",
			Description: "Agentic AI platform that automates AI Search Optimization (AISO). " +
				"Our AI Agents use deep AISO expertise to help businesses track, optimize, and dominate " +
				"their AI visibility across platforms like ChatGPT, Claude, and Perplexity.",
		},
		ICPs: []model.ICP{
			{
				ID:   1,
				Name: "B2B SaaS Companies",
				Type: model.ICPTypeEnterprise,
				Description: "B2B SaaS companies seeking to dominate AI search results and increase brand " +
					"visibility across AI platforms like ChatGPT, Claude, and Perplexity.",
			},
			{
				ID:   2,
				Name: "Digital Marketing Agencies",
				Type: model.ICPTypeAgency,
				Description: "Digital marketing agencies looking to offer AI Search Optimization as a premium " +
					"service to their clients.",
			},
		},
		Competitors: []model.Competitor{
			{ID: 1, Name: "BrightEdge", Website: "https://brightedge.com", Type: model.CompetitorIndirect},
			{ID: 2, Name: "Conductor", Website: "https://conductor.com", Type: model.CompetitorIndirect},
			{ID: 3, Name: "Searchmetrics", Website: "https://searchmetrics.com", Type: model.CompetitorIndirect},
		},
	}
}

// ValidateSeed checks the invariants a store relies on: positive, unique ids
// and known enum values.
func ValidateSeed(seed model.Snapshot) error {
	seen := map[int64]bool{}
	for _, icp := range seed.ICPs {
		switch {
		case icp.ID <= 0:
			return SeedError{Kind: "icp", Reason: fmt.Sprintf("%q has no positive id", icp.Name)}
		case seen[icp.ID]:
			return SeedError{Kind: "icp", ID: icp.ID, Reason: "duplicate id"}
		case !icp.Type.Valid():
			return SeedError{Kind: "icp", ID: icp.ID, Reason: fmt.Sprintf("unknown type %q", icp.Type)}
		}
		seen[icp.ID] = true
	}

	seen = map[int64]bool{}
	for _, c := range seed.Competitors {
		switch {
		case c.ID <= 0:
			return SeedError{Kind: "competitor", Reason: fmt.Sprintf("%q has no positive id", c.Name)}
		case seen[c.ID]:
			return SeedError{Kind: "competitor", ID: c.ID, Reason: "duplicate id"}
		case !c.Type.Valid():
			return SeedError{Kind: "competitor", ID: c.ID, Reason: fmt.Sprintf("unknown type %q", c.Type)}
		}
		seen[c.ID] = true
	}
	return nil
}

// LoadSeedFile reads a YAML seed snapshot. An empty path yields DefaultSeed.
// The file is only read; the store never writes anything back.
func LoadSeedFile(path string) (model.Snapshot, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultSeed(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(b)
}

// ParseSeed decodes a YAML seed snapshot. An empty document is an empty
// snapshot. Unknown keys are rejected.
func ParseSeed(b []byte) (model.Snapshot, error) {
	var seed model.Snapshot
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return model.Snapshot{}, fmt.Errorf("parse seed: %w", err)
	}
	if err := ValidateSeed(seed); err != nil {
		return model.Snapshot{}, err
	}
	return seed, nil
}
