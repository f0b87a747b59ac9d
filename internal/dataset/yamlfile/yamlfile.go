// Package yamlfile loads a static dataset from a YAML document.
//
// The document has two top-level sections, line_items and cash_flow. Amounts
// are decimal scalars in currency units (5000, 12.5, -18000). The dataset is
// read once and validated before it is handed out.
package yamlfile

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"leton/internal/core"
	"leton/internal/dataset/memory"
)

type document struct {
	LineItems yaml.Node `yaml:"line_items"`
	CashFlow  yaml.Node `yaml:"cash_flow"`
}

type lineItemDoc struct {
	ID               string `yaml:"id"`
	Label            string `yaml:"label"`
	EstimatedCost    amount `yaml:"estimated_cost"`
	ActualCost       amount `yaml:"actual_cost"`
	EstimatedRevenue amount `yaml:"estimated_revenue"`
	ActualRevenue    amount `yaml:"actual_revenue"`
	Status           string `yaml:"status"`
}

type entryDoc struct {
	Period    string `yaml:"period"`
	Inflow    amount `yaml:"inflow"`
	Outflow   amount `yaml:"outflow"`
	Net       amount `yaml:"net"`
	Projected bool   `yaml:"projected"`
}

// amount decodes a YAML scalar through core.ParseAmount so numbers and
// quoted strings are treated the same way.
type amount core.Money

func (a *amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", n.Line)
	}
	m, err := core.ParseAmount(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w %q", n.Line, err, n.Value)
	}
	*a = amount(m)
	return nil
}

// Open reads and parses the dataset file at path.
func Open(ctx context.Context, path string) (*memory.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	s, err := Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a dataset document. Both sections are converted
// concurrently; the first failure wins.
func Parse(ctx context.Context, data []byte) (*memory.Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	var (
		items   []core.LineItem
		entries []core.CashFlowEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		items, err = decodeLineItems(&doc.LineItems)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		entries, err = decodeCashFlow(&doc.CashFlow)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return memory.New(items, entries)
}

func decodeLineItems(n *yaml.Node) ([]core.LineItem, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	var docs []lineItemDoc
	if err := n.Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode line_items: %w", err)
	}
	items := make([]core.LineItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, core.LineItem{
			ID:               d.ID,
			Label:            d.Label,
			EstimatedCost:    core.Money(d.EstimatedCost),
			ActualCost:       core.Money(d.ActualCost),
			EstimatedRevenue: core.Money(d.EstimatedRevenue),
			ActualRevenue:    core.Money(d.ActualRevenue),
			Status:           core.Status(d.Status),
		})
	}
	return items, nil
}

func decodeCashFlow(n *yaml.Node) ([]core.CashFlowEntry, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	var docs []entryDoc
	if err := n.Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode cash_flow: %w", err)
	}
	entries := make([]core.CashFlowEntry, 0, len(docs))
	for _, d := range docs {
		p, err := core.ParsePeriod(d.Period)
		if err != nil {
			return nil, fmt.Errorf("decode cash_flow: %w", err)
		}
		entries = append(entries, core.CashFlowEntry{
			Period:    p,
			Inflow:    core.Money(d.Inflow),
			Outflow:   core.Money(d.Outflow),
			Net:       core.Money(d.Net),
			Projected: d.Projected,
		})
	}
	return entries, nil
}
