package core

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPlanned    Status = "planned"
)

const (
	FilterAll        StatusFilter = "all"
	FilterCompleted  StatusFilter = StatusFilter(StatusCompleted)
	FilterInProgress StatusFilter = StatusFilter(StatusInProgress)
	FilterPlanned    StatusFilter = StatusFilter(StatusPlanned)
)

type (
	// Status is the lifecycle tag of a line item.
	Status string

	// StatusFilter selects line items by status. FilterAll matches every item.
	StatusFilter string

	// LineItem is one project task with estimated and actual figures.
	// A zero actual means the figure has not been incurred yet.
	LineItem struct {
		ID               string
		Label            string
		EstimatedCost    Money
		ActualCost       Money
		EstimatedRevenue Money
		ActualRevenue    Money
		Status           Status
	}

	// CashFlowEntry is one month of aggregate cash movement.
	// Outflow is non-positive; the sign encodes direction.
	CashFlowEntry struct {
		Period    Period
		Inflow    Money
		Outflow   Money
		Net       Money
		Projected bool
	}
)

var (
	ErrInvalidFilterValue = errors.New("invalid status filter")
	ErrMalformedLineItem  = errors.New("malformed line item")
	ErrMalformedCashFlow  = errors.New("malformed cash flow entry")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidPeriod      = errors.New("invalid period")
)

// Statuses lists the closed set of line item statuses in display order.
var Statuses = []Status{StatusCompleted, StatusInProgress, StatusPlanned}

// StatusFilters lists every accepted filter value, FilterAll first.
var StatusFilters = []StatusFilter{FilterAll, FilterCompleted, FilterInProgress, FilterPlanned}

func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanned:
		return true
	}
	return false
}

// Label returns the status in human form, e.g. "in progress".
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

func (f StatusFilter) Valid() bool {
	return f == FilterAll || Status(f).Valid()
}

// Matches reports whether an item with status s passes the filter.
func (f StatusFilter) Matches(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// CostIncurred reports whether an actual cost has been recorded.
func (li LineItem) CostIncurred() bool {
	return Incurred(li.ActualCost)
}

// RevenueIncurred reports whether an actual revenue has been recorded.
func (li LineItem) RevenueIncurred() bool {
	return Incurred(li.ActualRevenue)
}

func (li LineItem) Validate() error {
	if strings.TrimSpace(li.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrMalformedLineItem)
	}
	if strings.TrimSpace(li.Label) == "" {
		return fmt.Errorf("%w: item %s: empty label", ErrMalformedLineItem, li.ID)
	}
	amounts := []struct {
		name string
		m    Money
	}{
		{"estimated cost", li.EstimatedCost},
		{"actual cost", li.ActualCost},
		{"estimated revenue", li.EstimatedRevenue},
		{"actual revenue", li.ActualRevenue},
	}
	for _, a := range amounts {
		if a.m.Cents < 0 {
			return fmt.Errorf("%w: item %s: negative %s", ErrMalformedLineItem, li.ID, a.name)
		}
	}
	if !li.Status.Valid() {
		return fmt.Errorf("%w: item %s: unknown status %q", ErrMalformedLineItem, li.ID, li.Status)
	}
	return nil
}

// ExpectedNet is the net implied by the entry's inflow and outflow.
func (e CashFlowEntry) ExpectedNet() Money {
	return e.Inflow.Add(e.Outflow)
}

// Consistent reports whether the stored net matches inflow + outflow.
func (e CashFlowEntry) Consistent() bool {
	return e.Net == e.ExpectedNet()
}

// Validate checks the sign rules of a single entry. It does not check the
// net invariant; inconsistent nets are reported as integrity warnings instead.
func (e CashFlowEntry) Validate() error {
	if err := e.Period.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCashFlow, err)
	}
	if e.Inflow.Cents < 0 {
		return fmt.Errorf("%w: %s: negative inflow", ErrMalformedCashFlow, e.Period)
	}
	if e.Outflow.Cents > 0 {
		return fmt.Errorf("%w: %s: positive outflow", ErrMalformedCashFlow, e.Period)
	}
	return nil
}
