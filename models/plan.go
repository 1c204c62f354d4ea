package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

const (
	// PlanMonths is the number of monthly entries in a generated roadmap.
	PlanMonths = 12
	// WeeksPerMonth is the number of weekly tasks in every monthly entry.
	WeeksPerMonth = 4
)

// MonthPlan is a single month of the roadmap: one goal and the ordered list
// of weekly tasks.
type MonthPlan struct {
	MonthlyGoal string   `json:"monthly_goal"`
	Weekly      []string `json:"weekly"`
}

// PlanJSON is the roadmap as returned by the completion API, keyed by month
// number ("1".."12"). Only the monthly_goal and weekly fields of an entry are
// kept.
type PlanJSON map[string]MonthPlan

// UnmarshalJSON decodes a roadmap object entry by entry. Entries that are not
// month objects (a stray "note": "...", nulls, numbers) are skipped instead of
// failing the whole roadmap. A JSON null leaves the plan nil.
func (p *PlanJSON) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}

	plan := make(PlanJSON, len(raw))
	for key, entry := range raw {
		if !bytes.HasPrefix(bytes.TrimSpace(entry), []byte("{")) {
			continue
		}
		var month MonthPlan
		if err := json.Unmarshal(entry, &month); err != nil {
			continue
		}
		plan[key] = month
	}
	*p = plan
	return nil
}

// Month returns the entry for the 1-based month number i.
func (p PlanJSON) Month(i int) (MonthPlan, bool) {
	month, ok := p[strconv.Itoa(i)]
	return month, ok
}

// Plan is the latest roadmap generated for a user. There is at most one plan
// per user; a new generation overwrites it wholesale.
type Plan struct {
	Username   string    `json:"-"`
	CareerGoal string    `json:"career_goal"`
	YearlyGoal string    `json:"yearly_goal"`
	Months     PlanJSON  `json:"plan"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Plan model.
func (p Plan) TableName() string {
	return "plans"
}
