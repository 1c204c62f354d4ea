// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-study-mate/models"
)

type planViewModel struct {
	careerGoal string
	yearlyGoal string
	plan       models.PlanJSON
	months     []string
	idx        int
	status     string
}

func newPlanViewModel(careerGoal, yearlyGoal string, plan models.PlanJSON) planViewModel {
	return planViewModel{
		careerGoal: careerGoal,
		yearlyGoal: yearlyGoal,
		plan:       plan,
		months:     sortedMonths(plan),
	}
}

// sortedMonths orders the plan keys by month number. Keys that are not
// numbers follow in lexical order.
func sortedMonths(plan models.PlanJSON) []string {
	keys := make([]string, 0, len(plan))
	for k := range plan {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func (m *planViewModel) next() {
	if m.idx < len(m.months)-1 {
		m.idx++
	}
}

func (m *planViewModel) prev() {
	if m.idx > 0 {
		m.idx--
	}
}

func renderMonth(key string, month models.MonthPlan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Month " + key))
	b.WriteString("\n")
	b.WriteString(month.MonthlyGoal)
	for i, task := range month.Weekly {
		fmt.Fprintf(&b, "\n  Week %d: %s", i+1, task)
	}
	return b.String()
}

// planText is the plain-text form of the whole plan placed on the clipboard.
func (m planViewModel) planText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Career goal: %s\nYearly goal: %s\n", m.careerGoal, m.yearlyGoal)
	for _, key := range m.months {
		month := m.plan[key]
		fmt.Fprintf(&b, "\nMonth %s: %s\n", key, month.MonthlyGoal)
		for i, task := range month.Weekly {
			fmt.Fprintf(&b, "  Week %d: %s\n", i+1, task)
		}
	}
	return b.String()
}

func (m planViewModel) View() string {
	var b strings.Builder
	if m.careerGoal != "" {
		fmt.Fprintf(&b, "Career goal: %s\n", fitText(m.careerGoal, 60))
	}
	if m.yearlyGoal != "" {
		fmt.Fprintf(&b, "Yearly goal: %s\n", fitText(m.yearlyGoal, 60))
	}

	if len(m.months) == 0 {
		b.WriteString("\nThe plan is empty.")
	} else {
		key := m.months[m.idx]
		b.WriteString("\n")
		b.WriteString(monthCardStyle.Render(renderMonth(key, m.plan[key])))
		fmt.Fprintf(&b, "\n%d / %d", m.idx+1, len(m.months))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("STUDY PLAN", b.String(), "←/→: month │ c: copy │ esc: back")
}
