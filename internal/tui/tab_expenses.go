package tui

import (
	"fmt"
	"strconv"
	"strings"

	"tripdash/internal/cli"
	"tripdash/internal/tui/components"
	"tripdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// expenseValues holds the add-expense form answers.
type expenseValues struct {
	category    string
	amount      string
	description string
}

func newExpenseForm(categories []string, v *expenseValues) *huh.Form {
	opts := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		opts = append(opts, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(opts...).
				Value(&v.category),
			huh.NewInput().
				Title("Amount").
				Placeholder("42.50").
				Value(&v.amount),
			huh.NewInput().
				Title("Description").
				Placeholder("gas outside Tulsa").
				Value(&v.description),
		),
	)
}

func (a App) updateExpensesTab(key string) (bool, tea.Model, tea.Cmd) {
	if key == "a" {
		cats := a.expenseCategories()
		a.expenseVals = expenseValues{}
		if len(cats) > 0 {
			a.expenseVals.category = cats[0]
		}
		a.expenseForm = newExpenseForm(cats, &a.expenseVals)
		if a.width > 0 {
			a.expenseForm = a.expenseForm.WithWidth(a.contentWidth())
		}
		return true, a, a.expenseForm.Init()
	}
	return false, a, nil
}

func (a App) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.expenseForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.expenseForm = f
	}

	if a.expenseForm.State == huh.StateCompleted {
		v := a.expenseVals
		recorded := a.sess.AddExpense(v.category, v.amount, v.description)
		a.flash = fmt.Sprintf("recorded %s in %s", cli.FormatMoney(recorded.Amount), v.category)
		if _, err := strconv.ParseFloat(strings.TrimSpace(v.amount), 64); err != nil {
			a.flash += fmt.Sprintf(" (%q did not parse)", v.amount)
		}
		a.expenseForm = nil
		return a, nil
	}

	if a.expenseForm.State == huh.StateAborted {
		a.expenseForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	if a.expenseForm != nil {
		return components.ContentCard("Add expense", a.expenseForm.View(), cw)
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	rows := a.sess.BudgetRows()

	var b strings.Builder

	if len(rows) > 0 {
		labelW := 0
		for _, r := range rows {
			if len(r.Category) > labelW {
				labelW = len(r.Category)
			}
		}
		barW := innerW - labelW - 30
		if barW < 10 {
			barW = 10
		}

		var budget strings.Builder
		for i, r := range rows {
			if i > 0 {
				budget.WriteString("\n")
			}
			budget.WriteString(components.BudgetBar(r.Category, r.Spent, r.Allocated, labelW, barW))
		}
		budget.WriteString("\n\n")
		budget.WriteString(labelStyle.Render("Total: "))
		budget.WriteString(valStyle.Render(cli.FormatMoney(a.sess.TotalSpent())))
		budget.WriteString(labelStyle.Render(" of "))
		budget.WriteString(valStyle.Render(cli.FormatMoney(a.sess.TotalBudget())))
		b.WriteString(components.ContentCard("Budget", budget.String(), cw))
		b.WriteString("\n")
	}

	// Spend chart: one bar per category with recorded expenses
	var spendLabels []string
	var spendVals []float64
	for _, r := range rows {
		if r.Spent > 0 {
			spendLabels = append(spendLabels, r.Category)
			spendVals = append(spendVals, r.Spent)
		}
	}
	if len(spendVals) > 0 {
		chart := components.HBarChart(spendLabels, spendVals, innerW)
		b.WriteString(components.ContentCard("Spend by category", chart, cw))
		b.WriteString("\n")
	}

	recent := a.sess.RecentExpenses(10)
	var ledger strings.Builder
	if len(recent) == 0 {
		ledger.WriteString(dimStyle.Render("No expenses yet. Press [a] to add one."))
	} else {
		for i, e := range recent {
			if i > 0 {
				ledger.WriteString("\n")
			}
			desc := e.Description
			if desc == "" {
				desc = "(no description)"
			}
			ledger.WriteString(dimStyle.Render(e.At.Format("15:04")))
			ledger.WriteString("  ")
			ledger.WriteString(valStyle.Render(fmt.Sprintf("%8s", cli.FormatMoney(e.Amount))))
			ledger.WriteString("  ")
			ledger.WriteString(labelStyle.Render(truncStr(desc, innerW-20)))
		}
	}
	b.WriteString(components.ContentCard("Recent", ledger.String(), cw))

	return b.String()
}
