package flows

import (
	"strings"
	"time"

	"github.com/finora/bot-service/internal/bot"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/pkg/format"
	"github.com/finora/bot-service/internal/transport"
)

func registerViews(r *bot.Router) {
	r.Callback("menu_today", showToday)
	r.Callback("menu_budget", showBudget)
	r.Callback("menu_progress", showProgress)
	r.Callback("menu_insights", showInsights)
	r.Callback("insights_week", func(c *bot.Context) error { return showAnalysis(c, 7) })
	r.Callback("insights_trend", func(c *bot.Context) error { return showAnalysis(c, 30) })
	r.Callback("insights_savings", func(c *bot.Context) error { return showAnalysis(c, 90) })
	r.Callback("insights_tip", showInsights)
}

func showToday(c *bot.Context) error {
	stats, err := c.Backend().DailyTransactions(c.Ctx, c.UserID(), time.Now().Format(format.DateLayout))
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	lines := []string{format.Header(c.T("today.title"), ""), ""}
	if len(stats.Items) == 0 {
		lines = append(lines, c.T("today.empty"))
	} else {
		lines = append(lines,
			c.T("today.income", format.Money(stats.Income)),
			c.T("today.expense", format.Money(stats.Expense)),
			"",
		)
		for _, item := range stats.Items {
			line := format.Money(item.Amount) + " — " + c.T("category."+item.Category)
			if item.Description != "" {
				line += " (" + item.Description + ")"
			}
			lines = append(lines, line)
		}
	}
	return c.Render(strings.Join(lines, "\n"), backKeyboard(c))
}

func showBudget(c *bot.Context) error {
	month := time.Now().Format("2006-01")
	budget, err := c.Backend().BudgetMonth(c.Ctx, c.UserID(), month)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	if !budget.Exists {
		budget, err = c.Backend().RecalculateBudget(c.Ctx, c.UserID(), month)
		if err != nil {
			return c.FailTerminal(err, backKeyboard(c))
		}
	}

	left := budget.Income - budget.Expenses
	lines := []string{
		format.Header(c.T("budget.title"), ""),
		"",
		c.T("budget.limit", format.Money(budget.Income)),
		c.T("budget.spent", format.Money(budget.Expenses)),
		c.T("budget.left", format.Money(left)),
		c.T("budget.daily", format.Money(budget.DailyLimit)),
	}
	return c.Render(strings.Join(lines, "\n"), backKeyboard(c))
}

func showProgress(c *bot.Context) error {
	goals, err := c.Backend().ListGoals(c.Ctx, c.UserID())
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	lines := []string{format.Header(c.T("progress.title"), "")}
	if len(goals) == 0 {
		lines = append(lines, "", c.T("progress.empty"))
	}
	for _, g := range goals {
		if g.Status == "closed" {
			continue
		}
		lines = append(lines, "", goalButtonLabel(g),
			format.ProgressBar(g.Percent())+" "+format.Money(g.AmountSaved)+" / "+format.Money(g.AmountTotal))
	}
	return c.Render(strings.Join(lines, "\n"), backKeyboard(c))
}

func showInsights(c *bot.Context) error {
	insight, err := c.Backend().DailyInsight(c.Ctx, c.UserID())
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	return renderInsight(c, insight)
}

func showAnalysis(c *bot.Context, days int) error {
	insight, err := c.Backend().TransactionAnalysis(c.Ctx, c.UserID(), days)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	return renderInsight(c, insight)
}

func renderInsight(c *bot.Context, insight *models.Insight) error {
	lines := []string{format.Header(c.T("insights.title"), "")}
	body := insight.Text
	if body == "" {
		body = insight.Summary
	}
	if body == "" {
		body = c.T("insights.empty")
	}
	lines = append(lines, "", body)
	if insight.Recommendation != "" {
		lines = append(lines, "", "💡 "+insight.Recommendation)
	}

	kb := &transport.Keyboard{}
	kb.Row(
		transport.Button{Text: c.T("insights.week"), Data: "insights_week"},
		transport.Button{Text: c.T("insights.trend"), Data: "insights_trend"},
	)
	kb.Row(
		transport.Button{Text: c.T("insights.savings"), Data: "insights_savings"},
		transport.Button{Text: c.T("insights.tip"), Data: "insights_tip"},
	)
	kb.Row(backButton(c))
	return c.Render(strings.Join(lines, "\n"), kb)
}
