package flows

import (
	"strconv"
	"strings"
	"time"

	"github.com/finora/bot-service/internal/bot"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/pkg/format"
	"github.com/finora/bot-service/internal/transport"
)

// Goal creation collects title, target amount, optional icon and optional
// deadline. The deadline choice is the last step; the goal is created right
// after it, without a confirmation screen.
const (
	stateGoalTitle          = "goal:title"
	stateGoalAmount         = "goal:amount"
	stateGoalIcon           = "goal:icon"
	stateGoalDeadline       = "goal:deadline"
	stateGoalDeadlineManual = "goal:deadline_manual"
)

var goalIcons = []string{"🎯", "💰", "🚗", "🏠", "✈️", "🎓", "📱", "💍"}

var deadlineMonths = []int{3, 6, 12}

func registerGoalCreation(r *bot.Router) {
	r.Callback("goal_new", startGoalCreation)
	r.Callback("icon_skip", skipIcon)
	r.CallbackPrefix("icon_", pickIcon)
	r.Callback("deadline_none", pickNoDeadline)
	r.Callback("deadline_manual", pickManualDeadline)
	r.CallbackPrefix("deadline_m_", pickDeadlineOffset)
	r.State(stateGoalTitle, enterGoalTitle)
	r.State(stateGoalAmount, enterGoalAmount)
	r.State(stateGoalDeadlineManual, enterManualDeadline)
}

func startGoalCreation(c *bot.Context) error {
	c.Sess.Enter(stateGoalTitle)
	return c.Render(c.T("goal.title_prompt"), cancelKeyboard(c))
}

func enterGoalTitle(c *bot.Context) error {
	msg := c.Event.(*models.MessageEvent)
	c.DeleteInbound()

	title := strings.TrimSpace(msg.Text)
	if title == "" {
		return nil
	}
	c.Sess.Set("title", title)
	c.Sess.Enter(stateGoalAmount)
	return c.Render(c.T("goal.amount_prompt"), cancelKeyboard(c))
}

func enterGoalAmount(c *bot.Context) error {
	msg := c.Event.(*models.MessageEvent)
	c.DeleteInbound()

	amount, err := format.ParseAmount(msg.Text)
	if err != nil {
		return c.Render("⚠️ "+c.T("txn.amount.invalid"), cancelKeyboard(c))
	}
	c.Sess.Set("amount", strconv.FormatInt(amount, 10))
	c.Sess.Enter(stateGoalIcon)

	kb := &transport.Keyboard{}
	for i := 0; i < len(goalIcons); i += 4 {
		end := i + 4
		if end > len(goalIcons) {
			end = len(goalIcons)
		}
		row := make([]transport.Button, 0, 4)
		for j := i; j < end; j++ {
			row = append(row, transport.Button{Text: goalIcons[j], Data: "icon_" + strconv.Itoa(j)})
		}
		kb.Row(row...)
	}
	kb.Row(transport.Button{Text: c.T("common.skip"), Data: "icon_skip"})
	kb.Row(cancelButton(c))
	return c.Render(c.T("goal.icon_prompt"), kb)
}

func pickIcon(c *bot.Context) error {
	if c.Sess.State != stateGoalIcon {
		return nil
	}
	ev := c.Event.(*models.CallbackEvent)
	idx, err := strconv.Atoi(strings.TrimPrefix(ev.Data, "icon_"))
	if err != nil || idx < 0 || idx >= len(goalIcons) {
		return nil
	}
	c.Sess.Set("icon", goalIcons[idx])
	return promptDeadline(c)
}

func skipIcon(c *bot.Context) error {
	if c.Sess.State != stateGoalIcon {
		return nil
	}
	c.Sess.SetAbsent("icon")
	return promptDeadline(c)
}

func promptDeadline(c *bot.Context) error {
	c.Sess.Enter(stateGoalDeadline)

	kb := &transport.Keyboard{}
	row := make([]transport.Button, 0, len(deadlineMonths))
	for _, m := range deadlineMonths {
		row = append(row, transport.Button{
			Text: c.T("goal.deadline.months", m),
			Data: "deadline_m_" + strconv.Itoa(m),
		})
	}
	kb.Row(row...)
	kb.Row(
		transport.Button{Text: c.T("goal.deadline.none"), Data: "deadline_none"},
		transport.Button{Text: c.T("goal.deadline.manual"), Data: "deadline_manual"},
	)
	kb.Row(cancelButton(c))
	return c.Render(c.T("goal.deadline_prompt"), kb)
}

func pickDeadlineOffset(c *bot.Context) error {
	if c.Sess.State != stateGoalDeadline {
		return nil
	}
	ev := c.Event.(*models.CallbackEvent)
	months, err := strconv.Atoi(strings.TrimPrefix(ev.Data, "deadline_m_"))
	if err != nil || months <= 0 {
		return nil
	}
	c.Sess.Set("deadline", time.Now().AddDate(0, months, 0).Format(format.DateLayout))
	return createGoal(c)
}

func pickNoDeadline(c *bot.Context) error {
	if c.Sess.State != stateGoalDeadline {
		return nil
	}
	c.Sess.SetAbsent("deadline")
	return createGoal(c)
}

func pickManualDeadline(c *bot.Context) error {
	if c.Sess.State != stateGoalDeadline {
		return nil
	}
	c.Sess.Enter(stateGoalDeadlineManual)
	return c.Render(c.T("goal.deadline.manual_prompt"), cancelKeyboard(c))
}

func enterManualDeadline(c *bot.Context) error {
	msg := c.Event.(*models.MessageEvent)
	c.DeleteInbound()

	date, err := format.ParseDate(msg.Text)
	if err != nil {
		return c.Render("⚠️ "+c.T("txn.date.invalid"), cancelKeyboard(c))
	}
	c.Sess.Set("deadline", date)
	return createGoal(c)
}

func createGoal(c *bot.Context) error {
	title, _ := c.Sess.Get("title")
	amountRaw, _ := c.Sess.Get("amount")
	amount, _ := strconv.ParseInt(amountRaw, 10, 64)
	icon, _ := c.Sess.Present("icon")
	deadline, _ := c.Sess.Present("deadline")

	if err := c.Backend().CreateGoal(c.Ctx, c.UserID(), title, amount, icon, deadline); err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	c.Sess.Reset()
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("menu.goals"), Data: "menu_goals"})
	kb.Row(backButton(c))
	return c.Render(c.T("goal.created", title), kb)
}
