package flows

import (
	"strconv"
	"strings"

	"github.com/finora/bot-service/internal/bot"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/pkg/format"
	"github.com/finora/bot-service/internal/transport"
)

func registerGoals(r *bot.Router) {
	registerGoalCreation(r)
	r.Callback("menu_goals", showGoalList)
	r.CallbackPrefix("goal_open_", showGoalDetail)
	r.CallbackPrefix("goal_primary_", makeGoalPrimary)
	r.CallbackPrefix("goal_close_", closeGoal)
	r.CallbackPrefix("goal_reopen_", reopenGoal)
	r.CallbackPrefix("goal_up_", moveGoalUp)
	r.CallbackPrefix("goal_down_", moveGoalDown)
	r.CallbackPrefix("goal_analyze_", analyzeGoal)
}

func showGoalList(c *bot.Context) error {
	c.Sess.Reset()
	goals, err := c.Backend().ListGoals(c.Ctx, c.UserID())
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	kb := &transport.Keyboard{}
	for _, g := range goals {
		label := goalButtonLabel(g)
		kb.Row(transport.Button{Text: label, Data: "goal_open_" + strconv.FormatInt(g.ID, 10)})
	}
	kb.Row(transport.Button{Text: c.T("goal.new"), Data: "goal_new"})
	kb.Row(backButton(c))

	text := format.Header(c.T("goal.list.title"), "")
	if len(goals) == 0 {
		text += "\n\n" + c.T("goal.list.empty")
	}
	return c.Render(text, kb)
}

func goalButtonLabel(g models.Goal) string {
	var b strings.Builder
	if g.Icon != "" {
		b.WriteString(g.Icon + " ")
	}
	b.WriteString(g.Title)
	if g.IsPrimary {
		b.WriteString(" ⭐")
	}
	if g.Status == "closed" {
		b.WriteString(" 🔒")
	}
	b.WriteString(" · " + strconv.Itoa(g.Percent()) + "%")
	return b.String()
}

func goalIDFromCallback(c *bot.Context, prefix string) (int64, bool) {
	ev, ok := c.Event.(*models.CallbackEvent)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(ev.Data, prefix), 10, 64)
	if err != nil {
		c.Log.Debug().Str("data", ev.Data).Msg("malformed goal callback ignored")
		return 0, false
	}
	return id, true
}

func showGoalDetail(c *bot.Context) error {
	id, ok := goalIDFromCallback(c, "goal_open_")
	if !ok {
		return nil
	}
	goal, err := c.Backend().GetGoal(c.Ctx, c.UserID(), id)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	return renderGoalDetail(c, goal)
}

func renderGoalDetail(c *bot.Context, g *models.Goal) error {
	title := g.Title
	if g.Icon != "" {
		title = g.Icon + " " + title
	}
	lines := []string{
		format.Header(title, ""),
		"",
		c.T("goal.detail.target", format.Money(g.AmountTotal)),
		c.T("goal.detail.saved", format.Money(g.AmountSaved), g.Percent()),
		format.ProgressBar(g.Percent()),
	}
	if g.Deadline != "" {
		lines = append(lines, c.T("goal.detail.deadline", g.Deadline))
	}
	if g.IsPrimary {
		lines = append(lines, "", c.T("goal.detail.primary"))
	}

	id := strconv.FormatInt(g.ID, 10)
	kb := &transport.Keyboard{}
	if g.Status == "closed" {
		kb.Row(transport.Button{Text: c.T("goal.reopen"), Data: "goal_reopen_" + id})
	} else {
		kb.Row(transport.Button{Text: c.T("goal.deposit"), Data: "goal_deposit_" + id})
		if !g.IsPrimary {
			kb.Row(transport.Button{Text: c.T("goal.set_primary"), Data: "goal_primary_" + id})
		}
		kb.Row(
			transport.Button{Text: "⬆️", Data: "goal_up_" + id},
			transport.Button{Text: "⬇️", Data: "goal_down_" + id},
		)
		kb.Row(
			transport.Button{Text: c.T("goal.analyze"), Data: "goal_analyze_" + id},
			transport.Button{Text: c.T("goal.close"), Data: "goal_close_" + id},
		)
	}
	kb.Row(transport.Button{Text: c.T("menu.goals"), Data: "menu_goals"})
	kb.Row(backButton(c))
	return c.Render(strings.Join(lines, "\n"), kb)
}

func makeGoalPrimary(c *bot.Context) error {
	id, ok := goalIDFromCallback(c, "goal_primary_")
	if !ok {
		return nil
	}
	if err := c.Backend().SetPrimary(c.Ctx, c.UserID(), id); err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	goal, err := c.Backend().GetGoal(c.Ctx, c.UserID(), id)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	return renderGoalDetail(c, goal)
}

func closeGoal(c *bot.Context) error {
	id, ok := goalIDFromCallback(c, "goal_close_")
	if !ok {
		return nil
	}
	goal, err := c.Backend().CloseGoal(c.Ctx, c.UserID(), id)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	return renderGoalDetail(c, goal)
}

func reopenGoal(c *bot.Context) error {
	id, ok := goalIDFromCallback(c, "goal_reopen_")
	if !ok {
		return nil
	}
	goal, err := c.Backend().ReopenGoal(c.Ctx, c.UserID(), id)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	return renderGoalDetail(c, goal)
}

func moveGoalUp(c *bot.Context) error   { return moveGoal(c, "goal_up_", true) }
func moveGoalDown(c *bot.Context) error { return moveGoal(c, "goal_down_", false) }

func moveGoal(c *bot.Context, prefix string, up bool) error {
	id, ok := goalIDFromCallback(c, prefix)
	if !ok {
		return nil
	}
	goal, err := c.Backend().MovePriority(c.Ctx, c.UserID(), id, up)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	return renderGoalDetail(c, goal)
}

func analyzeGoal(c *bot.Context) error {
	id, ok := goalIDFromCallback(c, "goal_analyze_")
	if !ok {
		return nil
	}
	analysis, err := c.Backend().GoalAnalysis(c.Ctx, c.UserID(), id)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	lines := []string{format.Header(c.T("goal.analysis.title"), "")}
	if analysis.Summary == "" && analysis.Recommendation == "" {
		lines = append(lines, "", c.T("goal.analysis.empty"))
	}
	if analysis.Summary != "" {
		lines = append(lines, "", analysis.Summary)
	}
	if analysis.Recommendation != "" {
		lines = append(lines, "", "💡 "+analysis.Recommendation)
	}

	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("common.back"), Data: "goal_open_" + strconv.FormatInt(id, 10)})
	return c.Render(strings.Join(lines, "\n"), kb)
}
