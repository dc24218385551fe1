package flows

import (
	"strconv"
	"strings"

	"github.com/finora/bot-service/internal/bot"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/pkg/format"
	"github.com/finora/bot-service/internal/services/advisor"
	"github.com/finora/bot-service/internal/transport"
)

// Deposits run through a two-step flow: amount, then confirmation. Smart
// saving reuses the confirmation step with a precomputed amount, either from
// the backend or from the local fallback advisor.
const (
	stateDepositAmount  = "dep:amount"
	stateDepositConfirm = "dep:confirm"
)

func registerDeposits(r *bot.Router) {
	r.CallbackPrefix("goal_deposit_", startDeposit)
	r.Callback("confirm_deposit", submitDeposit)
	r.Callback("menu_smart", runSmartSave)
	r.State(stateDepositAmount, enterDepositAmount)
}

func startDeposit(c *bot.Context) error {
	ev := c.Event.(*models.CallbackEvent)
	goalID, err := strconv.ParseInt(strings.TrimPrefix(ev.Data, "goal_deposit_"), 10, 64)
	if err != nil {
		return nil
	}

	goal, err := c.Backend().GetGoal(c.Ctx, c.UserID(), goalID)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	c.Sess.Enter(stateDepositAmount)
	c.Sess.Set("goal_id", strconv.FormatInt(goal.ID, 10))
	c.Sess.Set("goal_title", goal.Title)
	c.Sess.Set("method", "manual")
	return c.Render(c.T("deposit.amount_prompt", goal.Title), cancelKeyboard(c))
}

func enterDepositAmount(c *bot.Context) error {
	msg := c.Event.(*models.MessageEvent)
	c.DeleteInbound()

	amount, err := format.ParseAmount(msg.Text)
	if err != nil {
		return c.Render("⚠️ "+c.T("txn.amount.invalid"), cancelKeyboard(c))
	}
	c.Sess.Set("amount", strconv.FormatInt(amount, 10))
	title, _ := c.Sess.Get("goal_title")
	return confirmDeposit(c, c.T("deposit.confirm", format.Money(amount), title))
}

func confirmDeposit(c *bot.Context, text string) error {
	c.Sess.Enter(stateDepositConfirm)
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("common.confirm"), Data: "confirm_deposit"})
	kb.Row(cancelButton(c))
	return c.Render(text, kb)
}

// submitDeposit performs the single mutating call of the flow. A stale or
// repeated confirmation press finds the session outside the confirm state and
// does nothing.
func submitDeposit(c *bot.Context) error {
	if c.Sess.State != stateDepositConfirm {
		return nil
	}

	goalIDRaw, _ := c.Sess.Get("goal_id")
	goalID, err := strconv.ParseInt(goalIDRaw, 10, 64)
	amountRaw, _ := c.Sess.Get("amount")
	amount, err2 := strconv.ParseInt(amountRaw, 10, 64)
	if err != nil || err2 != nil || amount <= 0 {
		c.Log.Error().Str("goal_id", goalIDRaw).Str("amount", amountRaw).Msg("corrupt deposit data at confirm")
		c.Sess.Reset()
		return c.Render("⚠️ "+c.T("error.rejected"), backKeyboard(c))
	}
	method, _ := c.Sess.Get("method")
	if method == "" {
		method = "manual"
	}

	goal, err := c.Backend().Deposit(c.Ctx, c.UserID(), goalID, amount, method)
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	c.Sess.Reset()
	text := c.T("deposit.done", goal.Title, format.Money(amount)) +
		"\n" + format.ProgressBar(goal.Percent()) + " " + strconv.Itoa(goal.Percent()) + "%"
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("menu.goals"), Data: "menu_goals"})
	kb.Row(backButton(c))
	return c.Render(text, kb)
}

// runSmartSave asks the backend for a safe amount to set aside. When the
// backend has no budget or no balance to work with, the local advisor
// computes a conservative suggestion instead. Either way the user confirms
// before money moves.
func runSmartSave(c *bot.Context) error {
	res, err := c.Backend().SmartSaveRun(c.Ctx, c.UserID())
	if err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	if res.Status == "success" && res.SafeSave > 0 && res.Goal != nil {
		return proposeDeposit(c, res.SafeSave, *res.Goal, res.Message)
	}

	if advisor.ShouldFallback(res) {
		sug, err := c.Advisor().Suggest(c.Ctx, c.UserID())
		if err != nil {
			return c.FailTerminal(err, backKeyboard(c))
		}
		if sug == nil {
			return c.Render(c.T("smart.none"), backKeyboard(c))
		}
		return proposeDeposit(c, sug.Amount, sug.Goal, "")
	}

	text := res.Message
	if text == "" {
		text = c.T("smart.none")
	}
	return c.Render(text, backKeyboard(c))
}

func proposeDeposit(c *bot.Context, amount int64, goal models.Goal, note string) error {
	c.Sess.Enter(stateDepositConfirm)
	c.Sess.Set("goal_id", strconv.FormatInt(goal.ID, 10))
	c.Sess.Set("goal_title", goal.Title)
	c.Sess.Set("amount", strconv.FormatInt(amount, 10))
	c.Sess.Set("method", "smart")

	text := c.T("smart.proposal", format.Money(amount), goal.Title)
	if note != "" {
		text = note + "\n\n" + text
	}
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("common.confirm"), Data: "confirm_deposit"})
	kb.Row(cancelButton(c))
	return c.Render(text, kb)
}
