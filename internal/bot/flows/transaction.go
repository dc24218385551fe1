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

// Transaction capture walks amount, category, optional description and date,
// then asks for an explicit confirmation before anything reaches the backend.
// Expenses and incomes share the flow; the kind is fixed at entry.
const (
	stateTxnAmount      = "txn:amount"
	stateTxnCategory    = "txn:category"
	stateTxnDescription = "txn:description"
	stateTxnDate        = "txn:date"
	stateTxnDateManual  = "txn:date_manual"
	stateTxnConfirm     = "txn:confirm"
)

var expenseCategories = []string{"food", "transport", "shopping", "health", "entertainment", "utilities", "other"}

var incomeCategories = []string{"salary", "business", "gift", "other"}

func registerTransactions(r *bot.Router) {
	r.Callback("menu_expense", startExpense)
	r.Callback("menu_income", startIncome)
	r.CallbackPrefix("cat_", pickCategory)
	r.CallbackPrefix("inc_", pickCategory)
	r.Callback("desc_skip", skipDescription)
	r.Callback("date_today", pickToday)
	r.Callback("date_manual", pickManualDate)
	r.Callback("confirm_submit", submitTransaction)
	r.State(stateTxnAmount, enterAmount)
	r.State(stateTxnDescription, enterDescription)
	r.State(stateTxnDateManual, enterManualDate)
}

func startExpense(c *bot.Context) error {
	c.Sess.Enter(stateTxnAmount)
	c.Sess.Set("kind", "expense")
	return c.Render(c.T("txn.amount.expense"), cancelKeyboard(c))
}

func startIncome(c *bot.Context) error {
	c.Sess.Enter(stateTxnAmount)
	c.Sess.Set("kind", "income")
	return c.Render(c.T("txn.amount.income"), cancelKeyboard(c))
}

func enterAmount(c *bot.Context) error {
	msg := c.Event.(*models.MessageEvent)
	c.DeleteInbound()

	amount, err := format.ParseAmount(msg.Text)
	if err != nil {
		// State and collected data survive a bad input; only the prompt
		// changes.
		return c.Render("⚠️ "+c.T("txn.amount.invalid"), cancelKeyboard(c))
	}

	c.Sess.Set("amount", strconv.FormatInt(amount, 10))
	c.Sess.Enter(stateTxnCategory)
	return c.Render(c.T("txn.category"), categoryKeyboard(c))
}

func categoryKeyboard(c *bot.Context) *transport.Keyboard {
	kind, _ := c.Sess.Get("kind")
	keys, prefix, labelNS := expenseCategories, "cat_", "category."
	if kind == "income" {
		keys, prefix, labelNS = incomeCategories, "inc_", "income."
	}

	kb := &transport.Keyboard{}
	for i := 0; i < len(keys); i += 2 {
		row := []transport.Button{{Text: c.T(labelNS + keys[i]), Data: prefix + keys[i]}}
		if i+1 < len(keys) {
			row = append(row, transport.Button{Text: c.T(labelNS + keys[i+1]), Data: prefix + keys[i+1]})
		}
		kb.Row(row...)
	}
	kb.Row(cancelButton(c))
	return kb
}

func pickCategory(c *bot.Context) error {
	if c.Sess.State != stateTxnCategory {
		return nil
	}
	ev := c.Event.(*models.CallbackEvent)
	key := strings.TrimPrefix(strings.TrimPrefix(ev.Data, "cat_"), "inc_")

	c.Sess.Set("category", key)
	c.Sess.Enter(stateTxnDescription)

	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("common.skip"), Data: "desc_skip"})
	kb.Row(cancelButton(c))
	return c.Render(c.T("txn.description"), kb)
}

func enterDescription(c *bot.Context) error {
	msg := c.Event.(*models.MessageEvent)
	c.DeleteInbound()

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	c.Sess.Set("description", text)
	return promptDate(c)
}

func skipDescription(c *bot.Context) error {
	if c.Sess.State != stateTxnDescription {
		return nil
	}
	c.Sess.SetAbsent("description")
	return promptDate(c)
}

func promptDate(c *bot.Context) error {
	c.Sess.Enter(stateTxnDate)
	kb := &transport.Keyboard{}
	kb.Row(
		transport.Button{Text: c.T("txn.date.today"), Data: "date_today"},
		transport.Button{Text: c.T("txn.date.manual"), Data: "date_manual"},
	)
	kb.Row(cancelButton(c))
	return c.Render(c.T("txn.date"), kb)
}

// pickToday advances only from the date step, so a double press of a stale
// button cannot resubmit or skip ahead.
func pickToday(c *bot.Context) error {
	if c.Sess.State != stateTxnDate {
		return nil
	}
	c.Sess.Set("date", time.Now().Format(format.DateLayout))
	return confirmTransaction(c)
}

func pickManualDate(c *bot.Context) error {
	if c.Sess.State != stateTxnDate {
		return nil
	}
	c.Sess.Enter(stateTxnDateManual)
	return c.Render(c.T("txn.date.manual_prompt"), cancelKeyboard(c))
}

func enterManualDate(c *bot.Context) error {
	msg := c.Event.(*models.MessageEvent)
	c.DeleteInbound()

	date, err := format.ParseDate(msg.Text)
	if err != nil {
		return c.Render("⚠️ "+c.T("txn.date.invalid"), cancelKeyboard(c))
	}
	c.Sess.Set("date", date)
	return confirmTransaction(c)
}

func confirmTransaction(c *bot.Context) error {
	c.Sess.Enter(stateTxnConfirm)

	kind, _ := c.Sess.Get("kind")
	amountRaw, _ := c.Sess.Get("amount")
	amount, _ := strconv.ParseInt(amountRaw, 10, 64)
	category, _ := c.Sess.Get("category")
	date, _ := c.Sess.Get("date")

	labelNS := "category."
	if kind == "income" {
		labelNS = "income."
	}

	lines := []string{
		format.Header(c.T("txn.confirm.title"), ""),
		"",
		c.T("txn.confirm.amount", format.Money(amount)),
		c.T("txn.confirm.category", c.T(labelNS+category)),
	}
	if desc, ok := c.Sess.Present("description"); ok {
		lines = append(lines, c.T("txn.confirm.description", desc))
	}
	lines = append(lines, c.T("txn.confirm.date", date))

	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("common.confirm"), Data: "confirm_submit"})
	kb.Row(cancelButton(c))
	return c.Render(strings.Join(lines, "\n"), kb)
}

// submitTransaction is the flow's single mutating call. Expenses are sent as
// negative amounts; the backend tells the kinds apart by sign.
func submitTransaction(c *bot.Context) error {
	if c.Sess.State != stateTxnConfirm {
		return nil
	}

	kind, _ := c.Sess.Get("kind")
	amountRaw, _ := c.Sess.Get("amount")
	amount, err := strconv.ParseInt(amountRaw, 10, 64)
	if err != nil || amount <= 0 {
		c.Log.Error().Str("amount", amountRaw).Msg("corrupt amount at confirm")
		c.Sess.Reset()
		return c.Render("⚠️ "+c.T("error.rejected"), backKeyboard(c))
	}
	if kind == "expense" {
		amount = -amount
	}

	category, _ := c.Sess.Get("category")
	description, _ := c.Sess.Present("description")
	date, _ := c.Sess.Get("date")

	if err := c.Backend().ImportTransaction(c.Ctx, c.UserID(), amount, category, description, date); err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}

	savedKey := "txn.saved.expense"
	if kind == "income" {
		savedKey = "txn.saved.income"
	}
	c.Sess.Reset()
	return c.Render(c.T(savedKey), backKeyboard(c))
}
