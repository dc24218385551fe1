package flows

import (
	"strings"
	"time"

	"github.com/finora/bot-service/internal/bot"
	apperrors "github.com/finora/bot-service/internal/domain/errors"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/pkg/format"
	"github.com/finora/bot-service/internal/transport"
)

// Tour states. The shared "onb" prefix keeps the data bag alive across tour
// steps and wipes it when the user bridges into a real flow.
const (
	stateTourWelcome = "onb:welcome"
	stateTourFocus   = "onb:focus"
	stateTourGoal    = "onb:goal"
	stateTourIncome  = "onb:income"
)

func registerOnboarding(r *bot.Router) {
	r.Callback("onb_register", promptContact)
	r.Contact(handleContact)

	r.Callback("onb_start", beginTour)
	r.Callback("onb_skip", skipTour)
	r.Callback("onb_focus_save", func(c *bot.Context) error { return pickFocus(c, "save") })
	r.Callback("onb_focus_track", func(c *bot.Context) error { return pickFocus(c, "track") })
	r.Callback("onb_goal_create", tourGoalCreate)
	r.Callback("onb_goal_skip", tourGoalSkip)
	r.Callback("onb_income_add", tourIncomeAdd)
	r.Callback("onb_expense_add", tourExpenseAdd)
	r.Callback("onb_finish", finishTour)
}

func registerCommand(c *bot.Context) error {
	c.DeleteInbound()
	if c.Profiles().IsRegistered(c.Ctx, c.UserID()) {
		return showMenu(c)
	}
	return promptContact(c)
}

func showOnboarding(c *bot.Context) error {
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("registration.button"), Data: "onb_register"})
	return c.Render(c.T("onboarding.welcome")+"\n\n"+c.T("registration.required"), kb)
}

// promptContact asks for the phone number. The contact request needs a reply
// keyboard, which cannot live on the window message, so this is the one step
// that sends outside the window.
func promptContact(c *bot.Context) error {
	if err := c.Render(c.T("registration.share_contact"), nil); err != nil {
		return err
	}
	return c.Sender().RequestContact(c.Ctx, c.ChatID(), c.T("registration.share_contact"), c.T("registration.contact_button"))
}

// handleContact completes registration from a shared contact. Only the user's
// own contact is accepted.
func handleContact(c *bot.Context) error {
	ev, ok := c.Event.(*models.MessageEvent)
	if !ok || ev.Contact == nil {
		return nil
	}
	c.DeleteInbound()

	if ev.Contact.UserID != c.UserID() {
		return c.Render(c.T("registration.foreign_contact"), nil)
	}

	err := c.Backend().RegisterPhone(c.Ctx, c.UserID(), ev.Contact.Phone, c.Event.User().Name)
	if err != nil {
		if appErr, ok := apperrors.GetAppError(err); ok {
			switch appErr.Code {
			case "phone_in_use":
				return c.Render("⚠️ "+c.T("registration.phone_in_use"), nil)
			case "invalid_phone":
				return c.Render("⚠️ "+c.T("registration.invalid_phone"), nil)
			default:
				return c.Render("⚠️ "+c.T("registration.failed"), nil)
			}
		}
		return c.Render("⚠️ "+c.T("error.unavailable"), nil)
	}

	if err := c.Profiles().SetRegistered(c.Ctx, c.UserID(), true); err != nil {
		c.Log.Warn().Err(err).Msg("registration flag save failed")
	}
	c.Sess.Reset()
	if err := c.Render(c.T("registration.success"), nil); err != nil {
		return err
	}
	// A fresh window keeps the success message visible above what follows.
	c.Sess.WindowMessageID = 0

	if loadFlags(c).IsNewUser {
		return startTour(c)
	}
	return showMenu(c)
}

// startTour opens the first-steps walkthrough for a freshly registered user:
// welcome, then a focus pick, then offers to create a goal and record a first
// operation, each skippable.
func startTour(c *bot.Context) error {
	c.Sess.Enter(stateTourWelcome)
	kb := &transport.Keyboard{}
	kb.Row(
		transport.Button{Text: c.T("tour.begin"), Data: "onb_start"},
		transport.Button{Text: c.T("tour.skip"), Data: "onb_skip"},
	)
	return c.Render(format.Header(c.T("tour.welcome"), "")+"\n\n"+c.T("tour.welcome_body"), kb)
}

func beginTour(c *bot.Context) error {
	if c.Sess.State != stateTourWelcome {
		return nil
	}
	c.Sess.Enter(stateTourFocus)
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("tour.focus_save"), Data: "onb_focus_save"})
	kb.Row(transport.Button{Text: c.T("tour.focus_track"), Data: "onb_focus_track"})
	kb.Row(transport.Button{Text: c.T("tour.skip"), Data: "onb_skip"})
	return c.Render(format.Header(c.T("tour.focus"), "")+"\n\n"+c.T("tour.focus_body"), kb)
}

// skipTour leaves the walkthrough from any of its states.
func skipTour(c *bot.Context) error {
	if !strings.HasPrefix(c.Sess.State, "onb:") {
		return nil
	}
	c.Sess.Reset()
	return showMenu(c)
}

func pickFocus(c *bot.Context, focus string) error {
	if c.Sess.State != stateTourFocus {
		return nil
	}
	c.Sess.Set("focus", focus)
	c.Sess.Enter(stateTourGoal)

	title := c.T("tour.goal_save")
	if focus == "track" {
		title = c.T("tour.goal_track")
	}
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("tour.goal_create"), Data: "onb_goal_create"})
	kb.Row(transport.Button{Text: c.T("tour.skip"), Data: "onb_goal_skip"})
	return c.Render(format.Header(title, "")+"\n\n"+c.T("tour.goal_body"), kb)
}

func tourGoalCreate(c *bot.Context) error {
	if c.Sess.State != stateTourGoal {
		return nil
	}
	return startGoalCreation(c)
}

func tourGoalSkip(c *bot.Context) error {
	if c.Sess.State != stateTourGoal {
		return nil
	}
	c.Sess.Enter(stateTourIncome)
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("tour.income_add"), Data: "onb_income_add"})
	kb.Row(transport.Button{Text: c.T("tour.expense_add"), Data: "onb_expense_add"})
	kb.Row(transport.Button{Text: c.T("tour.later"), Data: "onb_finish"})
	return c.Render(format.Header(c.T("tour.income"), "")+"\n\n"+c.T("tour.income_body"), kb)
}

func tourIncomeAdd(c *bot.Context) error {
	if c.Sess.State != stateTourIncome {
		return nil
	}
	return startIncome(c)
}

func tourExpenseAdd(c *bot.Context) error {
	if c.Sess.State != stateTourIncome {
		return nil
	}
	return startExpense(c)
}

// finishTour closes the walkthrough with today's summary; an unreachable
// backend degrades to an empty day rather than blocking the exit.
func finishTour(c *bot.Context) error {
	if c.Sess.State != stateTourIncome {
		return nil
	}
	c.Sess.Reset()

	stats, err := c.Backend().DailyTransactions(c.Ctx, c.UserID(), time.Now().Format(format.DateLayout))
	if err != nil {
		c.Log.Debug().Err(err).Msg("daily summary unavailable at tour exit")
		stats = &models.DailyStats{}
	}

	lines := []string{
		format.Header(c.T("tour.summary"), ""),
		"",
		c.T("today.income", format.Money(stats.Income)),
		c.T("today.expense", format.Money(stats.Expense)),
		c.T("today.balance", format.Money(stats.Income-stats.Expense)),
	}
	return c.Render(strings.Join(lines, "\n"), menuKeyboard(c))
}
