package bot

import (
	"sort"
	"strings"

	"github.com/finora/bot-service/internal/domain/models"
)

// HandlerFunc handles one routed event.
type HandlerFunc func(c *Context) error

// Router maps events to handlers. Commands and exact callback payloads are
// matched first; free-form text is matched by the session's dialog state;
// callback payloads that carry an argument match by longest registered
// prefix.
type Router struct {
	commands         map[string]HandlerFunc
	states           map[string]HandlerFunc
	callbacks        map[string]HandlerFunc
	callbackPrefixes []prefixRoute
	contact          HandlerFunc
}

type prefixRoute struct {
	prefix  string
	handler HandlerFunc
}

// NewRouter returns an empty routing table.
func NewRouter() *Router {
	return &Router{
		commands:  make(map[string]HandlerFunc),
		states:    make(map[string]HandlerFunc),
		callbacks: make(map[string]HandlerFunc),
	}
}

// Command registers a handler for a slash command ("/start").
func (r *Router) Command(name string, h HandlerFunc) {
	r.commands[name] = h
}

// State registers a handler for free-form text arriving while the session is
// in the given dialog state.
func (r *Router) State(state string, h HandlerFunc) {
	r.states[state] = h
}

// Callback registers a handler for an exact callback payload.
func (r *Router) Callback(data string, h HandlerFunc) {
	r.callbacks[data] = h
}

// CallbackPrefix registers a handler for callback payloads that start with
// the given prefix. When several prefixes match, the longest wins.
func (r *Router) CallbackPrefix(prefix string, h HandlerFunc) {
	r.callbackPrefixes = append(r.callbackPrefixes, prefixRoute{prefix: prefix, handler: h})
	sort.SliceStable(r.callbackPrefixes, func(i, j int) bool {
		return len(r.callbackPrefixes[i].prefix) > len(r.callbackPrefixes[j].prefix)
	})
}

// Contact registers the handler for shared phone contacts.
func (r *Router) Contact(h HandlerFunc) {
	r.contact = h
}

// Route finds the handler for the event and runs it. Events nothing matches
// are dropped: an unknown command, a stray callback from an expired keyboard
// or text outside any dialog state must not disturb the session.
func (r *Router) Route(c *Context) error {
	switch ev := c.Event.(type) {
	case *models.MessageEvent:
		if ev.Contact != nil && r.contact != nil {
			return r.contact(c)
		}
		if cmd, ok := commandName(ev.Text); ok {
			if h, ok := r.commands[cmd]; ok {
				return h(c)
			}
			c.Log.Debug().Str("command", cmd).Msg("unknown command ignored")
			return nil
		}
		if h, ok := r.states[c.Sess.State]; ok {
			return h(c)
		}
		c.Log.Debug().Str("state", c.Sess.State).Msg("text outside dialog state ignored")
		return nil

	case *models.CallbackEvent:
		if h, ok := r.callbacks[ev.Data]; ok {
			return h(c)
		}
		for _, pr := range r.callbackPrefixes {
			if strings.HasPrefix(ev.Data, pr.prefix) {
				return pr.handler(c)
			}
		}
		c.Log.Debug().Str("data", ev.Data).Msg("unmatched callback ignored")
		return nil
	}
	return nil
}

// commandName extracts the command from "/cmd@botname args" style text.
func commandName(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd := text
	if i := strings.IndexAny(cmd, " \n"); i >= 0 {
		cmd = cmd[:i]
	}
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	return cmd, len(cmd) > 1
}
