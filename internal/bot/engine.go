package bot

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/services/advisor"
	"github.com/finora/bot-service/internal/services/profile"
	"github.com/finora/bot-service/internal/services/rpc"
	"github.com/finora/bot-service/internal/services/session"
	"github.com/finora/bot-service/internal/transport"
)

// Engine wires the pipeline, the router and the shared services together and
// serializes event handling per user.
type Engine struct {
	backend  rpc.Backend
	sender   transport.Sender
	sessions session.Store
	profiles *profile.Service
	advisor  *advisor.Advisor
	logger   zerolog.Logger

	pipeline []Interceptor
	router   *Router

	locks userLocks
}

// Deps holds the services the engine hands to handlers through the Context.
type Deps struct {
	Backend  rpc.Backend
	Sender   transport.Sender
	Sessions session.Store
	Profiles *profile.Service
	Advisor  *advisor.Advisor
	Logger   zerolog.Logger
}

// NewEngine builds an engine with the standard interceptor chain: language
// resolution, then the language-selection gate, then the registration gate.
func NewEngine(d Deps) *Engine {
	e := &Engine{
		backend:  d.Backend,
		sender:   d.Sender,
		sessions: d.Sessions,
		profiles: d.Profiles,
		advisor:  d.Advisor,
		logger:   d.Logger,
		router:   NewRouter(),
	}
	e.pipeline = []Interceptor{
		InterceptorFunc(e.resolveLanguage),
		InterceptorFunc(e.languageSelectionGate),
		InterceptorFunc(e.registrationGate),
	}
	return e
}

// Router returns the routing table for flow registration.
func (e *Engine) Router() *Router { return e.router }

// HandleEvent processes one inbound event end to end. It satisfies
// transport.EventHandler. Events from the same user run strictly one at a
// time; events from different users run concurrently.
func (e *Engine) HandleEvent(ctx context.Context, ev models.Event) {
	userID := ev.User().ID
	lock := e.locks.acquire(userID)
	defer e.locks.release(userID, lock)

	log := e.logger.With().Int64("user_id", userID).Int64("chat_id", ev.Chat()).Logger()

	sess, err := e.sessions.Get(ctx, userID, ev.Chat())
	if err != nil {
		log.Error().Err(err).Msg("session load failed")
		return
	}

	c := &Context{
		Ctx:    ctx,
		Event:  ev,
		Sess:   sess,
		Log:    log,
		engine: e,
	}

	res, err := e.runPipeline(c)
	if err != nil {
		log.Error().Err(err).Msg("pipeline failed")
	} else if res == Pass {
		if err := e.router.Route(c); err != nil {
			log.Error().Err(err).Str("state", sess.State).Msg("handler failed")
		}
	}

	// One save per event: the session the handler mutated is written back
	// atomically under the user lock.
	if err := e.sessions.Put(ctx, sess); err != nil {
		log.Error().Err(err).Msg("session save failed")
	}

	// Acknowledge the button press so the client drops its spinner. Once per
	// callback, whether a gate or a handler consumed it.
	if cb, ok := ev.(*models.CallbackEvent); ok && cb.CallbackID != "" {
		if err := e.sender.AnswerCallback(ctx, cb.CallbackID); err != nil {
			log.Debug().Err(err).Msg("callback ack failed")
		}
	}
}

// userLock is one user's serialization point plus the number of events
// holding or waiting on it.
type userLock struct {
	mu   sync.Mutex
	refs int
}

// userLocks hands out one mutex per user id. Entries are dropped as soon as
// the last holder releases, so the map tracks active users, not every user
// ever seen.
type userLocks struct {
	mu sync.Mutex
	m  map[int64]*userLock
}

func (l *userLocks) acquire(id int64) *userLock {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[int64]*userLock)
	}
	entry, ok := l.m[id]
	if !ok {
		entry = &userLock{}
		l.m[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return entry
}

func (l *userLocks) release(id int64, entry *userLock) {
	entry.mu.Unlock()

	l.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.m, id)
	}
	l.mu.Unlock()
}
