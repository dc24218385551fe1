package models

// Session is the per-user dialog state: the active flow's state tag, the
// collected data bag and the id of the window message edited in place.
// A zero State means no flow is active.
type Session struct {
	UserID          int64             `json:"userId"`
	ChatID          int64             `json:"chatId"`
	State           string            `json:"state"`
	Data            map[string]string `json:"data"`
	WindowMessageID int64             `json:"windowMessageId"`
}

// NewSession creates an empty session for the given user and chat.
func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID: userID,
		ChatID: chatID,
		Data:   map[string]string{},
	}
}

// Active reports whether a flow is in progress.
func (s *Session) Active() bool {
	return s.State != ""
}

// Enter switches to a new state, wiping the data bag when the state belongs to
// a different flow. Flow membership is the tag prefix up to the first colon,
// so "expense:amount" and "expense:confirm" share one bag.
func (s *Session) Enter(state string) {
	if flowOf(s.State) != flowOf(state) {
		s.Data = map[string]string{}
	}
	s.State = state
}

// Reset clears the active flow and all collected data. The window reference
// survives so the next render can reuse the tracked message.
func (s *Session) Reset() {
	s.State = ""
	s.Data = map[string]string{}
}

// Get returns the value stored under key, with ok reporting presence. An
// explicitly absent optional field is stored as AbsentValue.
func (s *Session) Get(key string) (string, bool) {
	v, ok := s.Data[key]
	return v, ok
}

// Set stores a collected field.
func (s *Session) Set(key, value string) {
	if s.Data == nil {
		s.Data = map[string]string{}
	}
	s.Data[key] = value
}

// AbsentValue marks an optional step that was explicitly skipped, as opposed
// to a field that was never collected.
const AbsentValue = "\x00absent"

// SetAbsent marks an optional field as explicitly skipped.
func (s *Session) SetAbsent(key string) {
	s.Set(key, AbsentValue)
}

// Present returns the stored value unless the field was skipped or never set.
func (s *Session) Present(key string) (string, bool) {
	v, ok := s.Data[key]
	if !ok || v == AbsentValue {
		return "", false
	}
	return v, true
}

func flowOf(state string) string {
	for i := 0; i < len(state); i++ {
		if state[i] == ':' {
			return state[:i]
		}
	}
	return state
}
