// Package tutor wires content resolution, answer composition and
// entitlement tracking into one question-answering session.
package tutor

import (
	"context"

	"github.com/larklabs/gastutor/internal/catalog"
	"github.com/larklabs/gastutor/internal/composer"
	"github.com/larklabs/gastutor/internal/entitlement"
	"github.com/larklabs/gastutor/internal/resolver"
	"github.com/larklabs/gastutor/internal/store"
)

// Transcript records asked questions and their answers.
type Transcript interface {
	AppendMessage(ctx context.Context, role, level, content string) (*store.Message, error)
}

// Session answers questions for one certification level.
type Session struct {
	level       catalog.Level
	entitlement *entitlement.Store
	composer    *composer.Composer
	transcript  Transcript
}

// New creates a session. transcript may be nil, in which case asks are
// answered but not recorded.
func New(level catalog.Level, ent *entitlement.Store, comp *composer.Composer, transcript Transcript) *Session {
	return &Session{level: level, entitlement: ent, composer: comp, transcript: transcript}
}

// Ask answers a free-text question. It is total: every input, including
// the empty string, produces a document. The free-tier message counter
// is incremented as a side effect, independent of what matched.
func (s *Session) Ask(ctx context.Context, text string) string {
	res := resolver.Resolve(text, s.level)
	doc := s.composer.Compose(res, text, s.level)

	s.entitlement.IncrementMessageCount()

	if s.transcript != nil {
		// Transcript is display data; a failed write never blocks the answer.
		s.transcript.AppendMessage(ctx, store.RoleUser, string(s.level), text)
		s.transcript.AppendMessage(ctx, store.RoleAssistant, string(s.level), doc)
	}
	return doc
}

// Welcome returns the opening message for the session's level.
func (s *Session) Welcome() string {
	return s.composer.Welcome(s.level)
}

// Status reports the current entitlement snapshot.
func (s *Session) Status() entitlement.Status {
	return s.entitlement.Status()
}
