// Package entitlement tracks which access tier a session is in and
// enforces per-tier quotas and expiry.
package entitlement

import (
	"strconv"
	"time"
)

// Tier is the access tier of a session.
type Tier string

const (
	TierFree      Tier = "free"
	TierPaid      Tier = "paid"
	TierActivated Tier = "activated"
)

// Durable storage keys. The date keys hold RFC 3339 instants.
const (
	KeyActivationDate = "student-activation-date"
	KeyActivationCode = "student-activation-code"
	KeyPurchaseDate   = "pro-purchase-date"
	KeyPurchaseSignal = "pro-purchase-new"
	KeyMessagesUsed   = "free-messages-used"
)

// Access windows per tier. Free has no expiry.
const (
	PaidWindow      = 30 * 24 * time.Hour
	ActivatedWindow = 365 * 24 * time.Hour
)

// expiringSoonDays is the threshold below which a paid or activated
// session counts as expiring soon.
const expiringSoonDays = 5

// Policy selects which product variant is in effect.
type Policy struct {
	// FreeQuota is the number of free-tier messages allowed. Zero means
	// metered access is categorically off for free sessions.
	FreeQuota int
	// Enabled marks which non-free tiers can be entered.
	Enabled map[Tier]bool
}

// DefaultPolicy is the metered variant: 10 free messages, all tiers.
func DefaultPolicy() Policy {
	return Policy{
		FreeQuota: 10,
		Enabled:   map[Tier]bool{TierPaid: true, TierActivated: true},
	}
}

// Status is a point-in-time snapshot of the session's entitlement.
type Status struct {
	Tier          Tier `json:"tier"`
	HasAccess     bool `json:"has_access"`
	MessagesUsed  int  `json:"messages_used"`
	MessageLimit  int  `json:"message_limit"`
	DaysRemaining int  `json:"days_remaining"`
	ExpiringSoon  bool `json:"expiring_soon"`
}

// Store owns the entitlement state machine. In-memory fields cache the
// durable storage, which remains the source of truth across restarts.
// Expiry is evaluated lazily on every read; there is no timer.
type Store struct {
	storage Storage
	policy  Policy
	now     func() time.Time

	tier         Tier
	started      time.Time
	messagesUsed int
}

// New restores entitlement state from storage. A nil now defaults to
// time.Now. Storage read failures degrade to a fresh free session.
func New(storage Storage, policy Policy, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{storage: storage, policy: policy, now: now, tier: TierFree}
	s.load()
	return s
}

// load reads the durable records. A live activation record is preferred
// over a purchase record; stale or unreadable records are cleared.
func (s *Store) load() {
	if v, ok, err := s.storage.Get(KeyMessagesUsed); err == nil && ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.messagesUsed = n
		}
	}

	if s.policy.Enabled[TierActivated] {
		if start, ok := s.readDate(KeyActivationDate); ok {
			if daysRemaining(start, ActivatedWindow, s.now()) > 0 {
				s.tier = TierActivated
				s.started = start
				return
			}
			s.clearActivation()
		}
	}
	if s.policy.Enabled[TierPaid] {
		if start, ok := s.readDate(KeyPurchaseDate); ok {
			if daysRemaining(start, PaidWindow, s.now()) > 0 {
				s.tier = TierPaid
				s.started = start
				return
			}
			s.clearPurchase()
		}
	}
}

// readDate parses the RFC 3339 instant at key. A present but malformed
// value is treated as stale and cleared.
func (s *Store) readDate(key string) (time.Time, bool) {
	v, ok, err := s.storage.Get(key)
	if err != nil || !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		s.storage.Delete(key)
		return time.Time{}, false
	}
	return t, true
}

func (s *Store) clearActivation() {
	s.storage.Delete(KeyActivationDate)
	s.storage.Delete(KeyActivationCode)
}

func (s *Store) clearPurchase() {
	s.storage.Delete(KeyPurchaseDate)
}

// refresh applies lazy expiry: a paid or activated session whose window
// has run out drops back to free and its stale record is cleared.
func (s *Store) refresh() {
	if s.tier == TierFree {
		return
	}
	if s.remaining() > 0 {
		return
	}
	if s.tier == TierActivated {
		s.clearActivation()
	} else {
		s.clearPurchase()
	}
	s.tier = TierFree
	s.started = time.Time{}
}

func (s *Store) window() time.Duration {
	if s.tier == TierActivated {
		return ActivatedWindow
	}
	return PaidWindow
}

func (s *Store) remaining() int {
	if s.tier == TierFree {
		return 0
	}
	return daysRemaining(s.started, s.window(), s.now())
}

// daysRemaining is max(0, ceil(start+window-now)) in whole days.
func daysRemaining(start time.Time, window time.Duration, now time.Time) int {
	left := start.Add(window).Sub(now)
	if left <= 0 {
		return 0
	}
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Status returns the current entitlement snapshot, applying lazy expiry
// first.
func (s *Store) Status() Status {
	s.refresh()
	days := s.remaining()
	return Status{
		Tier:          s.tier,
		HasAccess:     s.tier != TierFree || s.messagesUsed < s.policy.FreeQuota,
		MessagesUsed:  s.messagesUsed,
		MessageLimit:  s.policy.FreeQuota,
		DaysRemaining: days,
		ExpiringSoon:  s.tier != TierFree && days > 0 && days <= expiringSoonDays,
	}
}

// IncrementMessageCount counts one free-tier message. It is a no-op for
// paid and activated sessions.
func (s *Store) IncrementMessageCount() {
	s.refresh()
	if s.tier != TierFree {
		return
	}
	s.messagesUsed++
	s.storage.Set(KeyMessagesUsed, strconv.Itoa(s.messagesUsed))
}

// ResetMessageCount zeroes the free-tier counter unconditionally.
func (s *Store) ResetMessageCount() {
	s.messagesUsed = 0
	s.storage.Set(KeyMessagesUsed, "0")
}

// ConfirmPurchase records a completed Pro purchase: the session enters
// the paid tier for PaidWindow from now, and the one-shot purchase
// signal is set so the next session start can run first-time onboarding.
// Any activation record is cleared; at most one tier timestamp is live.
func (s *Store) ConfirmPurchase() error {
	if !s.policy.Enabled[TierPaid] {
		return ErrTierDisabled
	}
	now := s.now()
	s.clearActivation()
	s.storage.Set(KeyPurchaseDate, now.Format(time.RFC3339))
	s.storage.Set(KeyPurchaseSignal, "1")
	s.tier = TierPaid
	s.started = now
	return nil
}

// ConsumePurchaseSignal reports whether a purchase just completed and
// clears the signal, so it is observed at most once.
func (s *Store) ConsumePurchaseSignal() bool {
	_, ok, err := s.storage.Get(KeyPurchaseSignal)
	if err != nil || !ok {
		return false
	}
	s.storage.Delete(KeyPurchaseSignal)
	return true
}
