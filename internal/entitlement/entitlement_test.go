package entitlement

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()
	mem := NewMemoryStorage()
	return New(mem, DefaultPolicy(), nil), mem
}

func TestFreshSessionIsFree(t *testing.T) {
	s, _ := newTestStore(t)
	status := s.Status()
	if status.Tier != TierFree {
		t.Fatalf("expected free, got %s", status.Tier)
	}
	if !status.HasAccess {
		t.Error("fresh free session with quota should have access")
	}
	if status.DaysRemaining != 0 || status.ExpiringSoon {
		t.Error("free tier has no expiry state")
	}
}

func TestRedeemValidCode(t *testing.T) {
	s, mem := newTestStore(t)
	if err := s.RedeemCode("LARK0001"); err != nil {
		t.Fatalf("redeem: %v", err)
	}
	status := s.Status()
	if status.Tier != TierActivated {
		t.Fatalf("expected activated, got %s", status.Tier)
	}
	if status.DaysRemaining != 365 {
		t.Errorf("expected 365 days remaining, got %d", status.DaysRemaining)
	}
	if _, ok, _ := mem.Get(KeyActivationDate); !ok {
		t.Error("activation date not persisted")
	}
	if v, _, _ := mem.Get(KeyActivationCode); v != "LARK0001" {
		t.Errorf("activation code not persisted, got %q", v)
	}
}

func TestRedeemInvalidCodes(t *testing.T) {
	s, _ := newTestStore(t)
	for _, code := range []string{
		"LARK0081", // out of range
		"LARK0000", // out of range
		"LARK00A1", // malformed
		"LARK123",  // too short
		"LARK12345",
		"lark0001", // wrong case
		"XYZW0001",
		"",
	} {
		err := s.RedeemCode(code)
		if !errors.Is(err, ErrInvalidCode) {
			t.Errorf("code %q: expected ErrInvalidCode, got %v", code, err)
		}
	}
	if s.Status().Tier != TierFree {
		t.Error("failed redemption must not change state")
	}
}

func TestRedeemUpperBound(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.RedeemCode("LARK0080"); err != nil {
		t.Fatalf("LARK0080 should be valid: %v", err)
	}
}

func TestRedeemOverwritesWhileActivated(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemoryStorage()
	now := start
	s := New(mem, DefaultPolicy(), func() time.Time { return now })

	s.RedeemCode("LARK0001")
	now = start.Add(100 * 24 * time.Hour)
	if err := s.RedeemCode("LARK0042"); err != nil {
		t.Fatalf("second redeem: %v", err)
	}
	if got := s.Status().DaysRemaining; got != 365 {
		t.Errorf("second redemption should restart the window, got %d days", got)
	}
	if v, _, _ := mem.Get(KeyActivationCode); v != "LARK0042" {
		t.Errorf("stored code not overwritten, got %q", v)
	}
}

func TestRedeemDisabledByPolicy(t *testing.T) {
	mem := NewMemoryStorage()
	s := New(mem, Policy{FreeQuota: 0, Enabled: map[Tier]bool{}}, nil)
	if err := s.RedeemCode("LARK0001"); !errors.Is(err, ErrTierDisabled) {
		t.Errorf("expected ErrTierDisabled, got %v", err)
	}
}

func TestPaidExpiresLazily(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemoryStorage()
	mem.Set(KeyPurchaseDate, start.Format(time.RFC3339))

	// 31 days later the stored purchase is stale.
	s := New(mem, DefaultPolicy(), fixedClock(start.Add(31*24*time.Hour)))
	status := s.Status()
	if status.Tier != TierFree {
		t.Fatalf("expected lazy expiry to free, got %s", status.Tier)
	}
	if _, ok, _ := mem.Get(KeyPurchaseDate); ok {
		t.Error("stale purchase date not cleared")
	}
}

func TestPaidExpiryDuringSession(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemoryStorage()
	mem.Set(KeyPurchaseDate, start.Format(time.RFC3339))

	now := start.Add(24 * time.Hour)
	s := New(mem, DefaultPolicy(), func() time.Time { return now })
	if got := s.Status().Tier; got != TierPaid {
		t.Fatalf("expected paid, got %s", got)
	}

	// The window runs out while the session is live; the next read flips.
	now = start.Add(31 * 24 * time.Hour)
	if got := s.Status().Tier; got != TierFree {
		t.Fatalf("expected free after in-session expiry, got %s", got)
	}
	if _, ok, _ := mem.Get(KeyPurchaseDate); ok {
		t.Error("stale purchase date not cleared")
	}
}

func TestDaysRemainingCeiling(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemoryStorage()
	mem.Set(KeyPurchaseDate, start.Format(time.RFC3339))

	// 29 days and one hour in: a partial day still counts as one.
	s := New(mem, DefaultPolicy(), fixedClock(start.Add(29*24*time.Hour+time.Hour)))
	if got := s.Status().DaysRemaining; got != 1 {
		t.Errorf("expected 1 day remaining, got %d", got)
	}
}

func TestExpiringSoon(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemoryStorage()
	mem.Set(KeyPurchaseDate, start.Format(time.RFC3339))

	s := New(mem, DefaultPolicy(), fixedClock(start.Add(26*24*time.Hour)))
	status := s.Status()
	if status.DaysRemaining != 4 {
		t.Fatalf("expected 4 days remaining, got %d", status.DaysRemaining)
	}
	if !status.ExpiringSoon {
		t.Error("4 days remaining should flag expiring soon")
	}

	early := New(mem, DefaultPolicy(), fixedClock(start.Add(10*24*time.Hour)))
	if early.Status().ExpiringSoon {
		t.Error("20 days remaining should not flag expiring soon")
	}
}

func TestActivationPreferredOverPurchase(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemoryStorage()
	mem.Set(KeyActivationDate, start.Format(time.RFC3339))
	mem.Set(KeyPurchaseDate, start.Format(time.RFC3339))

	s := New(mem, DefaultPolicy(), fixedClock(start.Add(24*time.Hour)))
	if got := s.Status().Tier; got != TierActivated {
		t.Errorf("activation record should win, got %s", got)
	}
}

func TestBothStaleClearedOnInit(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mem := NewMemoryStorage()
	mem.Set(KeyActivationDate, start.Format(time.RFC3339))
	mem.Set(KeyActivationCode, "LARK0001")
	mem.Set(KeyPurchaseDate, start.Format(time.RFC3339))

	s := New(mem, DefaultPolicy(), fixedClock(start.Add(400*24*time.Hour)))
	if got := s.Status().Tier; got != TierFree {
		t.Fatalf("expected free, got %s", got)
	}
	for _, key := range []string{KeyActivationDate, KeyActivationCode, KeyPurchaseDate} {
		if _, ok, _ := mem.Get(key); ok {
			t.Errorf("stale key %s not cleared", key)
		}
	}
}

func TestMalformedDateTreatedAsStale(t *testing.T) {
	mem := NewMemoryStorage()
	mem.Set(KeyActivationDate, "not-a-date")

	s := New(mem, DefaultPolicy(), nil)
	if got := s.Status().Tier; got != TierFree {
		t.Fatalf("expected free, got %s", got)
	}
	if _, ok, _ := mem.Get(KeyActivationDate); ok {
		t.Error("malformed activation date not cleared")
	}
}

func TestQuota(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 10; i++ {
		if !s.Status().HasAccess {
			t.Fatalf("access lost after %d messages", i)
		}
		s.IncrementMessageCount()
	}
	status := s.Status()
	if status.MessagesUsed != 10 {
		t.Fatalf("expected 10 used, got %d", status.MessagesUsed)
	}
	if status.HasAccess {
		t.Error("access should be exhausted at the quota")
	}

	s.ResetMessageCount()
	if status := s.Status(); status.MessagesUsed != 0 || !status.HasAccess {
		t.Error("reset did not restore the allowance")
	}
}

func TestQuotaPersists(t *testing.T) {
	mem := NewMemoryStorage()
	s := New(mem, DefaultPolicy(), nil)
	s.IncrementMessageCount()
	s.IncrementMessageCount()

	restored := New(mem, DefaultPolicy(), nil)
	if got := restored.Status().MessagesUsed; got != 2 {
		t.Errorf("expected 2 used after restore, got %d", got)
	}
}

func TestIncrementNoopWhenNotFree(t *testing.T) {
	s, _ := newTestStore(t)
	s.RedeemCode("LARK0001")
	s.IncrementMessageCount()
	if got := s.Status().MessagesUsed; got != 0 {
		t.Errorf("activated session counted messages: %d", got)
	}
}

func TestZeroQuotaVariant(t *testing.T) {
	mem := NewMemoryStorage()
	s := New(mem, Policy{FreeQuota: 0, Enabled: map[Tier]bool{}}, nil)
	if s.Status().HasAccess {
		t.Error("zero-quota free session must not have access")
	}
}

func TestConfirmPurchase(t *testing.T) {
	s, mem := newTestStore(t)
	s.RedeemCode("LARK0001")
	if err := s.ConfirmPurchase(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	status := s.Status()
	if status.Tier != TierPaid {
		t.Fatalf("expected paid, got %s", status.Tier)
	}
	if status.DaysRemaining != 30 {
		t.Errorf("expected 30 days, got %d", status.DaysRemaining)
	}
	// At most one tier timestamp may be live.
	if _, ok, _ := mem.Get(KeyActivationDate); ok {
		t.Error("activation record should be cleared by a purchase")
	}

	s.IncrementMessageCount()
	if got := s.Status().MessagesUsed; got != 0 {
		t.Errorf("paid session counted messages: %d", got)
	}
}

func TestPurchaseSignalConsumedOnce(t *testing.T) {
	s, _ := newTestStore(t)
	if s.ConsumePurchaseSignal() {
		t.Fatal("no signal expected before a purchase")
	}
	s.ConfirmPurchase()
	if !s.ConsumePurchaseSignal() {
		t.Fatal("signal expected after a purchase")
	}
	if s.ConsumePurchaseSignal() {
		t.Error("signal must be observed at most once")
	}
}

// failingStorage errors on every operation.
type failingStorage struct{}

func (failingStorage) Get(string) (string, bool, error) { return "", false, errors.New("boom") }
func (failingStorage) Set(string, string) error         { return errors.New("boom") }
func (failingStorage) Delete(string) error              { return errors.New("boom") }

func TestStorageFailureDegradesToFree(t *testing.T) {
	s := New(failingStorage{}, DefaultPolicy(), nil)
	status := s.Status()
	if status.Tier != TierFree {
		t.Fatalf("expected fresh free state, got %s", status.Tier)
	}
	// Mutations stay in memory; nothing may panic or propagate.
	s.IncrementMessageCount()
	if got := s.Status().MessagesUsed; got != 1 {
		t.Errorf("in-memory counter should still work, got %d", got)
	}
}
