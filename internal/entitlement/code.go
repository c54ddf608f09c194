package entitlement

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidCode covers both malformed and out-of-range activation
// codes; callers present the two identically.
var ErrInvalidCode = errors.New("invalid activation code")

// ErrTierDisabled means the requested tier is off in this configuration.
var ErrTierDisabled = errors.New("tier disabled by policy")

// Activation codes are CodePrefix followed by four digits whose numeric
// value falls in [codeMin, codeMax].
const (
	CodePrefix = "LARK"
	codeMin    = 1
	codeMax    = 80
)

var codeRegex = regexp.MustCompile(`^` + CodePrefix + `(\d{4})$`)

// validateCode checks the code grammar and range.
func validateCode(code string) error {
	m := codeRegex.FindStringSubmatch(code)
	if m == nil {
		return ErrInvalidCode
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < codeMin || n > codeMax {
		return ErrInvalidCode
	}
	return nil
}

// RedeemCode enters the activated tier for ActivatedWindow from now.
// Invalid codes leave the state unchanged. Redeeming while already
// activated overwrites the activation instant; that is intended.
func (s *Store) RedeemCode(code string) error {
	if !s.policy.Enabled[TierActivated] {
		return ErrTierDisabled
	}
	if err := validateCode(code); err != nil {
		return err
	}
	now := s.now()
	s.clearPurchase()
	s.storage.Set(KeyActivationDate, now.Format(time.RFC3339))
	s.storage.Set(KeyActivationCode, code)
	s.tier = TierActivated
	s.started = now
	return nil
}
