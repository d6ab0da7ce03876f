package checkout

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPhone  = errors.New("please enter a valid 10-digit mobile number")
	ErrInvalidCode   = errors.New("please enter a valid 6-digit OTP")
	ErrCodeNotSent   = errors.New("please request an OTP first")
	ErrPhoneMismatch = errors.New("OTP was sent to a different mobile number")
	ErrNotVerified   = errors.New("please verify your mobile number first")
)

// PhoneVerifier simulates mobile number verification. Codes are generated
// and logged but never delivered, and the code value is not checked on
// verification: only its shape is.
type PhoneVerifier struct {
	store  VerificationStore
	ttl    time.Duration
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewPhoneVerifier(store VerificationStore, ttl time.Duration, logger logrus.FieldLogger) *PhoneVerifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PhoneVerifier{
		store:  store,
		ttl:    ttl,
		logger: logger.WithField("component", "phone_verifier"),
		now:    time.Now,
	}
}

// SendCode starts verification of phone for the user. Sending again for a
// number that is already verified keeps the verification.
func (p *PhoneVerifier) SendCode(ctx context.Context, userID, phone string) error {
	phone = strings.TrimSpace(phone)
	if !IsDigits(phone, 10) {
		return ErrInvalidPhone
	}

	current, err := p.store.Get(ctx, userID)
	if err != nil && !errors.Is(err, ErrNoVerification) {
		return err
	}
	if current != nil && current.Verified && current.Phone == phone {
		return nil
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	v := &Verification{Phone: phone, Code: code, SentAt: p.now()}
	if err := p.store.Save(ctx, userID, v, p.ttl); err != nil {
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"phone":   maskPhone(phone),
		"code":    code,
	}).Info("OTP sent (simulated)")
	return nil
}

// VerifyCode marks the phone as verified. Any 6-digit code is accepted.
func (p *PhoneVerifier) VerifyCode(ctx context.Context, userID, phone, code string) error {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if !IsDigits(phone, 10) {
		return ErrInvalidPhone
	}
	if !IsDigits(code, 6) {
		return ErrInvalidCode
	}

	v, err := p.store.Get(ctx, userID)
	if errors.Is(err, ErrNoVerification) {
		return ErrCodeNotSent
	} else if err != nil {
		return err
	}
	if v.Phone != phone {
		return ErrPhoneMismatch
	}

	now := p.now()
	v.Verified = true
	v.VerifiedAt = &now
	return p.store.Save(ctx, userID, v, p.ttl)
}

// IsVerified reports whether the user has verified phone.
func (p *PhoneVerifier) IsVerified(ctx context.Context, userID, phone string) (bool, error) {
	v, err := p.store.Get(ctx, userID)
	if errors.Is(err, ErrNoVerification) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return v.Verified && v.Phone == strings.TrimSpace(phone), nil
}

// Consume clears the verification once an order has been placed with it.
func (p *PhoneVerifier) Consume(ctx context.Context, userID string) error {
	return p.store.Delete(ctx, userID)
}

// IsDigits reports whether s is exactly n ASCII digits.
func IsDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func maskPhone(phone string) string {
	if len(phone) < 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
