package house

import (
	"auction-house/internal/domain/account"
	"auction-house/internal/pkg/errs"
	"auction-house/internal/pkg/password"
)

// Register creates an account for the email, failing with ErrEmailTaken when
// it is already registered. Check-then-insert runs under one critical section.
func (h *House) Register(email, plainPassword string) (*account.Account, error) {
	creds, err := account.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hashing password")
	}

	h.accountsMu.Lock()
	defer h.accountsMu.Unlock()

	key := creds.Email().Value()
	if _, taken := h.accounts[key]; taken {
		return nil, errs.Mark(errs.New("email already registered: "+key), errs.ErrEmailTaken)
	}

	acct := account.NewAccount(creds.Email(), hash, h.cfg.StartingFunds, h.clock.Now())
	h.accounts[key] = acct
	return acct, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// report the same error so callers cannot probe which one failed.
func (h *House) Login(email, plainPassword string) (*account.Account, error) {
	h.accountsMu.RLock()
	acct, ok := h.accounts[email]
	h.accountsMu.RUnlock()

	if !ok {
		return nil, errs.ErrInvalidClient
	}
	if err := password.ComparePassword(acct.PasswordHash(), plainPassword); err != nil {
		return nil, errs.ErrInvalidClient
	}
	return acct, nil
}

// Profile returns the account for the email.
func (h *House) Profile(email string) (*account.Account, error) {
	h.accountsMu.RLock()
	defer h.accountsMu.RUnlock()

	acct, ok := h.accounts[email]
	if !ok {
		return nil, errs.ErrInvalidClient
	}
	return acct, nil
}

// lookup is the internal existence check used by buy and auction flows. The
// caller must not hold accountsMu.
func (h *House) lookup(email string) (*account.Account, error) {
	h.accountsMu.RLock()
	defer h.accountsMu.RUnlock()

	acct, ok := h.accounts[email]
	if !ok {
		return nil, errs.ErrInvalidClient
	}
	return acct, nil
}
