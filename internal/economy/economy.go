// Package economy implements the balance rules over the user ledger: wallet
// and bank per user, peer transfers, and wallet↔bank moves. Money never goes
// negative; operations that would break that are refused, not clamped.
//
// Business failures (insufficient funds, already registered) come back as a
// false result with a nil error. A non-nil error always means infrastructure
// trouble and is left for the dispatch layer to contain.
package economy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hbot/internal/db"
)

// errAborted marks a business-rule rollback inside a transaction closure. It
// never escapes the service.
var errAborted = errors.New("economy: aborted")

// Balance is one user's ledger row.
type Balance struct {
	Wallet int64 `db:"balance_wallet"`
	Bank   int64 `db:"balance_bank"`
}

type moveMode int

const (
	moveExact moveMode = iota
	moveDepositAll
	moveWithdrawAll
)

// BankMove describes a wallet↔bank movement. Positive deltas deposit
// (wallet→bank), negative deltas withdraw (bank→wallet).
type BankMove struct {
	delta int64
	mode  moveMode
}

// Exact moves a concrete signed amount between wallet and bank.
func Exact(delta int64) BankMove { return BankMove{delta: delta} }

// DepositAll moves the entire wallet into the bank.
var DepositAll = BankMove{mode: moveDepositAll}

// WithdrawAll moves the entire bank into the wallet.
var WithdrawAll = BankMove{mode: moveWithdrawAll}

// Service runs balance operations against the store.
type Service struct {
	conn *db.Connector
}

// New returns a Service over the given connector.
func New(conn *db.Connector) *Service {
	return &Service{conn: conn}
}

// UserID resolves a snowflake to the surrogate key, inserting a fresh row on
// first contact. Runs in its own transaction so concurrent first lookups of
// the same user cannot both insert.
func (s *Service) UserID(ctx context.Context, snowflake string) (int64, error) {
	var id int64
	err := s.conn.Transaction(ctx, func(q db.Querier) error {
		err := q.GetContext(ctx, &id, `SELECT id FROM users WHERE snowflake = $1`, snowflake)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return q.GetContext(ctx, &id, `INSERT INTO users (snowflake) VALUES ($1) RETURNING id`, snowflake)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user %s: %w", snowflake, err)
	}
	return id, nil
}

// GetBalance returns the wallet and bank balances, creating the row on first
// access.
func (s *Service) GetBalance(ctx context.Context, snowflake string) (Balance, error) {
	id, err := s.UserID(ctx, snowflake)
	if err != nil {
		return Balance{}, err
	}

	var bal Balance
	err = s.conn.Serialize(ctx, func(q db.Querier) error {
		return q.GetContext(ctx, &bal,
			`SELECT balance_wallet, balance_bank FROM users WHERE id = $1`, id)
	})
	if err != nil {
		return Balance{}, fmt.Errorf("failed to fetch balance for user %s (id %d): %w", snowflake, id, err)
	}
	return bal, nil
}

// SetBalance overwrites both balances. Callers are responsible for supplying
// non-negative values; the schema refuses anything else.
func (s *Service) SetBalance(ctx context.Context, snowflake string, bal Balance) error {
	id, err := s.UserID(ctx, snowflake)
	if err != nil {
		return err
	}
	return s.conn.Serialize(ctx, func(q db.Querier) error {
		_, err := q.ExecContext(ctx,
			`UPDATE users SET balance_wallet = $1, balance_bank = $2 WHERE id = $3`,
			bal.Wallet, bal.Bank, id)
		return err
	})
}

// AddBalance applies signed deltas to both balances in one atomic update, so
// concurrent adjustments never race through a read-modify-write.
func (s *Service) AddBalance(ctx context.Context, snowflake string, deltaWallet, deltaBank int64) error {
	id, err := s.UserID(ctx, snowflake)
	if err != nil {
		return err
	}
	return s.conn.Serialize(ctx, func(q db.Querier) error {
		_, err := q.ExecContext(ctx,
			`UPDATE users SET balance_wallet = balance_wallet + $1, balance_bank = balance_bank + $2 WHERE id = $3`,
			deltaWallet, deltaBank, id)
		return err
	})
}

// Transfer moves amount from one wallet to another inside a single
// transaction. Returns false when the sender's wallet cannot cover the amount
// (or the amount is not positive); neither side is touched in that case.
func (s *Service) Transfer(ctx context.Context, fromSnowflake, toSnowflake string, amount int64) (bool, error) {
	if amount <= 0 {
		return false, nil
	}

	fromID, err := s.UserID(ctx, fromSnowflake)
	if err != nil {
		return false, err
	}
	toID, err := s.UserID(ctx, toSnowflake)
	if err != nil {
		return false, err
	}

	err = s.conn.Transaction(ctx, func(q db.Querier) error {
		var wallet int64
		if err := q.GetContext(ctx, &wallet,
			`SELECT balance_wallet FROM users WHERE id = $1`, fromID); err != nil {
			return err
		}
		if wallet < amount {
			return errAborted
		}
		if _, err := q.ExecContext(ctx,
			`UPDATE users SET balance_wallet = balance_wallet - $1 WHERE id = $2`, amount, fromID); err != nil {
			return err
		}
		if _, err := q.ExecContext(ctx,
			`UPDATE users SET balance_wallet = balance_wallet + $1 WHERE id = $2`, amount, toID); err != nil {
			return err
		}
		return nil
	})
	if errors.Is(err, errAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to transfer %d from %s to %s: %w", amount, fromSnowflake, toSnowflake, err)
	}
	return true, nil
}

// MoveBankBalance moves money between wallet and bank in one transaction.
// The sign convention: positive deposits wallet→bank, negative withdraws
// bank→wallet, both expressed through the single update
// `wallet = wallet - delta, bank = bank + delta`. Returns false when the
// source side cannot cover the move. A zero delta succeeds without touching
// the row.
func (s *Service) MoveBankBalance(ctx context.Context, snowflake string, move BankMove) (bool, error) {
	id, err := s.UserID(ctx, snowflake)
	if err != nil {
		return false, err
	}

	err = s.conn.Transaction(ctx, func(q db.Querier) error {
		var bal Balance
		if err := q.GetContext(ctx, &bal,
			`SELECT balance_wallet, balance_bank FROM users WHERE id = $1`, id); err != nil {
			return err
		}

		delta := move.delta
		switch move.mode {
		case moveDepositAll:
			delta = bal.Wallet
		case moveWithdrawAll:
			delta = -bal.Bank
		}

		source := bal.Wallet
		if delta < 0 {
			source = bal.Bank
		}
		if source < abs(delta) {
			return errAborted
		}
		if delta == 0 {
			return nil
		}

		_, err := q.ExecContext(ctx,
			`UPDATE users SET balance_wallet = balance_wallet - $1, balance_bank = balance_bank + $1 WHERE id = $2`,
			delta, id)
		return err
	})
	if errors.Is(err, errAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to move bank balance for %s: %w", snowflake, err)
	}
	return true, nil
}

// Register inserts the user's row explicitly. Returns false when the user is
// already registered.
func (s *Service) Register(ctx context.Context, snowflake string) (bool, error) {
	err := s.conn.Transaction(ctx, func(q db.Querier) error {
		var one int
		err := q.GetContext(ctx, &one, `SELECT 1 FROM users WHERE snowflake = $1`, snowflake)
		if err == nil {
			return errAborted
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		_, err = q.ExecContext(ctx, `INSERT INTO users (snowflake) VALUES ($1)`, snowflake)
		return err
	})
	if errors.Is(err, errAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to register user %s: %w", snowflake, err)
	}
	return true, nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
