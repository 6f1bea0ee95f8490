package economy

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbot/internal/db"
)

// TestEconomyIntegration runs a full money-movement sequence against a real
// database.
func TestEconomyIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	pool, err := sqlx.Open("postgres", dsn)
	require.NoError(t, err)
	defer pool.Close()

	conn := db.NewConnector(pool)
	require.NoError(t, conn.Migrate(context.Background()))

	svc := New(conn)
	ctx := context.Background()

	suffix := time.Now().UnixNano()
	alice := fmt.Sprintf("it-alice-%d", suffix)
	bob := fmt.Sprintf("it-bob-%d", suffix)

	require.NoError(t, svc.SetBalance(ctx, alice, Balance{Wallet: 100, Bank: 0}))

	// Overdraft transfer fails and changes nothing.
	ok, err := svc.Transfer(ctx, alice, bob, 150)
	require.NoError(t, err)
	assert.False(t, ok)

	bal, err := svc.GetBalance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, Balance{Wallet: 100, Bank: 0}, bal)

	// Covered transfer moves exactly the amount.
	ok, err = svc.Transfer(ctx, alice, bob, 50)
	require.NoError(t, err)
	assert.True(t, ok)

	bal, err = svc.GetBalance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(50), bal.Wallet)

	bobBal, err := svc.GetBalance(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(50), bobBal.Wallet)

	// Deposit part of the wallet into the bank.
	ok, err = svc.MoveBankBalance(ctx, alice, Exact(30))
	require.NoError(t, err)
	assert.True(t, ok)

	bal, err = svc.GetBalance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, Balance{Wallet: 20, Bank: 30}, bal)
}
