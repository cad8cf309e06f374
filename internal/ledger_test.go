package internal

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerSaveOverwrites(t *testing.T) {
	var buf bytes.Buffer
	ledger := NewLedger(zerolog.New(&buf))

	var saves []SaveRecord
	ledger.OnSave(func(rec SaveRecord) error {
		saves = append(saves, rec)
		return nil
	})

	require.NoError(t, ledger.Save("X", 1))
	require.NoError(t, ledger.Save("X", 2))

	v, ok := ledger.Get("X")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, []SaveRecord{{ID: "X", Data: 1}, {ID: "X", Data: 2}}, saves)

	assert.Contains(t, buf.String(), `"message":"data saved"`)
	assert.Contains(t, buf.String(), `"id":"X"`)
}

func TestLedgerOnSaveRevoke(t *testing.T) {
	ledger := NewLedger(zerolog.Nop())

	calls := 0
	sub := ledger.OnSave(func(SaveRecord) error {
		calls++
		return nil
	})

	require.NoError(t, ledger.Save("a", "x"))
	sub.Unsubscribe()
	require.NoError(t, ledger.Save("b", "y"))

	assert.Equal(t, 1, calls)
	_, ok := ledger.Get("b")
	assert.True(t, ok)
}

func TestLedgerGetMissing(t *testing.T) {
	ledger := NewLedger(zerolog.Nop())

	_, ok := ledger.Get("nope")
	assert.False(t, ok)
	assert.Zero(t, ledger.Len())
}
