package database

import (
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPoolConnect_ReusesHandle(t *testing.T) {
	calls := 0
	handle := &gorm.DB{}
	p := &Pool{cfg: &config.Config{}, open: func(*config.Config) (*gorm.DB, error) {
		calls++
		return handle, nil
	}}

	first, err := p.Connect()
	require.NoError(t, err)
	second, err := p.Connect()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestPoolConnect_RetriesAfterFailure(t *testing.T) {
	calls := 0
	handle := &gorm.DB{}
	p := &Pool{cfg: &config.Config{}, open: func(*config.Config) (*gorm.DB, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("dial tcp: refused")
		}
		return handle, nil
	}}

	_, err := p.Connect()
	require.Error(t, err)

	db, err := p.Connect()
	require.NoError(t, err)
	assert.Same(t, handle, db)
	assert.Equal(t, 2, calls)
}

func TestPoolFromDB_ConnectAfterClose(t *testing.T) {
	db := dbtest.Open(t)
	p := NewPoolFromDB(db)

	got, err := p.Connect()
	require.NoError(t, err)
	assert.Same(t, db, got)
	require.NoError(t, p.Ping())

	require.NoError(t, p.Close())

	assert.NotPanics(t, func() {
		_, err = p.Connect()
	})
	assert.ErrorIs(t, err, ErrPoolClosed)
	assert.ErrorIs(t, p.Ping(), ErrPoolClosed)
	assert.NoError(t, p.Close())
}
