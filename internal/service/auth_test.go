package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Pat@Example.com ", "hunter22", " Pat Doe ")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "pat@example.com", u.Email, "email normalized")
	assert.Equal(t, "Pat Doe", u.FullName)
	assert.NotEqual(t, "hunter22", u.Password, "stored hash, not plaintext")

	got, err := svc.Login(ctx, "pat@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, "pat@example.com", "hunter22", "Pat")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "pat@example.com", "other", "Pat Again")
	require.Error(t, err)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, "pat@example.com", "hunter22", "Pat")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "pat@example.com", "wrong")
	require.Error(t, err)
	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	require.Error(t, err)
}
