package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type failingBeginner struct {
	opts *sql.TxOptions
}

func (b *failingBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	b.opts = opts
	return nil, errors.New("connection refused")
}

func TestManager_BeginFailure(t *testing.T) {
	beginner := &failingBeginner{}
	m := NewTransactionManager(beginner)
	called := false

	err := m.DoSerializable(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrTransaction)
	assert.False(t, called)
	if assert.NotNil(t, beginner.opts) {
		assert.Equal(t, sql.LevelSerializable, beginner.opts.Isolation)
	}
}

func TestManager_DoUsesDefaultIsolation(t *testing.T) {
	beginner := &failingBeginner{}
	m := NewTransactionManager(beginner)

	_ = m.Do(context.Background(), func(context.Context) error { return nil })

	assert.Nil(t, beginner.opts)
}

func TestGetExecutor_WithoutTransaction(t *testing.T) {
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Nil(t, GetExecutor(ctx, nil))
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"other pq code", &pq.Error{Code: "23505"}, false},
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"wrapped", fmt.Errorf("exec: %w", &pq.Error{Code: "40001"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}

func TestRetrySerializable_SucceedsAfterConflict(t *testing.T) {
	calls := 0

	err := retrySerializable(context.Background(), 3, func() error {
		calls++
		if calls < 2 {
			return fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetrySerializable_GivesUp(t *testing.T) {
	calls := 0

	err := retrySerializable(context.Background(), 3, func() error {
		calls++
		return &pq.Error{Code: "40001"}
	})

	assert.ErrorIs(t, err, ErrSerialization)
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, 3, calls)
}

func TestRetrySerializable_OtherErrorNotRetried(t *testing.T) {
	calls := 0
	boom := errors.New("boom")

	err := retrySerializable(context.Background(), 3, func() error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrSerialization)
	assert.Equal(t, 1, calls)
}
