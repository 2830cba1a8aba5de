// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

// StoreSuite runs the same contract against every Store implementation.
type StoreSuite struct {
	suite.Suite
	newStore func() Store
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() Store { return NewMemoryStore() }})
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() Store {
		conn, err := Open(TypeSQLite, ":memory:")
		if err != nil {
			t.Fatalf("Failed to open sqlite: %v", err)
		}
		t.Cleanup(func() { conn.Close() })
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("Failed to create schema: %v", err)
		}
		return NewKVStore(conn)
	}})
}

func (s *StoreSuite) TestGetMissing() {
	store := s.newStore()
	_, err := store.Get(context.Background(), "missing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreSuite) TestSetAndOverwrite() {
	ctx := context.Background()
	store := s.newStore()

	s.Require().NoError(store.Set(ctx, KeyUserID, []byte("first")))
	got, err := store.Get(ctx, KeyUserID)
	s.Require().NoError(err)
	s.Equal("first", string(got))

	s.Require().NoError(store.Set(ctx, KeyUserID, []byte("second")))
	got, err = store.Get(ctx, KeyUserID)
	s.Require().NoError(err)
	s.Equal("second", string(got))
}

func (s *StoreSuite) TestDelete() {
	ctx := context.Background()
	store := s.newStore()

	s.Require().NoError(store.Set(ctx, KeyCurrentUser, []byte(`{"id":"x"}`)))
	s.Require().NoError(store.Delete(ctx, KeyCurrentUser))

	_, err := store.Get(ctx, KeyCurrentUser)
	s.ErrorIs(err, ErrNotFound)

	// Deleting an absent key is not an error
	s.NoError(store.Delete(ctx, "never-set"))
}

func (s *StoreSuite) TestJSONHelpers() {
	ctx := context.Background()
	store := s.newStore()

	in := map[string]int{"a": 1, "b": 2}
	s.Require().NoError(SetJSON(ctx, store, "numbers", in))

	var out map[string]int
	s.Require().NoError(GetJSON(ctx, store, "numbers", &out))
	s.Equal(in, out)

	s.ErrorIs(GetJSON(ctx, store, "absent", &out), ErrNotFound)

	s.Require().NoError(store.Set(ctx, "broken", []byte("{not json")))
	err := GetJSON(ctx, store, "broken", &out)
	s.Error(err)
	s.NotErrorIs(err, ErrNotFound)
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Open() expected error for unsupported type")
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}
}
