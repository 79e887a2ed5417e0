package postgres_test

import (
	"context"
	"fortune/pkg/domain"
	"fortune/pkg/storage/postgres"
	"fortune/pkg/storage/postgres/pgtest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = pgtest.User
	testPassword = pgtest.Password
	testDB       = pgtest.Database
)

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()

	return pgtest.Setup(t)
}

func newTestUser(username string) domain.User {
	return domain.User{
		Username:          username,
		DisplayName:       username,
		Email:             username + "@example.com",
		PasswordHash:      "hash",
		Role:              domain.UserRoleUser,
		Status:            domain.UserStatusActive,
		PasswordChangedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func storeTestUser(t *testing.T, pg *postgres.PgSQL, username string) *domain.User {
	t.Helper()
	user, err := pg.StoreUser(context.Background(), newTestUser(username))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(user.ID))

	return user
}

func TestOptions_ConnString(t *testing.T) {
	tests := []struct {
		name string
		opts postgres.Options
		want string
	}{
		{
			name: "plain",
			opts: postgres.Options{Username: "fortune", Password: "secret", Host: "db", Port: 5432, Database: "fortune", SslMode: "disable"},
			want: "postgres://fortune:secret@db:5432/fortune?sslmode=disable",
		},
		{
			name: "escaped password",
			opts: postgres.Options{Username: "fortune", Password: "p@ss word/", Host: "db", Port: 5432, Database: "fortune"},
			want: "postgres://fortune:p%40ss%20word%2F@db:5432/fortune",
		},
		{
			name: "ipv6 host",
			opts: postgres.Options{Username: "u", Password: "p", Host: "::1", Port: 5433, Database: "d", SslMode: "require"},
			want: "postgres://u:p@[::1]:5433/d?sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.opts.ConnString())
		})
	}
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := postgres.New(ctx, postgres.Options{
		Username: testUser,
		Password: testPassword,
		Host:     "127.0.0.1",
		Port:     1,
		Database: testDB,
		SslMode:  "disable",
	})
	require.Error(t, err)
}
