package postgres

import (
	"context"
	"fmt"
	"fortune/pkg/domain"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

// StoreUser inserts the user and returns the stored row. Unique violations are
// reported as *storage.DuplicateError naming the colliding field.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return nil, userDuplicate(constraint)
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store user into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// UserByID returns a user by its ID.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

// UserByUsername returns a user by its username. Usernames are stored lower-cased.
func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("username").Eq(strings.ToLower(username)))
}

func (p *PgSQL) userWhere(ctx context.Context, cond goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(cond).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// TouchUser records the last activity time of a user. Older timestamps never
// overwrite newer ones, so out-of-order jobs are harmless.
func (p *PgSQL) TouchUser(ctx context.Context, id domain.UserID, at time.Time) error {
	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{"last_active_at": at.UTC()}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.Or(
				goqu.I("last_active_at").IsNull(),
				goqu.I("last_active_at").Lt(at.UTC()),
			),
		).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not touch user in pg: %w", err)
	}

	return nil
}
