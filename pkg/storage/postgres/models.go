package postgres

import (
	"database/sql"
	"fortune/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Username     string `db:"username"`
	DisplayName  string `db:"display_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	Status       string `db:"status"`

	PasswordChangedAt time.Time    `db:"password_changed_at"`
	LastActiveAt      sql.NullTime `db:"last_active_at"`
	CreatedAt         time.Time    `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:                domain.UserID(p.ID),
		Username:          p.Username,
		DisplayName:       p.DisplayName,
		Email:             p.Email,
		PasswordHash:      p.PasswordHash,
		Role:              domain.UserRole(p.Role),
		Status:            domain.UserStatus(p.Status),
		PasswordChangedAt: p.PasswordChangedAt.UTC(),
		LastActiveAt:      p.LastActiveAt.Time.UTC(),
		CreatedAt:         p.CreatedAt.UTC(),
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:                uuid.UUID(user.ID),
		Username:          user.Username,
		DisplayName:       user.DisplayName,
		Email:             user.Email,
		PasswordHash:      user.PasswordHash,
		Role:              string(user.Role),
		Status:            string(user.Status),
		PasswordChangedAt: user.PasswordChangedAt,
		LastActiveAt: sql.NullTime{
			Time:  user.LastActiveAt,
			Valid: !user.LastActiveAt.IsZero(),
		},
		CreatedAt: user.CreatedAt,
	}
}

type PgDrawEntry struct {
	ID     int64     `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	BusinessDayStart time.Time `db:"business_day_start"`
	Value            string    `db:"value"`
	CreatedAt        time.Time `db:"created_at"`
}

func (p *PgDrawEntry) ToDomain() domain.DrawEntry {
	return domain.DrawEntry{
		ID:               p.ID,
		UserID:           domain.UserID(p.UserID),
		BusinessDayStart: p.BusinessDayStart.UTC(),
		Value:            domain.Outcome(p.Value),
		CreatedAt:        p.CreatedAt.UTC(),
	}
}

func (p *PgDrawEntry) FromDomain(entry domain.DrawEntry) {
	*p = PgDrawEntry{
		ID:               entry.ID,
		UserID:           uuid.UUID(entry.UserID),
		BusinessDayStart: entry.BusinessDayStart.UTC(),
		Value:            string(entry.Value),
		CreatedAt:        entry.CreatedAt.UTC(),
	}
}

type PgLeaderboardEntry struct {
	UserID   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
	Value    string    `db:"value"`
}

func pgDrawEntriesToDomain(rows []PgDrawEntry) []domain.DrawEntry {
	out := make([]domain.DrawEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
