package fortune

import (
	"context"
	"fmt"
	"fortune/internal/config"
	"fortune/internal/ledger"
	"fortune/pkg/businessday"
	"fortune/pkg/domain"
	"fortune/pkg/draw"
	"fortune/pkg/logger"
	"fortune/pkg/serrors"
	"fortune/pkg/storage"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "fortune/internal/fortune"

// draw kinds reported on the draws counter
const (
	drawKindAnonymous = "anonymous"
	drawKindClaimed   = "claimed"
	drawKindExisting  = "existing"
)

// Options configure the business day and history window.
type Options struct {
	// Calendar resolves the current business day.
	Calendar businessday.Calendar
	// HistoryWindow is how far back History looks.
	HistoryWindow time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// NewOptions constructs Options from the application config. Unknown timezones
// fall back to UTC with a warning.
func NewOptions(ctx context.Context, cfg *config.Config) Options {
	cal, ok := businessday.NewCalendar(cfg.Fortune.Timezone, cfg.Fortune.DayResetOffsetSeconds)
	if !ok {
		logger.Warn(ctx, "unknown timezone, business days follow UTC",
			zap.String("timezone", cfg.Fortune.Timezone))
	}

	return Options{
		Calendar:      cal,
		HistoryWindow: cfg.Fortune.HistoryWindow,
	}
}

// Deps are the collaborators of the service.
type Deps struct {
	Ledger   ledger.Ledger
	Users    storage.UserStorage
	Board    Board
	Engine   *draw.Engine
	Activity Activity
}

type service struct {
	deps    Deps
	options Options

	tracer trace.Tracer
	draws  metric.Int64Counter
}

func (s *service) now() time.Time {
	if s.options.Now != nil {
		return s.options.Now()
	}

	return time.Now()
}

func (s *service) touch(ctx context.Context, userID domain.UserID) {
	if s.deps.Activity != nil {
		s.deps.Activity.Touch(ctx, userID)
	}
}

func (s *service) countDraw(ctx context.Context, kind string, outcome domain.Outcome) {
	s.draws.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", string(outcome)),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *service) Draw(ctx context.Context, user *domain.User) (_ domain.Outcome, err error) {
	ctx, span := s.tracer.Start(ctx, "fortune.Draw")
	defer func() { endSpan(span, err) }()

	if user == nil {
		outcome := s.deps.Engine.Draw()
		s.countDraw(ctx, drawKindAnonymous, outcome)

		return outcome, nil
	}
	if !user.Active() {
		return "", serrors.With(serrors.ErrForbidden, "account is inactive")
	}

	now := s.now().UTC()
	dayStart := s.options.Calendar.Start(now)
	ctx = logger.WithFields(ctx, zap.Stringer("userID", user.ID), zap.Time("dayStart", dayStart))
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	defer s.touch(ctx, user.ID)

	existing, err := s.deps.Ledger.HasDrawn(ctx, user.ID, dayStart)
	if err != nil {
		return "", fmt.Errorf("could not check today's draw: %w", err)
	}
	if existing != nil {
		s.countDraw(ctx, drawKindExisting, existing.Value)

		return existing.Value, nil
	}

	entry, claimed, err := s.deps.Ledger.Claim(ctx, user.ID, dayStart, s.deps.Engine.Draw(), now)
	if err != nil {
		return "", fmt.Errorf("could not claim today's draw: %w", err)
	}
	if !claimed {
		logger.Debug(ctx, "lost draw race, returning stored fortune", zap.String("fortune", string(entry.Value)))
		s.countDraw(ctx, drawKindExisting, entry.Value)

		return entry.Value, nil
	}

	s.deps.Board.Invalidate(ctx, dayStart)
	s.countDraw(ctx, drawKindClaimed, entry.Value)
	logger.Info(ctx, "fortune claimed", zap.String("fortune", string(entry.Value)))

	return entry.Value, nil
}

func (s *service) Leaderboard(ctx context.Context) (_ []domain.LeaderboardGroup, err error) {
	ctx, span := s.tracer.Start(ctx, "fortune.Leaderboard")
	defer func() { endSpan(span, err) }()

	groups, err := s.deps.Board.Day(ctx, s.options.Calendar.Start(s.now()))
	if err != nil {
		return nil, fmt.Errorf("could not build leaderboard: %w", err)
	}

	return groups, nil
}

func (s *service) History(ctx context.Context, username string) (_ []domain.DrawEntry, err error) {
	ctx, span := s.tracer.Start(ctx, "fortune.History")
	defer func() { endSpan(span, err) }()

	user, err := s.deps.Users.UserByUsername(ctx, username)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not look up user")
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	now := s.now().UTC()
	// timestamptz has microsecond resolution, keep a draw made at now inside the window
	end := now.Add(time.Microsecond)
	entries, err := s.deps.Ledger.FetchWindow(ctx, user.ID, now.Add(-s.options.HistoryWindow), end)
	if err != nil {
		return nil, fmt.Errorf("could not fetch history: %w", err)
	}

	return entries, nil
}

func (s *service) Today(ctx context.Context, user *domain.User) (_ *Today, err error) {
	ctx, span := s.tracer.Start(ctx, "fortune.Today")
	defer func() { endSpan(span, err) }()

	if user == nil {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	defer s.touch(ctx, user.ID)

	return s.today(ctx, user)
}

func (s *service) Profile(ctx context.Context, username string) (_ *domain.User, _ *Today, err error) {
	ctx, span := s.tracer.Start(ctx, "fortune.Profile")
	defer func() { endSpan(span, err) }()

	user, err := s.deps.Users.UserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not look up user")
	}
	if user == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	today, err := s.today(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, today, nil
}

func (s *service) today(ctx context.Context, user *domain.User) (*Today, error) {
	now := s.now().UTC()
	dayStart := s.options.Calendar.Start(now)

	total, err := s.deps.Ledger.Count(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not count draws: %w", err)
	}
	entry, err := s.deps.Ledger.HasDrawn(ctx, user.ID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("could not check today's draw: %w", err)
	}

	today := &Today{TotalDraws: total}
	if entry != nil {
		next := s.options.Calendar.Next(now)
		today.HasDrawnToday = true
		today.TodaysFortune = entry.Value
		today.NextDrawAt = &next
	}

	return today, nil
}

// New creates a Service. Metrics and spans go to the global otel providers.
func New(deps Deps, options Options) (Service, error) {
	if options.HistoryWindow <= 0 {
		options.HistoryWindow = 365 * 24 * time.Hour
	}

	draws, err := otel.Meter(instrumentationName).Int64Counter("fortune.draws",
		metric.WithDescription("Number of fortunes handed out."))
	if err != nil {
		return nil, fmt.Errorf("could not create draws counter: %w", err)
	}

	return &service{
		deps:    deps,
		options: options,
		tracer:  otel.Tracer(instrumentationName),
		draws:   draws,
	}, nil
}
