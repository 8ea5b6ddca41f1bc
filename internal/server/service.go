package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rpsplus/internal/bot"
	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/history"
	"github.com/lox/rpsplus/internal/matchid"
	"github.com/lox/rpsplus/internal/randutil"
)

// session is one caller's match plus the bookkeeping needed to record it.
// The session ID is stable for the life of the connection; the match ID
// changes on reset, since a reset starts a new match.
type session struct {
	id         string
	matchID    string
	match      *game.Match
	startedAt  time.Time
	lastActive time.Time
	rounds     []history.Round
}

// Service owns the per-session matches and maps wire messages onto engine
// operations. One session has one match at a time; sessions are fully
// independent, serialized by the service mutex.
type Service struct {
	cfg      *Config
	logger   *log.Logger
	metrics  *Metrics
	clock    quartz.Clock
	recorder *history.Recorder

	// newPolicy builds the opposing policy for a fresh session. Tests swap
	// it for scripted policies.
	newPolicy func(rng *rand.Rand) (game.Policy, error)

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]*session
}

// ServiceOption configures a Service at construction.
type ServiceOption func(*Service)

// WithClock injects the clock used for session activity tracking and
// expiry. Defaults to the real clock.
func WithClock(clock quartz.Clock) ServiceOption {
	return func(s *Service) { s.clock = clock }
}

// WithRecorder enables writing completed matches to a history log.
func WithRecorder(recorder *history.Recorder) ServiceOption {
	return func(s *Service) { s.recorder = recorder }
}

// WithPolicyFactory overrides how opposing policies are built.
func WithPolicyFactory(f func(rng *rand.Rand) (game.Policy, error)) ServiceOption {
	return func(s *Service) { s.newPolicy = f }
}

// NewService creates the match service. rng seeds per-session generators,
// so a fixed seed reproduces every bot move the service makes.
func NewService(cfg *Config, logger *log.Logger, rng *rand.Rand, metrics *Metrics, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:      cfg,
		logger:   logger.WithPrefix("service"),
		metrics:  metrics,
		clock:    quartz.NewReal(),
		rng:      rng,
		sessions: make(map[string]*session),
	}
	s.newPolicy = func(rng *rand.Rand) (game.Policy, error) {
		return bot.ForName(cfg.Bot.Strategy, rng, logger)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the idle-session sweep. It returns immediately; the sweep
// stops when ctx is cancelled. No sweep runs when expiry is disabled.
func (s *Service) Start(ctx context.Context) {
	idle := s.cfg.IdleTimeout()
	if idle <= 0 {
		return
	}
	interval := idle / 2
	if interval < time.Second {
		interval = time.Second
	}

	go func() {
		ticker := s.clock.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.expireIdleSessions(idle)
			}
		}
	}()
}

// CreateSession opens a fresh match and returns its session ID.
func (s *Service) CreateSession() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	policy, err := s.newPolicy(randutil.New(int64(s.rng.Uint64())))
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	now := s.clock.Now()
	sess := &session{
		id:         matchid.New(s.rng),
		match:      game.NewMatch(policy, game.WithRoundLimit(s.cfg.Server.RoundLimit)),
		startedAt:  now,
		lastActive: now,
	}
	sess.matchID = sess.id
	s.sessions[sess.id] = sess

	s.metrics.MatchesStarted.Inc()
	s.metrics.ActiveSessions.Set(float64(len(s.sessions)))
	s.logger.Info("session opened", "sessionID", sess.id)
	return sess.id, nil
}

// CloseSession discards a session and its match.
func (s *Service) CloseSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	s.metrics.ActiveSessions.Set(float64(len(s.sessions)))
	s.logger.Info("session closed", "sessionID", id)
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Handle processes one client message for the given session and returns
// the response. All failures are structured error messages; Handle never
// drops a request.
func (s *Service) Handle(sessionID string, msg *Message) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return errorMessage(CodeSessionExpired, "session expired, reconnect to start a new match")
	}
	sess.lastActive = s.clock.Now()

	switch msg.Type {
	case TypeValidate:
		return s.handleValidate(sess, msg)
	case TypePlay:
		return s.handlePlay(sess, msg)
	case TypeGetState:
		return s.stateMessage(sess)
	case TypeReset:
		return s.handleReset(sess)
	default:
		return errorMessage(CodeUnknownType, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

func (s *Service) handleValidate(sess *session, msg *Message) *Message {
	var data ValidateData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		return errorMessage(CodeBadPayload, "validate payload must be {\"input\": string}")
	}

	v := sess.match.Validate(data.Input)
	if !v.Valid {
		s.metrics.InvalidMoves.Inc()
	}
	return mustMessage(TypeValidation, ValidationData(v))
}

func (s *Service) handlePlay(sess *session, msg *Message) *Message {
	var data PlayData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		return errorMessage(CodeBadPayload, "play payload must be {\"move\": string}")
	}

	// Re-validate rather than trusting the caller; Play's contract
	// requires a normalized legal move.
	v := sess.match.Validate(data.Move)
	if !v.Valid {
		s.metrics.InvalidMoves.Inc()
		if s.cfg.WasteOnInvalid() {
			s.wasteRound(sess)
		}
		return errorMessage(CodeInvalidMove, v.Reason)
	}

	res, err := sess.match.Play(game.MustParseMove(v.Move))
	if err != nil {
		if errors.Is(err, game.ErrMatchOver) {
			return errorMessage(CodeMatchOver, "match is over, reset to play again")
		}
		return errorMessage(CodeBadPayload, err.Error())
	}

	s.metrics.RoundsResolved.WithLabelValues(res.Winner.String()).Inc()
	sess.rounds = append(sess.rounds, history.Round{
		Round:    res.State.RoundNumber,
		UserMove: res.UserMove.String(),
		BotMove:  res.BotMove.String(),
		Winner:   res.Winner.String(),
	})

	result := RoundResultData{
		StateData: s.snapshotData(sess),
		UserMove:  res.UserMove.String(),
		BotMove:   res.BotMove.String(),
		Winner:    res.Winner.String(),
	}
	if res.State.GameOver {
		result.Result = res.State.FinalResult().String()
		s.finishMatch(sess)
	}
	return mustMessage(TypeRoundResult, result)
}

func (s *Service) handleReset(sess *session) *Message {
	sess.match.Reset()
	sess.rounds = nil
	sess.startedAt = s.clock.Now()
	// A reset is a fresh match with its own identity
	sess.matchID = matchid.New(s.rng)

	s.metrics.MatchesStarted.Inc()
	s.logger.Info("match reset", "sessionID", sess.id, "matchID", sess.matchID)
	return s.stateMessage(sess)
}

// wasteRound burns a round on invalid input per the configured policy.
func (s *Service) wasteRound(sess *session) {
	state, err := sess.match.WasteRound()
	if err != nil {
		return
	}
	s.metrics.RoundsWasted.Inc()
	sess.rounds = append(sess.rounds, history.Round{
		Round:  state.RoundNumber,
		Winner: "none",
	})
	if state.GameOver {
		s.finishMatch(sess)
	}
}

// finishMatch records the completed match. Called with the lock held.
func (s *Service) finishMatch(sess *session) {
	final := sess.match.Snapshot()
	result := final.FinalResult().String()
	s.metrics.MatchesCompleted.WithLabelValues(result).Inc()

	if s.recorder == nil {
		return
	}
	rec := history.Record{
		MatchID:    sess.matchID,
		StartedAt:  sess.startedAt,
		FinishedAt: s.clock.Now(),
		Rounds:     sess.rounds,
		UserScore:  final.UserScore,
		BotScore:   final.BotScore,
		Result:     result,
	}
	if err := s.recorder.Append(rec); err != nil {
		s.logger.Error("failed to record match", "matchID", sess.matchID, "error", err)
	}
}

func (s *Service) expireIdleSessions(idle time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastActive) < idle {
			continue
		}
		delete(s.sessions, id)
		s.metrics.SessionsExpired.Inc()
		s.logger.Info("session expired", "sessionID", id, "idle", now.Sub(sess.lastActive))
	}
	s.metrics.ActiveSessions.Set(float64(len(s.sessions)))
}

func (s *Service) stateMessage(sess *session) *Message {
	return mustMessage(TypeState, s.snapshotData(sess))
}

func (s *Service) snapshotData(sess *session) StateData {
	snap := sess.match.Snapshot()
	return StateData{
		MatchID:           sess.matchID,
		Round:             snap.RoundNumber,
		UserScore:         snap.UserScore,
		BotScore:          snap.BotScore,
		UserBombAvailable: !snap.UserBombUsed,
		BotBombAvailable:  !snap.BotBombUsed,
		GameOver:          snap.GameOver,
	}
}

func errorMessage(code, text string) *Message {
	return mustMessage(TypeError, ErrorData{Code: code, Message: text})
}

// mustMessage wraps NewMessage for payloads built by the service itself,
// which cannot fail to marshal.
func mustMessage(t MessageType, data interface{}) *Message {
	msg, err := NewMessage(t, data)
	if err != nil {
		panic(fmt.Sprintf("server: marshal %s payload: %v", t, err))
	}
	return msg
}
