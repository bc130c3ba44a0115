package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bwmarrin/snowflake"
	"github.com/qmuntal/stateless"
	"go.uber.org/zap"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

// ErrDeckExhausted means a draw was attempted past the last card. One round
// of ordinary play cannot reach it, so it is treated as fatal.
var ErrDeckExhausted = errors.New("deck exhausted")

// Phase is a state of the round state machine
type Phase string

const (
	PhaseDealing    Phase = "DealingInitial"
	PhasePlayerTurn Phase = "PlayerTurn"
	PhaseDealerTurn Phase = "DealerTurn"
	PhaseResolved   Phase = "Resolved"
)

const (
	triggerDealt      = "Dealt"
	triggerHit        = "Hit"
	triggerStand      = "Stand"
	triggerPlayerDone = "PlayerDone"
	triggerDealerDraw = "DealerDraw"
	triggerDealerDone = "DealerDone"
)

// Participant identifies whose hand a card goes to
type Participant string

const (
	Player Participant = "player"
	Dealer Participant = "dealer"
)

var idNode *snowflake.Node

func init() {
	var err error
	if idNode, err = snowflake.NewNode(1); err != nil {
		panic(err)
	}
}

// Round holds the state of a single round: the deck being dealt from, the
// dealing cursor and both running totals.
type Round struct {
	ID string

	deck   *deck.Deck
	cursor int
	player int
	dealer int

	machine *stateless.StateMachine
	rep     *Reporter
	log     *zap.Logger
}

// NewRound starts a round on d with the cursor and both totals at zero.
// A nil logger disables logging.
func NewRound(d *deck.Deck, logger *zap.Logger) *Round {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Round{
		ID:      idNode.Generate().String(),
		deck:    d,
		machine: stateless.NewStateMachine(PhaseDealing),
	}
	r.log = logger.With(zap.String("round", r.ID))
	r.configure()

	return r
}

func (r *Round) configure() {
	r.machine.OnTransitioning(func(_ context.Context, t stateless.Transition) {
		if t.Source == t.Destination {
			return
		}
		r.log.Debug("transition",
			zap.Any("source", t.Source),
			zap.Any("destination", t.Destination),
			zap.Any("trigger", t.Trigger))
	})

	playerMayDraw := func(_ context.Context, _ ...any) bool { return r.player < Blackjack }
	playerDone := func(_ context.Context, _ ...any) bool { return r.player >= Blackjack }
	dealerMayDraw := func(_ context.Context, _ ...any) bool { return r.dealer < DealerStandsOn }
	dealerDone := func(_ context.Context, _ ...any) bool { return r.dealer >= DealerStandsOn }

	r.machine.Configure(PhaseDealing).
		Permit(triggerDealt, PhasePlayerTurn)

	r.machine.Configure(PhasePlayerTurn).
		InternalTransition(triggerHit, r.hit, playerMayDraw).
		Permit(triggerStand, PhaseDealerTurn).
		Permit(triggerPlayerDone, PhaseDealerTurn, playerDone)

	r.machine.Configure(PhaseDealerTurn).
		InternalTransition(triggerDealerDraw, r.dealerDraw, dealerMayDraw).
		Permit(triggerDealerDone, PhaseResolved, dealerDone)

	r.machine.Configure(PhaseResolved)
}

// Phase returns the current state of the round
func (r *Round) Phase() Phase {
	return r.machine.MustState().(Phase)
}

// Player returns the player's running total
func (r *Round) Player() int { return r.player }

// Dealer returns the dealer's running total
func (r *Round) Dealer() int { return r.dealer }

// Cursor returns the index of the next undealt card
func (r *Round) Cursor() int { return r.cursor }

// Graph renders the round state machine in DOT format
func (r *Round) Graph() string {
	return r.machine.ToGraph()
}

// Play runs the round to completion: initial deal, the player's hit/stand
// loop, the dealer's fixed strategy, then resolution. Banners go to rep and
// decisions come from p.
func (r *Round) Play(ctx context.Context, p Prompter, rep *Reporter) (Outcome, error) {
	r.rep = rep

	for {
		if err := ctx.Err(); err != nil {
			return Lose, err
		}

		var err error
		switch r.Phase() {
		case PhaseDealing:
			err = r.dealInitial(ctx)
		case PhasePlayerTurn:
			err = r.playerStep(ctx, p)
		case PhaseDealerTurn:
			err = r.dealerStep(ctx)
		case PhaseResolved:
			o := Resolve(r.player, r.dealer)
			r.log.Info("round resolved",
				zap.Stringer("outcome", o),
				zap.Int("player", r.player),
				zap.Int("dealer", r.dealer),
				zap.Int("cursor", r.cursor))
			return o, nil
		}
		if err != nil {
			return Lose, err
		}
	}
}

func (r *Round) dealInitial(ctx context.Context) error {
	for _, p := range []Participant{Player, Dealer, Player} {
		if _, err := r.draw(p); err != nil {
			return err
		}
	}

	r.rep.Scores(ScoreInitial, r.dealer, r.player)
	if r.player == Blackjack {
		r.rep.Blackjack()
	}

	return r.machine.FireCtx(ctx, triggerDealt)
}

func (r *Round) playerStep(ctx context.Context, p Prompter) error {
	if r.player >= Blackjack {
		return r.machine.FireCtx(ctx, triggerPlayerDone)
	}

	choice, err := p.Choose()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.log.Debug("input closed, standing")
			return r.machine.FireCtx(ctx, triggerStand)
		}
		r.log.Warn("discarding unreadable input", zap.Error(err))
		return nil
	}

	switch choice {
	case ChoiceHit:
		return r.machine.FireCtx(ctx, triggerHit)
	case ChoiceStand:
		return r.machine.FireCtx(ctx, triggerStand)
	default:
		return nil
	}
}

func (r *Round) dealerStep(ctx context.Context) error {
	if r.dealer >= DealerStandsOn {
		return r.machine.FireCtx(ctx, triggerDealerDone)
	}
	return r.machine.FireCtx(ctx, triggerDealerDraw)
}

func (r *Round) hit(_ context.Context, _ ...any) error {
	if _, err := r.draw(Player); err != nil {
		return err
	}
	r.rep.Scores(ScorePlayer, r.dealer, r.player)
	return nil
}

func (r *Round) dealerDraw(_ context.Context, _ ...any) error {
	if _, err := r.draw(Dealer); err != nil {
		return err
	}
	r.rep.Scores(ScoreDealer, r.dealer, r.player)
	return nil
}

// draw deals the card under the cursor to p and adds its value to p's total
func (r *Round) draw(p Participant) (card.Card, error) {
	if r.cursor >= len(r.deck) {
		return card.Card{}, fmt.Errorf("%s draw at card %d: %w", p, r.cursor, ErrDeckExhausted)
	}

	total := &r.player
	if p == Dealer {
		total = &r.dealer
	}

	c := r.deck[r.cursor]
	value := CardValue(c, *total)
	*total += value
	r.cursor++

	r.log.Debug("card dealt",
		zap.String("participant", string(p)),
		zap.Stringer("card", c),
		zap.Int("value", value),
		zap.Int("total", *total),
		zap.Int("cursor", r.cursor))

	return c, nil
}
