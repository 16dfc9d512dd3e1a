// internal/ai/bidder.go
package ai

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danvv/auctionfc/internal/auction"
	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/room"
	"github.com/danvv/auctionfc/internal/timing"
)

// Ideal line distribution for a 16-player drafted squad, used by the
// positional-need model.
var idealDistribution = map[models.PositionGroup]int{
	models.GroupGK:  2,
	models.GroupDEF: 5,
	models.GroupMID: 5,
	models.GroupATT: 4,
}

// abstainTimeRemaining: a scheduled bid arriving with this little clock left
// is dropped rather than applied.
const abstainTimeRemaining = 2

// Decision is the outcome of one AI decision cycle.
type Decision struct {
	Amount int64
	Delay  time.Duration
}

// Bidder is the difficulty-parameterized autonomous bidder. It observes
// auction activity (with the room lock held), decides whether to bid, and
// schedules the bid after a human-like reaction delay. At most one pending
// scheduled bid exists per room; every new decision cycle supersedes it.
type Bidder struct {
	Engine *auction.Engine
	Sched  timing.Scheduler

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBidder wires the bidder to the auction engine it places bids through.
// rng is seedable so tests can fix bid/no-bid outcomes.
func NewBidder(engine *auction.Engine, sched timing.Scheduler, rng *rand.Rand) *Bidder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bidder{Engine: engine, Sched: sched, rng: rng}
}

// AuctionStarted implements auction.Observer. Called with the room lock held.
func (b *Bidder) AuctionStarted(r *room.Room) { b.evaluateLocked(r, uuid.Nil) }

// BidPlaced implements auction.Observer. Called with the room lock held;
// bidderID is whoever just bid, so that side skips re-evaluation.
func (b *Bidder) BidPlaced(r *room.Room, bidderID uuid.UUID) { b.evaluateLocked(r, bidderID) }

// AuctionTick implements auction.Observer, invoked near the going-once and
// going-twice thresholds. Called with the room lock held.
func (b *Bidder) AuctionTick(r *room.Room) { b.evaluateLocked(r, uuid.Nil) }

// evaluateLocked runs one decision cycle for each AI participant and
// schedules the chosen bid, superseding any pending one. Assumes the room
// lock is held; must not block.
func (b *Bidder) evaluateLocked(r *room.Room, skipID uuid.UUID) {
	if r.Status != room.StatusAuction || r.Auction == nil {
		return
	}

	for _, p := range r.AIPlayers() {
		if p.ID == skipID {
			continue
		}
		d := b.Decide(r, p)

		// A new decision cycle always supersedes the previous pending bid,
		// whether or not it produced one. Bumping AIBidSeq invalidates a
		// callback that already fired and is waiting on the lock, which
		// CancelFunc alone cannot stop.
		r.AIBidSeq++
		if r.AICancel != nil {
			r.AICancel()
			r.AICancel = nil
		}
		if d == nil {
			continue
		}

		seq := r.Auction.Seq
		gen := r.AIBidSeq
		aiID := p.ID
		amount := d.Amount
		r.AICancel = b.Sched.Schedule(d.Delay, func() {
			b.executeScheduledBid(r, aiID, amount, seq, gen)
		})
	}
}

// Decide runs the decision algorithm for one AI participant against the
// current auction snapshot. Returns nil to abstain. Assumes the room lock
// is held.
func (b *Bidder) Decide(r *room.Room, p *models.Player) *Decision {
	a := r.Auction
	if a == nil {
		return nil
	}
	// Never outbid yourself; never buy past capacity.
	if a.HighestBidder(p.ID) || len(p.Squad) >= r.Settings.SquadSize {
		return nil
	}

	cfg := ConfigFor(p.Difficulty)
	score := EvaluateItem(a.Item, p, cfg)

	// Probability gate: the source of human-like unpredictability.
	prob := cfg.BidProbability
	if a.Item.Rating < cfg.RatingThreshold {
		prob *= 0.5
	}
	b.mu.Lock()
	roll := b.rng.Float64()
	b.mu.Unlock()
	if roll > prob {
		return nil
	}

	maxBid := CalculateMaxBid(a.Item, p, r.Settings, score, cfg)
	if a.CurrentBid >= maxBid {
		return nil
	}

	amount := b.chooseAmount(a, p, maxBid, r.Settings, cfg)
	if amount <= 0 {
		return nil
	}

	b.mu.Lock()
	delay := cfg.ReactionTimeMin +
		time.Duration(b.rng.Float64()*float64(cfg.ReactionTimeMax-cfg.ReactionTimeMin))
	b.mu.Unlock()

	return &Decision{Amount: amount, Delay: delay}
}

// executeScheduledBid fires after the reaction delay. The auction may have
// moved on, so everything is re-validated against current state.
func (b *Bidder) executeScheduledBid(r *room.Room, aiID uuid.UUID, amount int64, seq, gen int) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	a := r.Auction
	if r.Status != room.StatusAuction || a == nil || a.Seq != seq || r.AIBidSeq != gen {
		// Stale callback; a newer cycle owns the pending-bid slot now.
		return
	}
	r.AICancel = nil
	if a.HighestBidder(aiID) || a.TimeRemaining <= abstainTimeRemaining {
		return
	}
	p := r.GetPlayer(aiID)
	if p == nil {
		return
	}
	if _, err := auction.ValidateBid(a, aiID, p.Budget, float64(amount), r.Settings.MinBidIncrement); err != nil {
		// Superseded by a human bid or budget change during the delay.
		return
	}
	if err := b.Engine.AcceptBidLocked(r, aiID, float64(amount), true); err != nil {
		log.Printf("Room %s: scheduled AI bid of %d rejected: %v", r.ID, amount, err)
	}
}

// EvaluateItem scores a draft item 0-100 for one AI participant: rating,
// rarity, positional need scaled by the difficulty's awareness, and a
// position-specific stat bonus.
func EvaluateItem(item *models.DraftItem, p *models.Player, cfg Config) float64 {
	score := float64(item.Rating) * 0.5 // up to 50

	switch item.Rarity {
	case models.RarityLegendary:
		score += 15
	case models.RarityEpic:
		score += 10
	case models.RarityRare:
		score += 5
	}

	need := PositionalNeed(p, item.Position.Group())
	score += need * 20 * cfg.PositionAwareness

	score += statBonus(item, p)

	if score > 100 {
		score = 100
	}
	return score
}

// statBonus is the position-specific stat component, up to 15 points.
// Attackers weight shooting and pace, midfielders passing and dribbling,
// defenders defending and physical. A goalkeeper is worth a flat bonus when
// the squad has none.
func statBonus(item *models.DraftItem, p *models.Player) float64 {
	s := item.Stats
	switch item.Position.Group() {
	case models.GroupATT:
		return float64(s.Shooting+s.Pace) / 2 * 0.15
	case models.GroupMID:
		return float64(s.Passing+s.Dribbling) / 2 * 0.15
	case models.GroupDEF:
		return float64(s.Defending+s.Physical) / 2 * 0.15
	default:
		if p.SquadCount(models.GroupGK) == 0 {
			return 10
		}
		return 3
	}
}

// PositionalNeed returns 0-1: 1.0 for a goalkeeper-less squad facing a
// goalkeeper, 0.1 at or above the ideal count, else proportional to the
// deficit.
func PositionalNeed(p *models.Player, group models.PositionGroup) float64 {
	ideal := idealDistribution[group]
	count := p.SquadCount(group)
	if count >= ideal {
		return 0.1
	}
	if count == 0 && group == models.GroupGK {
		return 1.0
	}
	return float64(ideal-count) / float64(ideal)
}

// CalculateMaxBid derives the ceiling the AI will pay for this item: item
// value by evaluation score, capped by the difficulty's budget fraction and
// by an even split of the remaining budget across the auctions left in the
// draft.
func CalculateMaxBid(item *models.DraftItem, p *models.Player, settings room.Settings, score float64, cfg Config) int64 {
	scaledBase := float64(item.BasePrice) * settings.PriceScale

	byValue := scaledBase * (0.5 + 2*score/100)
	byBudget := float64(p.Budget) * cfg.MaxBidPercentage

	remaining := settings.TotalPlayers - 2*len(p.Squad)
	if remaining < 1 {
		remaining = 1
	}
	perAuction := float64(p.Budget) / float64(remaining)

	maxBid := math.Min(byValue, math.Min(byBudget, perAuction))
	return int64(math.Floor(maxBid))
}

// chooseAmount picks the actual raise: minimum increment, stretched toward
// currentBid x aggressiveness when that still clears the ceiling, then
// jittered +/-5% on the increment grid so raises aren't perfectly
// predictable.
func (b *Bidder) chooseAmount(a *models.Auction, p *models.Player, maxBid int64, settings room.Settings, cfg Config) int64 {
	inc := settings.MinBidIncrement
	floor := a.CurrentBid + inc
	if a.CurrentBidder == nil && a.CurrentBid <= maxBid {
		// Opening bid may sit on the start price itself.
		floor = a.CurrentBid
	}

	amount := floor
	aggressive := roundUpToGrid(int64(math.Ceil(float64(a.CurrentBid)*cfg.Aggressiveness)), inc)
	if aggressive > amount && aggressive <= maxBid {
		amount = aggressive
	}

	b.mu.Lock()
	jitter := 1 + (b.rng.Float64()*0.10 - 0.05)
	b.mu.Unlock()
	amount = roundToGrid(int64(math.Round(float64(amount)*jitter)), inc)

	ceiling := maxBid
	if p.Budget < ceiling {
		ceiling = p.Budget
	}
	if amount > ceiling {
		amount = roundDownToGrid(ceiling, inc)
	}
	if amount < floor {
		amount = floor
	}
	if amount > ceiling {
		return 0
	}
	return amount
}

func roundToGrid(v, inc int64) int64 {
	if inc <= 1 {
		return v
	}
	return (v + inc/2) / inc * inc
}

func roundUpToGrid(v, inc int64) int64 {
	if inc <= 1 {
		return v
	}
	return (v + inc - 1) / inc * inc
}

func roundDownToGrid(v, inc int64) int64 {
	if inc <= 1 {
		return v
	}
	return v / inc * inc
}
