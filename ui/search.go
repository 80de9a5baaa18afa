package ui

import (
	"context"
	"time"

	"hero-lab/domain"
	"hero-lab/services"
)

// DefaultDebounce is how long the search pipeline waits after the last
// keystroke before issuing a call.
const DefaultDebounce = 300 * time.Millisecond

// HeroSearchController turns a stream of keystrokes into a stream of
// result batches. Between the two it debounces, drops terms identical to
// the previously issued one, and cancels a call still in flight when a
// newer term supersedes it, so only the newest term's results are ever
// emitted.
type HeroSearchController struct {
	svc      services.IHeroService
	debounce time.Duration
}

func NewHeroSearchController(svc services.IHeroService, debounce time.Duration) *HeroSearchController {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &HeroSearchController{svc: svc, debounce: debounce}
}

type searchBatch struct {
	seq    uint64
	heroes []domain.Hero
}

// Results starts a fresh pipeline over terms and emits result batches
// until terms is closed (pending work drains first) or ctx is canceled.
// Each call builds new state, so a new subscriber re-runs the mechanics
// instead of replaying old results.
func (c *HeroSearchController) Results(ctx context.Context, terms <-chan string) <-chan []domain.Hero {
	out := make(chan []domain.Hero)

	go func() {
		defer close(out)

		var (
			timer    *time.Timer
			timerC   <-chan time.Time
			pending  string
			last     string
			issued   bool
			seq      uint64
			inFlight bool
			cancel   context.CancelFunc
			closed   bool
		)
		results := make(chan searchBatch)

		defer func() {
			if cancel != nil {
				cancel()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case term, ok := <-terms:
				if !ok {
					terms = nil
					closed = true
					if timer == nil && !inFlight {
						return
					}
					continue
				}
				pending = term
				if timer == nil {
					timer = time.NewTimer(c.debounce)
					timerC = timer.C
					continue
				}
				if !timer.Stop() {
					<-timerC
				}
				timer.Reset(c.debounce)

			case <-timerC:
				timer = nil
				timerC = nil
				if issued && pending == last {
					if closed && !inFlight {
						return
					}
					continue
				}
				last = pending
				issued = true
				if cancel != nil {
					cancel()
				}
				callCtx, callCancel := context.WithCancel(ctx)
				cancel = callCancel
				seq++
				inFlight = true
				go func(seq uint64, term string, ctx context.Context) {
					batch := searchBatch{seq: seq, heroes: c.svc.Search(ctx, term)}
					select {
					case results <- batch:
					case <-ctx.Done():
					}
				}(seq, last, callCtx)

			case batch := <-results:
				if batch.seq != seq {
					// Superseded call that raced its own cancellation.
					continue
				}
				inFlight = false
				select {
				case out <- batch.heroes:
				case <-ctx.Done():
					return
				}
				if closed && timer == nil {
					return
				}
			}
		}
	}()

	return out
}
