// Package ui holds the view controllers: the presentation state machines
// behind the list, dashboard, detail and search surfaces. Controllers own
// only what they display; all data access goes through the hero service.
package ui

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"hero-lab/domain"
	"hero-lab/services"
)

// HeroesController drives the full-list view. It owns the in-memory
// collection it displays, mutating it only after (or, for deletes,
// without waiting for) the backend's answer.
type HeroesController struct {
	svc    services.IHeroService
	Heroes []domain.Hero
}

func NewHeroesController(svc services.IHeroService) *HeroesController {
	return &HeroesController{svc: svc}
}

// Load replaces the local collection with whatever the backend holds.
func (c *HeroesController) Load(ctx context.Context) {
	c.Heroes = c.svc.Heroes(ctx)
}

// Add trims the name and creates a hero. An empty trimmed name is a
// no-op: no network call, no mutation. The new record joins the local
// collection only once the backend has assigned its id.
func (c *HeroesController) Add(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	hero, ok := c.svc.Add(ctx, name)
	if !ok {
		return
	}
	c.Heroes = append(c.Heroes, hero)
}

// Delete removes the hero from the local collection immediately and
// fires the backend delete without waiting for its outcome. A failed
// delete is logged by the service and never reconciled here.
func (c *HeroesController) Delete(ctx context.Context, hero domain.Hero) {
	c.Heroes = lo.Filter(c.Heroes, func(h domain.Hero, _ int) bool {
		return h.ID != hero.ID
	})
	go c.svc.DeleteHero(context.WithoutCancel(ctx), hero)
}
