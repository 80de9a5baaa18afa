package ui

import (
	"context"

	"hero-lab/domain"
	"hero-lab/services"
)

// DetailController edits a single hero fetched by id.
type DetailController struct {
	svc   services.IHeroService
	Hero  domain.Hero
	Found bool
}

func NewDetailController(svc services.IHeroService) *DetailController {
	return &DetailController{svc: svc}
}

func (c *DetailController) Load(ctx context.Context, id int) {
	c.Hero, c.Found = c.svc.Hero(ctx, id)
}

// Save puts the edited record back. Returns false when nothing is
// loaded or the backend did not acknowledge.
func (c *DetailController) Save(ctx context.Context) bool {
	if !c.Found {
		return false
	}
	return c.svc.Update(ctx, c.Hero)
}
