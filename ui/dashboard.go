package ui

import (
	"context"

	"hero-lab/domain"
	"hero-lab/services"
)

// DashboardController shows a band of top heroes cut from the middle of
// the collection, mirroring the classic tour layout.
type DashboardController struct {
	svc    services.IHeroService
	Heroes []domain.Hero
}

func NewDashboardController(svc services.IHeroService) *DashboardController {
	return &DashboardController{svc: svc}
}

func (c *DashboardController) Load(ctx context.Context) {
	heroes := c.svc.Heroes(ctx)
	if len(heroes) < 2 {
		c.Heroes = nil
		return
	}
	end := min(len(heroes), 5)
	c.Heroes = heroes[1:end]
}
