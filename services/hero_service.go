//go:generate go run go.uber.org/mock/mockgen -source=hero_service.go -destination=../mocks/mock_hero_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hero-lab/domain"
	"hero-lab/infrastructure/rest/client"
)

type IHeroService interface {
	Heroes(ctx context.Context) []domain.Hero
	Hero(ctx context.Context, id int) (domain.Hero, bool)
	FindHero(ctx context.Context, id int) (domain.Hero, bool)
	Search(ctx context.Context, term string) []domain.Hero
	Add(ctx context.Context, name string) (domain.Hero, bool)
	Update(ctx context.Context, hero domain.Hero) bool
	Delete(ctx context.Context, id int) bool
	DeleteHero(ctx context.Context, hero domain.Hero) bool
}

// HeroService mediates every read and write of heroes against the REST
// backend. It never surfaces a transport error to its callers: each
// operation appends one entry to the message log, and on failure the
// caller receives a safe zero result instead of the error.
type HeroService struct {
	api      client.IHeroAPI
	messages IMessageService
	log      *slog.Logger
}

func NewHeroService(api client.IHeroAPI, messages IMessageService, log *slog.Logger) *HeroService {
	return &HeroService{api: api, messages: messages, log: log}
}

// Heroes fetches the whole collection. On failure it resolves to an
// empty slice.
func (s *HeroService) Heroes(ctx context.Context) []domain.Hero {
	heroes, err := s.api.List(ctx)
	if err != nil {
		s.fail("fetch heroes", err)
		return []domain.Hero{}
	}
	s.note(fmt.Sprintf("fetched %d heroes", len(heroes)))
	return heroes
}

// Hero fetches one record by path. A missing id counts as a failure on
// the backend side (404) and degrades to absent like any other error.
func (s *HeroService) Hero(ctx context.Context, id int) (domain.Hero, bool) {
	hero, err := s.api.Get(ctx, id)
	if err != nil {
		s.fail(fmt.Sprintf("fetch hero id=%d", id), err)
		return domain.Hero{}, false
	}
	s.note(fmt.Sprintf("fetched hero id=%d", id))
	return hero, true
}

// FindHero fetches one record through the filtered-query form of the
// collection URL and returns the first match, or absent when the backend
// answers with an empty array.
func (s *HeroService) FindHero(ctx context.Context, id int) (domain.Hero, bool) {
	heroes, err := s.api.Find(ctx, id)
	if err != nil {
		s.fail(fmt.Sprintf("find hero id=%d", id), err)
		return domain.Hero{}, false
	}
	if len(heroes) == 0 {
		s.note(fmt.Sprintf("did not find hero id=%d", id))
		return domain.Hero{}, false
	}
	s.note(fmt.Sprintf("found hero id=%d", id))
	return heroes[0], true
}

// Search looks heroes up by name. A term that is empty after trimming
// short-circuits to an empty result without touching the network.
func (s *HeroService) Search(ctx context.Context, term string) []domain.Hero {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Hero{}
	}
	heroes, err := s.api.SearchByName(ctx, term)
	if err != nil {
		s.fail(fmt.Sprintf("search heroes term=%q", term), err)
		return []domain.Hero{}
	}
	if len(heroes) == 0 {
		s.note(fmt.Sprintf("no heroes matching %q", term))
	} else {
		s.note(fmt.Sprintf("found %d heroes matching %q", len(heroes), term))
	}
	return heroes
}

// Add validates the trimmed name and posts a new hero. The returned
// record carries the id the backend assigned.
func (s *HeroService) Add(ctx context.Context, name string) (domain.Hero, bool) {
	hero, err := domain.NewHero(name)
	if err != nil {
		s.fail("add hero", err)
		return domain.Hero{}, false
	}
	created, err := s.api.Create(ctx, hero)
	if err != nil {
		s.fail("add hero", err)
		return domain.Hero{}, false
	}
	s.note(fmt.Sprintf("added hero id=%d", created.ID))
	return created, true
}

// Update puts the full record. The acknowledgement is a bare bool; a
// failed update is logged and reported as false, never as an error.
func (s *HeroService) Update(ctx context.Context, hero domain.Hero) bool {
	if err := hero.Validate(); err != nil {
		s.fail(fmt.Sprintf("update hero id=%d", hero.ID), err)
		return false
	}
	if _, err := s.api.Update(ctx, hero); err != nil {
		s.fail(fmt.Sprintf("update hero id=%d", hero.ID), err)
		return false
	}
	s.note(fmt.Sprintf("updated hero id=%d", hero.ID))
	return true
}

func (s *HeroService) Delete(ctx context.Context, id int) bool {
	if err := s.api.Delete(ctx, id); err != nil {
		s.fail(fmt.Sprintf("delete hero id=%d", id), err)
		return false
	}
	s.note(fmt.Sprintf("deleted hero id=%d", id))
	return true
}

// DeleteHero is a convenience for callers holding a full record.
func (s *HeroService) DeleteHero(ctx context.Context, hero domain.Hero) bool {
	return s.Delete(ctx, hero.ID)
}

func (s *HeroService) note(message string) {
	s.messages.Add("HeroService: " + message)
}

func (s *HeroService) fail(operation string, err error) {
	s.messages.Add(fmt.Sprintf("HeroService: %s failed: %v", operation, err))
	s.log.Warn("hero operation failed", "operation", operation, "err", err)
}
