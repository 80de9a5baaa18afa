package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/gookit/color"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"hero-lab/domain"
	"hero-lab/infrastructure/rest/client"
	"hero-lab/infrastructure/rest/server"
	"hero-lab/repositories"
	"hero-lab/services"
	"hero-lab/ui"
)

// HeroesSuite drives the whole stack end to end: view controllers over
// the recovery service over the REST client, against a live simulator.
type HeroesSuite struct {
	suite.Suite
	Config   Config
	backend  *httptest.Server
	messages *services.MessageService
	svc      *services.HeroService
}

func TestHeroesSuite(t *testing.T) {
	suite.Run(t, new(HeroesSuite))
}

func (s *HeroesSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest rebuilds the whole stack so every scenario starts from the
// pristine seed dataset.
func (s *HeroesSuite) SetupTest() {
	serverURL := s.Config.ServerURL
	if serverURL == "" {
		serverURL = s.startSimulator()
	}
	s.step("stack against " + serverURL)

	log := slog.Default()
	s.messages = services.NewMessageService()
	api := client.NewHeroAPI(http.DefaultClient, serverURL+"/api/heroes", log)
	s.svc = services.NewHeroService(api, s.messages, log)
}

func (s *HeroesSuite) TearDownTest() {
	if s.backend != nil {
		s.backend.Close()
		s.backend = nil
	}
}

// startSimulator boots an in-process copy of cmd/server's wiring.
func (s *HeroesSuite) startSimulator() string {
	req := s.Require()
	gin.SetMode(gin.TestMode)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	index, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	req.NoError(err)
	s.T().Cleanup(func() { _ = index.Close() })

	repo := repositories.NewHeroRepository(db, index, slog.Default())
	req.NoError(repo.Seed(repositories.DefaultHeroes()))

	s.backend = httptest.NewServer(server.NewHeroServer(slog.Default(), repo).Router())
	return s.backend.URL
}

func (s *HeroesSuite) step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *HeroesSuite) TestFullCrudRoundTrip() {
	req := s.Require()
	ctx := context.Background()
	heroes := ui.NewHeroesController(s.svc)

	s.step("load the seed collection")
	heroes.Load(ctx)
	req.Len(heroes.Heroes, 10)
	req.Equal(domain.Hero{ID: 11, Name: "Mr. Nice"}, heroes.Heroes[0])

	s.step("add a hero and receive the assigned id")
	heroes.Add(ctx, "  Dr Velocity ")
	req.Len(heroes.Heroes, 11)
	added := heroes.Heroes[10]
	req.Equal(domain.Hero{ID: 21, Name: "Dr Velocity"}, added)

	s.step("rename through the detail controller")
	detail := ui.NewDetailController(s.svc)
	detail.Load(ctx, added.ID)
	req.True(detail.Found)
	detail.Hero.Name = "Dr Velocity II"
	req.True(detail.Save(ctx))
	renamed, found := s.svc.Hero(ctx, added.ID)
	req.True(found)
	req.Equal("Dr Velocity II", renamed.Name)

	s.step("optimistic delete")
	heroes.Delete(ctx, added)
	req.Len(heroes.Heroes, 10)
	req.Eventually(func() bool {
		_, found := s.svc.FindHero(ctx, added.ID)
		return !found
	}, 2*time.Second, 20*time.Millisecond)

	s.step("every operation left a trace in the message log")
	req.NotEmpty(s.messages.Messages())
}

func (s *HeroesSuite) TestFindHeroSemantics() {
	req := s.Require()
	ctx := context.Background()

	hero, found := s.svc.FindHero(ctx, 11)
	req.True(found)
	req.Equal(domain.Hero{ID: 11, Name: "Mr. Nice"}, hero)

	_, found = s.svc.FindHero(ctx, 999)
	req.False(found)
	req.True(lo.SomeBy(s.messages.Messages(), func(m string) bool {
		return strings.Contains(m, "did not find hero id=999")
	}))
}

func (s *HeroesSuite) TestDebouncedSearchAcrossTheStack() {
	req := s.Require()
	searcher := ui.NewHeroSearchController(s.svc, 100*time.Millisecond)

	terms := make(chan string)
	out := searcher.Results(context.Background(), terms)

	for _, keystroke := range []string{"b", "bo", "bom"} {
		terms <- keystroke
	}
	close(terms)

	var batches [][]domain.Hero
	for batch := range out {
		batches = append(batches, batch)
	}
	req.Len(batches, 1)
	req.Equal([]domain.Hero{{ID: 13, Name: "Bombasto"}}, batches[0])
}

func (s *HeroesSuite) TestDashboardBand() {
	req := s.Require()
	dashboard := ui.NewDashboardController(s.svc)
	dashboard.Load(context.Background())
	req.Equal([]string{"Narco", "Bombasto", "Celeritas", "Magneta"},
		lo.Map(dashboard.Heroes, func(h domain.Hero, _ int) string { return h.Name }))
}
