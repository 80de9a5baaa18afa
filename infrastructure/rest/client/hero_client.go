//go:generate go run go.uber.org/mock/mockgen -source=hero_client.go -destination=../../../mocks/mock_hero_api.go -package=mocks
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"hero-lab/domain"
	"hero-lab/errors"
)

type IHeroAPI interface {
	List(ctx context.Context) ([]domain.Hero, error)
	Get(ctx context.Context, id int) (domain.Hero, error)
	Find(ctx context.Context, id int) ([]domain.Hero, error)
	SearchByName(ctx context.Context, term string) ([]domain.Hero, error)
	Create(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	Update(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	Delete(ctx context.Context, id int) error
}

// HeroAPI talks JSON to the /api/heroes collection.
// It reports every non-2xx response as an error and applies no retry,
// backoff, or timeout of its own; deadlines travel on the caller's context.
type HeroAPI struct {
	http    *http.Client
	baseURL string
	log     *slog.Logger
}

// NewHeroAPI wires a client for the collection at baseURL,
// e.g. "http://localhost:8080/api/heroes".
func NewHeroAPI(httpClient *http.Client, baseURL string, log *slog.Logger) *HeroAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HeroAPI{http: httpClient, baseURL: baseURL, log: log}
}

func (a *HeroAPI) List(ctx context.Context) ([]domain.Hero, error) {
	var heroes []domain.Hero
	err := a.getJSON(ctx, a.baseURL, &heroes)
	return heroes, err
}

func (a *HeroAPI) Get(ctx context.Context, id int) (domain.Hero, error) {
	var hero domain.Hero
	err := a.getJSON(ctx, fmt.Sprintf("%s/%d", a.baseURL, id), &hero)
	return hero, err
}

// Find queries the collection filtered by id. The backend answers with an
// array, empty when nothing matches; a miss is not an error here.
func (a *HeroAPI) Find(ctx context.Context, id int) ([]domain.Hero, error) {
	var heroes []domain.Hero
	err := a.getJSON(ctx, fmt.Sprintf("%s/?id=%d", a.baseURL, id), &heroes)
	return heroes, err
}

func (a *HeroAPI) SearchByName(ctx context.Context, term string) ([]domain.Hero, error) {
	var heroes []domain.Hero
	err := a.getJSON(ctx, fmt.Sprintf("%s/?name=%s", a.baseURL, url.QueryEscape(term)), &heroes)
	return heroes, err
}

// Create posts a hero without an id; the backend assigns one and
// returns the stored record.
func (a *HeroAPI) Create(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	hero.ID = 0
	var created domain.Hero
	err := a.sendJSON(ctx, http.MethodPost, a.baseURL, hero, &created)
	return created, err
}

// Update puts the full record to the collection URL, as the backend expects.
func (a *HeroAPI) Update(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	var updated domain.Hero
	err := a.sendJSON(ctx, http.MethodPut, a.baseURL, hero, &updated)
	return updated, err
}

func (a *HeroAPI) Delete(ctx context.Context, id int) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", a.baseURL, id), nil)
	if err != nil {
		return err
	}
	response, err := a.http.Do(request)
	if err != nil {
		return err
	}
	defer drain(response.Body)
	return checkStatus(response)
}

func (a *HeroAPI) getJSON(ctx context.Context, rawURL string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	return a.do(request, out)
}

func (a *HeroAPI) sendJSON(ctx context.Context, method, rawURL string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	return a.do(request, out)
}

func (a *HeroAPI) do(request *http.Request, out any) error {
	response, err := a.http.Do(request)
	if err != nil {
		return err
	}
	defer drain(response.Body)

	a.log.Debug("hero api call",
		"method", request.Method,
		"url", request.URL.String(),
		"status", response.StatusCode,
	)

	if err := checkStatus(response); err != nil {
		return err
	}
	return json.NewDecoder(response.Body).Decode(out)
}

func checkStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("%w: %s %s returned %s",
		errors.ErrBadStatus,
		response.Request.Method,
		response.Request.URL.Path,
		strconv.Itoa(response.StatusCode),
	)
}

// drain empties and closes the body so the transport can reuse the connection.
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
