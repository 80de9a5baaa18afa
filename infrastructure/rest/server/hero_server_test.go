package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hero-lab/domain"
	"hero-lab/mocks"
	"hero-lab/repositories"
)

func newRouterUnderTest(t *testing.T, seed []domain.Hero) *gin.Engine {
	req := require.New(t)
	gin.SetMode(gin.TestMode)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	index, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	req.NoError(err)
	t.Cleanup(func() { _ = index.Close() })

	repo := repositories.NewHeroRepository(db, index, slog.Default())
	req.NoError(repo.Seed(seed))

	return NewHeroServer(slog.Default(), repo).Router()
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeHeroes(t *testing.T, recorder *httptest.ResponseRecorder) []domain.Hero {
	var heroes []domain.Hero
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &heroes))
	return heroes
}

func Test_Get_Collection(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	recorder := perform(router, http.MethodGet, "/api/heroes", "")
	req.Equal(http.StatusOK, recorder.Code)
	req.Len(decodeHeroes(t, recorder), 10)
	req.NotEmpty(recorder.Header().Get("X-Request-ID"))
}

func Test_Get_Filtered_By_Id_Answers_With_An_Array(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	recorder := perform(router, http.MethodGet, "/api/heroes?id=11", "")
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal([]domain.Hero{{ID: 11, Name: "Mr. Nice"}}, decodeHeroes(t, recorder))

	recorder = perform(router, http.MethodGet, "/api/heroes?id=999", "")
	req.Equal(http.StatusOK, recorder.Code)
	req.Empty(decodeHeroes(t, recorder))
}

func Test_Get_By_Path_404s_When_Missing(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	recorder := perform(router, http.MethodGet, "/api/heroes/11", "")
	req.Equal(http.StatusOK, recorder.Code)

	recorder = perform(router, http.MethodGet, "/api/heroes/999", "")
	req.Equal(http.StatusNotFound, recorder.Code)
}

func Test_Search_By_Name(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	recorder := perform(router, http.MethodGet, "/api/heroes?name=bom", "")
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal([]domain.Hero{{ID: 13, Name: "Bombasto"}}, decodeHeroes(t, recorder))

	recorder = perform(router, http.MethodGet, "/api/heroes?name=nobody", "")
	req.Equal(http.StatusOK, recorder.Code)
	req.Empty(decodeHeroes(t, recorder))
}

func Test_Post_Assigns_The_Next_Id(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	recorder := perform(router, http.MethodPost, "/api/heroes", `{"name":"Dr Velocity"}`)
	req.Equal(http.StatusCreated, recorder.Code)

	var created domain.Hero
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &created))
	req.Equal(domain.Hero{ID: 21, Name: "Dr Velocity"}, created)
}

func Test_Post_Rejects_Blank_Names(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	recorder := perform(router, http.MethodPost, "/api/heroes", `{"name":"   "}`)
	req.Equal(http.StatusBadRequest, recorder.Code)
}

func Test_Put_Upserts_The_Full_Record(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	recorder := perform(router, http.MethodPut, "/api/heroes", `{"id":12,"name":"Narco the Second"}`)
	req.Equal(http.StatusOK, recorder.Code)

	recorder = perform(router, http.MethodGet, "/api/heroes/12", "")
	var hero domain.Hero
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &hero))
	req.Equal("Narco the Second", hero.Name)
}

func Test_Delete_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	router := newRouterUnderTest(t, repositories.DefaultHeroes())

	req.Equal(http.StatusNoContent, perform(router, http.MethodDelete, "/api/heroes/12", "").Code)
	req.Equal(http.StatusNoContent, perform(router, http.MethodDelete, "/api/heroes/12", "").Code)
	req.Equal(http.StatusNotFound, perform(router, http.MethodGet, "/api/heroes/12", "").Code)
}

func Test_Store_Failure_Maps_To_500(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockIHeroRepository(ctrl)
	repo.EXPECT().All().Return(nil, fmt.Errorf("store offline")).Times(1)

	router := NewHeroServer(slog.Default(), repo).Router()
	recorder := perform(router, http.MethodGet, "/api/heroes", "")
	req.Equal(http.StatusInternalServerError, recorder.Code)
}
