//go:generate go run go.uber.org/mock/mockgen -source=hero.go -destination=../mocks/mock_hero_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"

	"hero-lab/domain"
	"hero-lab/errors"
)

type IHeroRepository interface {
	All() ([]domain.Hero, error)
	Get(id int) (domain.Hero, error)
	SearchByName(ctx context.Context, term string) ([]domain.Hero, error)
	Create(name string) (domain.Hero, error)
	Upsert(hero domain.Hero) error
	Delete(id int) error
	Seed(heroes []domain.Hero) error
}

// HeroRepository stores heroes in BadgerDB and mirrors every name into a
// Bluge index so the search endpoint can match substrings without
// scanning the whole store.
//
// The key is formatted as "hero:{id_padded}" with 10-digit zero padding
// so a prefix scan yields heroes in id order.
type HeroRepository struct {
	db    *badger.DB
	index *bluge.Writer
	log   *slog.Logger
}

func NewHeroRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger) *HeroRepository {
	return &HeroRepository{db: db, index: index, log: log}
}

func heroKey(id int) []byte {
	return []byte(fmt.Sprintf("hero:%010d", id))
}

func (r *HeroRepository) All() ([]domain.Hero, error) {
	var heroes []domain.Hero
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("hero:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var hero domain.Hero
				if err := json.Unmarshal(value, &hero); err != nil {
					return err
				}
				heroes = append(heroes, hero)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return heroes, err
}

func (r *HeroRepository) Get(id int) (domain.Hero, error) {
	var hero domain.Hero
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(heroKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return errors.ErrHeroNotFound
			}
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &hero)
		})
	})
	return hero, err
}

// SearchByName matches the term against indexed names, case-insensitive
// and substring-style, and returns the hits in id order.
func (r *HeroRepository) SearchByName(ctx context.Context, term string) ([]domain.Hero, error) {
	reader, err := r.index.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewWildcardQuery("*" + strings.ToLower(term) + "*").SetField("name")
	iterator, err := reader.Search(ctx, bluge.NewAllMatches(query))
	if err != nil {
		return nil, err
	}

	var ids []int
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, convErr := strconv.Atoi(string(value)); convErr == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Ints(ids)

	heroes := make([]domain.Hero, 0, len(ids))
	for _, id := range ids {
		hero, err := r.Get(id)
		if err != nil {
			// The index can briefly outlive a deleted record.
			if err == errors.ErrHeroNotFound {
				continue
			}
			return nil, err
		}
		heroes = append(heroes, hero)
	}
	return heroes, nil
}

// Create assigns the next free id the way the classic in-memory API
// does: one past the highest id in the store, 11 when the store is empty.
func (r *HeroRepository) Create(name string) (domain.Hero, error) {
	var hero domain.Hero
	err := r.db.Update(func(txn *badger.Txn) error {
		id, err := nextID(txn)
		if err != nil {
			return err
		}
		hero = domain.Hero{ID: id, Name: name}
		value, err := json.Marshal(hero)
		if err != nil {
			return err
		}
		return txn.Set(heroKey(hero.ID), value)
	})
	if err != nil {
		return domain.Hero{}, err
	}
	return hero, r.indexHero(hero)
}

// Upsert writes the full record under its existing id.
func (r *HeroRepository) Upsert(hero domain.Hero) error {
	value, err := json.Marshal(hero)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(heroKey(hero.ID), value)
	})
	if err != nil {
		return err
	}
	return r.indexHero(hero)
}

// Delete is idempotent: removing an absent id is not an error.
func (r *HeroRepository) Delete(id int) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(heroKey(id))
	})
	if err != nil {
		return err
	}
	doc := bluge.NewDocument(strconv.Itoa(id))
	return r.index.Delete(doc.ID())
}

func (r *HeroRepository) Seed(heroes []domain.Hero) error {
	for _, hero := range heroes {
		if err := r.Upsert(hero); err != nil {
			return err
		}
	}
	r.log.Info("seeded hero store", "count", len(heroes))
	return nil
}

func (r *HeroRepository) indexHero(hero domain.Hero) error {
	doc := bluge.NewDocument(strconv.Itoa(hero.ID)).
		AddField(bluge.NewTextField("name", strings.ToLower(hero.Name)))
	return r.index.Update(doc.ID(), doc)
}

// nextID finds the highest assigned id with a reverse prefix scan.
func nextID(txn *badger.Txn) (int, error) {
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	it := txn.NewIterator(options)
	defer it.Close()

	prefix := []byte("hero:")
	// Seek past any padded id, then step back onto the highest key.
	it.Seek(append(append([]byte{}, prefix...), []byte("9999999999")...))
	if !it.ValidForPrefix(prefix) {
		return 11, nil
	}
	last := string(it.Item().Key()[len(prefix):])
	id, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("malformed hero key %q: %w", last, err)
	}
	return id + 1, nil
}
