package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/katalvlaran/onestroke/level"
)

var levelPrefix = []byte("level/")

func levelKey(id int) []byte {
	return []byte(fmt.Sprintf("level/%08d", id))
}

// Badger is a catalog kept in a badger database.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) the database at path. With
// inMemory the path is ignored and nothing touches the disk.
func OpenBadger(path string, inMemory bool) (*Badger, error) {
	if !inMemory && path == "" {
		return nil, errors.New("store: OpenBadger: empty path")
	}

	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil
	opts.MetricsEnabled = false

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: OpenBadger %q", path)
	}
	return &Badger{db: db}, nil
}

// Close releases the database.
func (b *Badger) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return errors.Wrap(err, "store: Close")
}

// Put stores l under its ID, replacing any previous value.
func (b *Badger) Put(l level.Level) error {
	val, err := json.Marshal(l)
	if err != nil {
		return errors.Wrapf(err, "store: Put level %d", l.ID)
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(levelKey(l.ID), val)
	})
	return errors.Wrapf(err, "store: Put level %d", l.ID)
}

// Get loads one level. A missing ID wraps level.ErrLevelNotFound.
func (b *Badger) Get(id int) (level.Level, error) {
	var l level.Level
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(levelKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &l)
		})
	})
	if err == badger.ErrKeyNotFound {
		return level.Level{}, errors.Wrapf(level.ErrLevelNotFound, "store: Get %d", id)
	}
	if err != nil {
		return level.Level{}, errors.Wrapf(err, "store: Get %d", id)
	}
	return l, nil
}

// Delete removes a level; deleting a missing ID is not an error.
func (b *Badger) Delete(id int) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(levelKey(id))
	})
	return errors.Wrapf(err, "store: Delete %d", id)
}

// Catalog returns every stored level in ID order.
func (b *Badger) Catalog() (level.Catalog, error) {
	var cat level.Catalog
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         levelPrefix,
		})
		defer it.Close()

		for it.Seek(levelPrefix); it.ValidForPrefix(levelPrefix); it.Next() {
			var l level.Level
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &l)
			}); err != nil {
				return errors.Wrapf(err, "decode %s", item.Key())
			}
			cat = append(cat, l)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "store: Catalog")
	}
	return cat, nil
}

// PutCatalog replaces the stored levels with cat.
func (b *Badger) PutCatalog(cat level.Catalog) error {
	if err := b.db.DropPrefix(levelPrefix); err != nil {
		return errors.Wrap(err, "store: PutCatalog: drop")
	}

	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	for _, l := range cat {
		val, err := json.Marshal(l)
		if err != nil {
			return errors.Wrapf(err, "store: PutCatalog: level %d", l.ID)
		}
		if err = wb.Set(levelKey(l.ID), val); err != nil {
			return errors.Wrapf(err, "store: PutCatalog: level %d", l.ID)
		}
	}
	return errors.Wrap(wb.Flush(), "store: PutCatalog: flush")
}
