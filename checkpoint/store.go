// SPDX-License-Identifier: MIT

package checkpoint

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/disco/metrics"
	"github.com/katalvlaran/disco/nodedesc"
)

// Store persists node descriptors of one run.
type Store struct {
	db     *badger.DB
	run    uuid.UUID
	prefix []byte
	log    *zap.Logger
	m      *metrics.Collectors
}

// Node pairs a node id with its descriptor for PutBatch.
type Node struct {
	ID   int
	Desc *nodedesc.Descriptor
}

// Open opens or creates the database described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("checkpoint: create %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{s: log.Named("badger").Sugar()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open badger: %w", err)
	}

	run := cfg.Run
	if run == uuid.Nil {
		run = uuid.New()
	}
	log.Debug("checkpoint store opened",
		zap.Stringer("run", run),
		zap.Bool("in_memory", cfg.InMemory),
	)

	return &Store{
		db:     db,
		run:    run,
		prefix: []byte("node/" + run.String() + "/"),
		log:    log,
		m:      cfg.Metrics,
	}, nil
}

// Run returns the key namespace of the store.
func (s *Store) Run() uuid.UUID { return s.run }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) key(id int) ([]byte, error) {
	if id < 0 {
		return nil, fmt.Errorf("%d: %w", id, ErrBadID)
	}
	k := make([]byte, len(s.prefix), len(s.prefix)+8)
	copy(k, s.prefix)

	return binary.BigEndian.AppendUint64(k, uint64(id)), nil
}

func (s *Store) encode(id int, d *nodedesc.Descriptor) ([]byte, []byte, error) {
	if d == nil {
		return nil, nil, ErrNilDescriptor
	}
	k, err := s.key(id)
	if err != nil {
		return nil, nil, err
	}
	v, err := nodedesc.Marshal(d)
	if err != nil {
		return nil, nil, fmt.Errorf("checkpoint: encode node %d: %w", id, err)
	}
	s.m.Encoded(len(v))

	return k, v, nil
}

// Put stores the encoding of d under id, replacing any previous value.
func (s *Store) Put(ctx context.Context, id int, d *nodedesc.Descriptor) (err error) {
	defer func() { s.m.CheckpointOp("put", err) }()
	if err = ctx.Err(); err != nil {
		return err
	}
	k, v, err := s.encode(id, d)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, v)
	})
}

// Get decodes the node stored under id into d. The warm start d held before
// the call is released, as with any decode.
func (s *Store) Get(ctx context.Context, id int, d *nodedesc.Descriptor) (err error) {
	defer func() { s.m.CheckpointOp("get", err) }()
	if err = ctx.Err(); err != nil {
		return err
	}
	if d == nil {
		return ErrNilDescriptor
	}
	k, err := s.key(id)
	if err != nil {
		return err
	}

	var raw []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checkpoint: read node %d: %w", id, err)
	}

	if err = d.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("checkpoint: decode node %d: %w", id, err)
	}
	s.m.Decoded()

	return nil
}

// Delete removes id. Deleting an absent node is not an error.
func (s *Store) Delete(ctx context.Context, id int) (err error) {
	defer func() { s.m.CheckpointOp("delete", err) }()
	if err = ctx.Err(); err != nil {
		return err
	}
	k, err := s.key(id)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(k)
	})
}

// PutBatch encodes nodes in parallel and writes them in one batch.
// Each descriptor is touched by a single goroutine. On error nothing is written.
func (s *Store) PutBatch(ctx context.Context, nodes []Node) (err error) {
	defer func() { s.m.CheckpointOp("put_batch", err) }()

	var (
		keys = make([][]byte, len(nodes))
		vals = make([][]byte, len(nodes))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, n := range nodes {
		i, n := i, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			k, v, err := s.encode(n.ID, n.Desc)
			if err != nil {
				return err
			}
			keys[i], vals[i] = k, v

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for i := range keys {
		if err = wb.Set(keys[i], vals[i]); err != nil {
			return fmt.Errorf("checkpoint: batch node %d: %w", nodes[i].ID, err)
		}
	}
	if err = wb.Flush(); err != nil {
		return fmt.Errorf("checkpoint: flush batch: %w", err)
	}
	s.log.Debug("checkpoint batch written", zap.Int("nodes", len(nodes)))

	return nil
}

// IDs returns the stored node ids of this run in ascending order.
func (s *Store) IDs(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ids []int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = s.prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			ids = append(ids, int(binary.BigEndian.Uint64(k[len(s.prefix):])))
		}

		return nil
	})

	return ids, err
}

// Count returns the number of stored nodes of this run.
func (s *Store) Count(ctx context.Context) (int, error) {
	ids, err := s.IDs(ctx)

	return len(ids), err
}
