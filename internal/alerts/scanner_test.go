package alerts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

type fakeStore struct {
	deliverables []repository.DueDeliverableItem
	contracts    []repository.EndingContractItem
	listErr      error
	inserted     [][]model.Alert
}

func (f *fakeStore) ListDueDeliverables(ctx context.Context, soon time.Time) ([]repository.DueDeliverableItem, error) {
	return f.deliverables, f.listErr
}

func (f *fakeStore) ListEndingContracts(ctx context.Context, soon time.Time) ([]repository.EndingContractItem, error) {
	return f.contracts, nil
}

func (f *fakeStore) InsertBatch(ctx context.Context, alerts []model.Alert) error {
	f.inserted = append(f.inserted, alerts)
	return nil
}

func newTestScanner(store Store, now time.Time) *Scanner {
	scanner := NewScanner(store, zerolog.Nop(), time.Hour, 7*24*time.Hour)
	scanner.now = func() time.Time { return now }
	return scanner
}

func TestScannerScan(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	t.Run("produces overdue and due-soon deliverable alerts", func(t *testing.T) {
		overdueID := uuid.New()
		soonID := uuid.New()
		store := &fakeStore{
			deliverables: []repository.DueDeliverableItem{
				{ID: overdueID, ExpectedDate: now.AddDate(0, 0, -3)},
				{ID: soonID, ExpectedDate: now.AddDate(0, 0, 5)},
			},
		}

		require.NoError(t, newTestScanner(store, now).Scan(context.Background()))

		require.Len(t, store.inserted, 1)
		batch := store.inserted[0]
		require.Len(t, batch, 2)

		assert.Equal(t, fmt.Sprintf("Deliverable %s is overdue (expected 2026-06-12).", overdueID), batch[0].Message)
		require.NotNil(t, batch[0].DeliverableID)
		assert.Equal(t, overdueID, *batch[0].DeliverableID)
		assert.Nil(t, batch[0].ContractID)

		assert.Equal(t, fmt.Sprintf("Deliverable %s is due soon (expected 2026-06-20).", soonID), batch[1].Message)
	})

	t.Run("produces ended and ending contract alerts", func(t *testing.T) {
		endedID := uuid.New()
		endingID := uuid.New()
		store := &fakeStore{
			contracts: []repository.EndingContractItem{
				{ID: endedID, TermEnd: now.AddDate(0, 0, -1)},
				{ID: endingID, TermEnd: now.AddDate(0, 0, 6)},
			},
		}

		require.NoError(t, newTestScanner(store, now).Scan(context.Background()))

		require.Len(t, store.inserted, 1)
		batch := store.inserted[0]
		require.Len(t, batch, 2)

		assert.Equal(t, fmt.Sprintf("Contract %s has ended on 2026-06-14.", endedID), batch[0].Message)
		require.NotNil(t, batch[0].ContractID)
		assert.Equal(t, endedID, *batch[0].ContractID)
		assert.Nil(t, batch[0].DeliverableID)

		assert.Equal(t, fmt.Sprintf("Contract %s is approaching end of term on 2026-06-21.", endingID), batch[1].Message)
	})

	t.Run("carries the target date on each alert", func(t *testing.T) {
		expected := now.AddDate(0, 0, 2)
		store := &fakeStore{
			deliverables: []repository.DueDeliverableItem{{ID: uuid.New(), ExpectedDate: expected}},
		}

		require.NoError(t, newTestScanner(store, now).Scan(context.Background()))

		require.Len(t, store.inserted, 1)
		assert.Equal(t, expected, store.inserted[0][0].TargetDate)
	})

	t.Run("skips insert when nothing is due", func(t *testing.T) {
		store := &fakeStore{}
		require.NoError(t, newTestScanner(store, now).Scan(context.Background()))
		assert.Empty(t, store.inserted)
	})

	t.Run("aborts without inserting on list failure", func(t *testing.T) {
		store := &fakeStore{
			listErr:   errors.New("db down"),
			contracts: []repository.EndingContractItem{{ID: uuid.New(), TermEnd: now}},
		}
		err := newTestScanner(store, now).Scan(context.Background())
		assert.Error(t, err)
		assert.Empty(t, store.inserted)
	})
}

func TestScannerRunStopsOnCancel(t *testing.T) {
	store := &fakeStore{}
	scanner := NewScanner(store, zerolog.Nop(), time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scanner.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scanner did not stop on context cancel")
	}
}
