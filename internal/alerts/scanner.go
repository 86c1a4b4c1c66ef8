package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

const dateLayout = "2006-01-02"

// Store is the persistence surface the scanner needs.
type Store interface {
	ListDueDeliverables(ctx context.Context, soon time.Time) ([]repository.DueDeliverableItem, error)
	ListEndingContracts(ctx context.Context, soon time.Time) ([]repository.EndingContractItem, error)
	InsertBatch(ctx context.Context, alerts []model.Alert) error
}

// Scanner periodically inspects deliverables and contract terms and records
// alerts for anything overdue or coming due inside the warning window.
type Scanner struct {
	store      Store
	log        zerolog.Logger
	interval   time.Duration
	soonWindow time.Duration
	now        func() time.Time
}

func NewScanner(store Store, log zerolog.Logger, interval, soonWindow time.Duration) *Scanner {
	return &Scanner{
		store:      store,
		log:        log.With().Str("component", "alert_scanner").Logger(),
		interval:   interval,
		soonWindow: soonWindow,
		now:        time.Now,
	}
}

// Run scans once immediately and then on every interval tick until the
// context is cancelled.
func (s *Scanner) Run(ctx context.Context) {
	if err := s.Scan(ctx); err != nil {
		s.log.Error().Err(err).Msg("alert scan failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("alert scanner stopped")
			return
		case <-ticker.C:
			if err := s.Scan(ctx); err != nil {
				s.log.Error().Err(err).Msg("alert scan failed")
			}
		}
	}
}

// Scan evaluates the current state once and inserts all produced alerts in
// a single batch. An error aborts the run without inserting anything; the
// next tick retries from scratch.
func (s *Scanner) Scan(ctx context.Context) error {
	now := s.now()
	soon := now.Add(s.soonWindow)

	deliverables, err := s.store.ListDueDeliverables(ctx, soon)
	if err != nil {
		return fmt.Errorf("list due deliverables: %w", err)
	}
	contracts, err := s.store.ListEndingContracts(ctx, soon)
	if err != nil {
		return fmt.Errorf("list ending contracts: %w", err)
	}

	produced := make([]model.Alert, 0, len(deliverables)+len(contracts))
	for _, d := range deliverables {
		id := d.ID
		alert := model.Alert{
			Message:       deliverableMessage(d, now),
			DeliverableID: &id,
			TargetDate:    d.ExpectedDate,
		}
		s.log.Warn().
			Str("deliverable_id", id.String()).
			Time("expected_date", d.ExpectedDate).
			Msg(alert.Message)
		produced = append(produced, alert)
	}
	for _, c := range contracts {
		id := c.ID
		alert := model.Alert{
			Message:    contractMessage(c, now),
			ContractID: &id,
			TargetDate: c.TermEnd,
		}
		s.log.Warn().
			Str("contract_id", id.String()).
			Time("term_end", c.TermEnd).
			Msg(alert.Message)
		produced = append(produced, alert)
	}

	if len(produced) == 0 {
		s.log.Info().Msg("alert scan produced no alerts")
		return nil
	}
	if err := s.store.InsertBatch(ctx, produced); err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}
	s.log.Info().Int("count", len(produced)).Msg("alert scan completed")
	return nil
}

func deliverableMessage(d repository.DueDeliverableItem, now time.Time) string {
	date := d.ExpectedDate.Format(dateLayout)
	if d.ExpectedDate.Before(now) {
		return fmt.Sprintf("Deliverable %s is overdue (expected %s).", d.ID, date)
	}
	return fmt.Sprintf("Deliverable %s is due soon (expected %s).", d.ID, date)
}

func contractMessage(c repository.EndingContractItem, now time.Time) string {
	date := c.TermEnd.Format(dateLayout)
	if c.TermEnd.Before(now) {
		return fmt.Sprintf("Contract %s has ended on %s.", c.ID, date)
	}
	return fmt.Sprintf("Contract %s is approaching end of term on %s.", c.ID, date)
}
