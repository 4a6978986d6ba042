package receipt

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/bank"
)

type job struct {
	tx      *atm.Transaction
	account *bank.Account
}

// Spool queues receipts and prints them from worker goroutines, so a slow
// printer never holds up the session's processing path. Stop closes the
// queue and waits for everything already queued to print.
type Spool struct {
	out        io.Writer
	log        *logrus.Logger
	queue      chan job
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// NewSpool creates a spool printing to out.
func NewSpool(out io.Writer, log *logrus.Logger, numWorkers int) *Spool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Spool{
		out:        out,
		log:        log,
		queue:      make(chan job, 64),
		numWorkers: numWorkers,
	}
}

// Start launches the worker goroutines.
func (s *Spool) Start() {
	for i := 0; i < s.numWorkers; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run()
		}()
	}
}

func (s *Spool) run() {
	for j := range s.queue {
		if _, err := io.WriteString(s.out, Format(j.tx, j.account)); err != nil {
			s.log.WithError(err).WithField("transaction", j.tx.ID).Error("Spool.Print.Error")
		}
	}
}

// Stop drains the queue and stops the workers. Safe to call more than once.
func (s *Spool) Stop() {
	s.stopOnce.Do(func() {
		close(s.queue)
		s.wg.Wait()
	})
}

// Present implements atm.Presenter by queueing the receipt.
func (s *Spool) Present(tx *atm.Transaction, account *bank.Account) {
	s.queue <- job{tx: tx, account: account}
}

var _ atm.Presenter = (*Spool)(nil)
