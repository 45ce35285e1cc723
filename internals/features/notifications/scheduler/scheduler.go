// internals/features/notifications/scheduler/scheduler.go
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"sakanku_backend/internals/constants"
	adminModel "sakanku_backend/internals/features/admins/admin/model"
	notifModel "sakanku_backend/internals/features/notifications/notification/model"
	notifService "sakanku_backend/internals/features/notifications/notification/service"
	contractModel "sakanku_backend/internals/features/rentals/contract/model"
)

const (
	defaultLookAheadDays = 30
	defaultRunAt         = "09:00"
)

type Config struct {
	// How many days ahead of rent_end_date a contract counts as expiring.
	LookAheadDays int
	// Daily run time in "HH:MM" (local time).
	RunAt string
}

// Scheduler scans for expiring rental contracts once a day and files an
// upcoming_end notification per contract through the dedup rule. It is an
// explicit instance owned by main; there is no package-level singleton.
type Scheduler struct {
	db  *gorm.DB
	cfg Config

	mu      sync.Mutex
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

func New(db *gorm.DB, cfg Config) *Scheduler {
	if cfg.LookAheadDays <= 0 {
		cfg.LookAheadDays = defaultLookAheadDays
	}
	if cfg.RunAt == "" {
		cfg.RunAt = defaultRunAt
	}
	return &Scheduler{db: db, cfg: cfg}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.loop(s.stopCh, s.doneCh)
	log.Printf("✅ Contract expiry scheduler started (daily at %s, window %d days)", s.cfg.RunAt, s.cfg.LookAheadDays)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stopCh)
	<-s.doneCh
	s.running = false
	log.Println("✅ Contract expiry scheduler stopped")
}

func (s *Scheduler) loop(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	for {
		timer := time.NewTimer(time.Until(s.nextRun(time.Now())))
		select {
		case <-stopCh:
			timer.Stop()
			return
		case <-timer.C:
			s.RunOnce()
		}
	}
}

// nextRun returns the next occurrence of cfg.RunAt strictly after now.
func (s *Scheduler) nextRun(now time.Time) time.Time {
	var hour, minute int
	if _, err := fmt.Sscanf(s.cfg.RunAt, "%d:%d", &hour, &minute); err != nil {
		hour, minute = 9, 0
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// RunOnce performs a single expiry scan. Errors are logged and swallowed so
// a bad run never kills the schedule; each notification create is its own
// small transaction.
func (s *Scheduler) RunOnce() {
	if err := s.scan(); err != nil {
		log.Printf("⚠️ Contract expiry scan failed: %v", err)
	}
}

func (s *Scheduler) scan() error {
	today := time.Now().Truncate(24 * time.Hour)
	horizon := today.AddDate(0, 0, s.cfg.LookAheadDays)

	var contracts []contractModel.RentalContractModel
	if err := s.db.
		Where("is_active = ? AND rent_end_date >= ? AND rent_end_date <= ?", true, today, horizon).
		Find(&contracts).Error; err != nil {
		return err
	}
	if len(contracts) == 0 {
		return nil
	}

	notifyAdminID, err := s.resolveNotifyAdmin()
	if err != nil {
		return err
	}
	if notifyAdminID == 0 {
		log.Println("⚠️ No admins exist; skipping expiry notifications")
		return nil
	}

	for i := range contracts {
		c := &contracts[i]
		desc := fmt.Sprintf("Rental contract #%d for studio #%d ends on %s",
			c.ID, c.ApartmentPartID, c.RentEndDate.Format("2006-01-02"))
		if _, err := notifService.CreateDeduplicated(s.db,
			c.ID, notifModel.StatusUpcomingEnd, notifyAdminID, desc); err != nil {
			log.Printf("⚠️ Failed to create expiry notification for contract %d: %v", c.ID, err)
		}
	}
	return nil
}

// resolveNotifyAdmin prefers the first super admin, then the first admin in
// listing order. Zero means no admins exist at all.
func (s *Scheduler) resolveNotifyAdmin() (uint, error) {
	var admin adminModel.AdminModel
	err := s.db.Select("id").
		Where("role = ?", constants.RoleSuperAdmin).
		Order("id ASC").First(&admin).Error
	if err == nil {
		return admin.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	err = s.db.Select("id").Order("id ASC").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return admin.ID, nil
}
