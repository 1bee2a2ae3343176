package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	authrepo "meetsync-backend/internal/auth/repository"
	meetingdomain "meetsync-backend/internal/meeting/domain"
	"meetsync-backend/internal/meeting/usecase"
)

// Scheduler runs the periodic incremental sweep over every user with a
// connected provider workspace.
type Scheduler struct {
	cron           *cron.Cron
	userRepo       authrepo.UserRepository
	meetingUsecase usecase.MeetingUsecase
	spec           string
}

func New(userRepo authrepo.UserRepository, meetingUsecase usecase.MeetingUsecase, spec string) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		userRepo:       userRepo,
		meetingUsecase: meetingUsecase,
		spec:           spec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[Scheduler] Incremental sync scheduled with spec %q", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweep runs users sequentially; a slow or failing workspace delays the rest
// of the sweep but never skips them.
func (s *Scheduler) sweep() {
	users, err := s.userRepo.FindConnected()
	if err != nil {
		log.Printf("[Scheduler] Failed to list connected users: %v", err)
		return
	}
	log.Printf("[Scheduler] Incremental sweep over %d connected users", len(users))

	for _, user := range users {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		_, err := s.meetingUsecase.Sync(ctx, user.ID, usecase.SyncOptions{
			SyncType: meetingdomain.SyncTypeIncremental,
		})
		cancel()
		if err != nil {
			log.Printf("[Scheduler] Incremental sync failed for user %s: %v", user.ID, err)
		}
	}
}
