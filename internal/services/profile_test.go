package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lasudevlab/learnhub-backend/internal/types"
)

func newTestProfileService(repo *fakeProfileRepo, now time.Time) *profileService {
	svc := NewProfileService(nil, testLogger(), repo, &fakeLessonRepo{}, &fakeAttemptRepo{}).(*profileService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestAwardXPDerivesLevel(t *testing.T) {
	cases := []struct {
		startXP   int
		amount    int
		wantXP    int
		wantLevel int
	}{
		{0, 0, 0, 1},
		{0, 999, 999, 1},
		{0, 1000, 1000, 2},
		{950, 100, 1050, 2},
		{2500, 600, 3100, 4},
	}
	for _, tc := range cases {
		id := uuid.New()
		repo := newFakeProfileRepo(testProfile(id, func(p *types.Profile) { p.XP = tc.startXP }))
		svc := newTestProfileService(repo, time.Now())

		if err := svc.AwardXP(context.Background(), id, tc.amount); err != nil {
			t.Fatalf("AwardXP(%d) failed: %v", tc.amount, err)
		}
		p := repo.profiles[id]
		if p.XP != tc.wantXP || p.Level != tc.wantLevel {
			t.Fatalf("start %d + %d: got xp=%d level=%d, want xp=%d level=%d",
				tc.startXP, tc.amount, p.XP, p.Level, tc.wantXP, tc.wantLevel)
		}
	}
}

func TestAwardBadgeIsIdempotent(t *testing.T) {
	id := uuid.New()
	repo := newFakeProfileRepo(testProfile(id, nil))
	svc := newTestProfileService(repo, time.Now())

	for i := 0; i < 3; i++ {
		if err := svc.AwardBadge(context.Background(), id, "First Lesson"); err != nil {
			t.Fatalf("AwardBadge failed: %v", err)
		}
	}
	badges := repo.profiles[id].BadgeList()
	if len(badges) != 1 || badges[0] != "First Lesson" {
		t.Fatalf("got badges %v, want exactly one First Lesson", badges)
	}
}

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		lastActivity string
		startStreak  int
		wantStreak   int
	}{
		{"consecutive day increments", "2025-03-09", 4, 5},
		{"same day unchanged", "2025-03-10", 4, 4},
		{"gap resets to one", "2025-03-07", 9, 1},
		{"never active starts at one", "", 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.New()
			repo := newFakeProfileRepo(testProfile(id, func(p *types.Profile) {
				p.Streak = tc.startStreak
				p.LastActivity = tc.lastActivity
			}))
			svc := newTestProfileService(repo, now)

			if err := svc.UpdateStreak(context.Background(), id); err != nil {
				t.Fatalf("UpdateStreak failed: %v", err)
			}
			p := repo.profiles[id]
			if p.Streak != tc.wantStreak {
				t.Fatalf("got streak %d, want %d", p.Streak, tc.wantStreak)
			}
			if p.LastActivity != "2025-03-10" {
				t.Fatalf("got last_activity %q, want 2025-03-10", p.LastActivity)
			}
		})
	}
}

func TestUpdateProfileEmptyIsNoOp(t *testing.T) {
	id := uuid.New()
	repo := newFakeProfileRepo(testProfile(id, nil))
	svc := newTestProfileService(repo, time.Now())

	before := repo.profiles[id].UpdatedAt
	if err := svc.UpdateProfile(context.Background(), id, nil); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if !repo.profiles[id].UpdatedAt.Equal(before) {
		t.Fatalf("empty update touched the row")
	}
}
