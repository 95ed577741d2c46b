package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lasudevlab/learnhub-backend/internal/catalog"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

func newTestLearningService(profiles *fakeProfileRepo, lessons *fakeLessonRepo, attempts *fakeAttemptRepo, certs *fakeCertRepo, now time.Time) *learningService {
	svc := NewLearningService(nil, testLogger(), profiles, lessons, attempts, certs, nil).(*learningService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSubmitQuizAttemptGrading(t *testing.T) {
	id := uuid.New()
	attempts := &fakeAttemptRepo{}
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, nil)), &fakeLessonRepo{}, attempts, &fakeCertRepo{}, time.Now())

	// variables-data-types: points 10/10/10/15/10, xp reward 50. Three right
	// (including the free-text one matched by containment) is 35 of 55.
	answers := map[string]string{
		"1": "let myVar = 5;",
		"2": "integer",
		"3": "boolean",
		"4": "let myName = 'Grace';",
		"5": "53",
	}
	result, err := svc.SubmitQuizAttempt(context.Background(), id, "variables-data-types", answers, 7)
	if err != nil {
		t.Fatalf("SubmitQuizAttempt failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}
	if result.Score != 35 {
		t.Fatalf("got score %d, want 35", result.Score)
	}
	if result.Percentage != 64 {
		t.Fatalf("got percentage %d, want 64", result.Percentage)
	}
	if result.XPEarned != 32 {
		t.Fatalf("got xp %d, want 32", result.XPEarned)
	}

	if len(attempts.rows) != 1 {
		t.Fatalf("got %d attempt rows, want 1", len(attempts.rows))
	}
	row := attempts.rows[0]
	if row.MaxScore != 55 || row.TotalQuestions != 5 {
		t.Fatalf("got max_score=%d total=%d, want 55/5", row.MaxScore, row.TotalQuestions)
	}
	if row.CorrectAnswers != 3 {
		t.Fatalf("got correct_answers %d, want 3", row.CorrectAnswers)
	}
}

func TestSubmitQuizAttemptMatchesCaseInsensitiveSubstring(t *testing.T) {
	id := uuid.New()
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, nil)), &fakeLessonRepo{}, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())

	// Only question 2's answer, buried in surrounding prose and upper-cased.
	answers := map[string]string{"2": "I believe INTEGER is not a real JS type"}
	result, err := svc.SubmitQuizAttempt(context.Background(), id, "variables-data-types", answers, 2)
	if err != nil {
		t.Fatalf("SubmitQuizAttempt failed: %v", err)
	}
	if result.Score != 10 {
		t.Fatalf("got score %d, want 10", result.Score)
	}
}

func TestGradeQuizRounding(t *testing.T) {
	quiz := &catalog.Quiz{
		XPReward: 100,
		Questions: []catalog.QuizQuestion{
			{ID: "1", CorrectAnswer: "alpha", Points: 10},
			{ID: "2", CorrectAnswer: "42", Points: 20},
		},
	}

	// Only the 20-point question matches, via containment on free text.
	g := gradeQuiz(quiz, map[string]string{"2": "the answer is 42 because..."})
	if g.score != 20 || g.maxScore != 30 {
		t.Fatalf("got %d/%d, want 20/30", g.score, g.maxScore)
	}
	if g.percentage != 67 {
		t.Fatalf("got percentage %d, want 67", g.percentage)
	}
	if g.xpEarned != 67 {
		t.Fatalf("got xp %d, want 67", g.xpEarned)
	}
	if g.correctCount != 1 {
		t.Fatalf("got correct count %d, want 1", g.correctCount)
	}

	// A blank answer never scores.
	if g := gradeQuiz(quiz, map[string]string{"1": "", "2": ""}); g.score != 0 {
		t.Fatalf("blank answers scored %d points", g.score)
	}
}

func TestSubmitQuizAttemptUnknownQuiz(t *testing.T) {
	id := uuid.New()
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, nil)), &fakeLessonRepo{}, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())

	if _, err := svc.SubmitQuizAttempt(context.Background(), id, "no-such-quiz", nil, 1); err == nil {
		t.Fatalf("expected error for unknown quiz")
	}
}

func TestGetQuizzesLocking(t *testing.T) {
	ctx := context.Background()

	find := func(list []QuizWithProgress, id string) *QuizWithProgress {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
		return nil
	}

	// One completed lesson: Intermediate quizzes stay locked.
	id := uuid.New()
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, func(p *types.Profile) { p.CompletedLessons = 1 })), &fakeLessonRepo{}, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())
	quizzes, err := svc.GetQuizzes(ctx, id)
	if err != nil {
		t.Fatalf("GetQuizzes failed: %v", err)
	}
	if q := find(quizzes, "variables-data-types"); q == nil || q.Locked {
		t.Fatalf("beginner quiz should be unlocked")
	}
	if q := find(quizzes, "react-components"); q == nil || !q.Locked {
		t.Fatalf("intermediate quiz should be locked below two completed lessons")
	}

	// Two completed lessons unlock intermediates, except the static lock.
	id2 := uuid.New()
	svc2 := newTestLearningService(newFakeProfileRepo(testProfile(id2, func(p *types.Profile) { p.CompletedLessons = 2 })), &fakeLessonRepo{}, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())
	quizzes2, err := svc2.GetQuizzes(ctx, id2)
	if err != nil {
		t.Fatalf("GetQuizzes failed: %v", err)
	}
	if q := find(quizzes2, "react-components"); q == nil || q.Locked {
		t.Fatalf("intermediate quiz should unlock at two completed lessons")
	}
	if q := find(quizzes2, "react-state-hooks"); q == nil || !q.Locked {
		t.Fatalf("statically locked quiz must stay locked")
	}
}

func TestGetQuizzesBestScore(t *testing.T) {
	id := uuid.New()
	attempts := &fakeAttemptRepo{rows: []*types.QuizAttempt{
		{UserID: id, QuizID: "variables-data-types", Percentage: 40},
		{UserID: id, QuizID: "variables-data-types", Percentage: 85},
		{UserID: id, QuizID: "variables-data-types", Percentage: 60},
	}}
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, nil)), &fakeLessonRepo{}, attempts, &fakeCertRepo{}, time.Now())

	quizzes, err := svc.GetQuizzes(context.Background(), id)
	if err != nil {
		t.Fatalf("GetQuizzes failed: %v", err)
	}
	for _, q := range quizzes {
		if q.ID != "variables-data-types" {
			continue
		}
		if q.Attempts != 3 || !q.Completed {
			t.Fatalf("got attempts=%d completed=%v, want 3/true", q.Attempts, q.Completed)
		}
		if q.Score == nil || *q.Score != 85 {
			t.Fatalf("got score %v, want 85", q.Score)
		}
		return
	}
	t.Fatalf("quiz not found")
}

func TestGetLeaderboardOrderingAndInitials(t *testing.T) {
	a := testProfile(uuid.New(), func(p *types.Profile) {
		p.FullName = "Amina Bello"
		p.XP = 500
		p.Level = 1
		p.CompletedLessons = 3
	})
	b := testProfile(uuid.New(), func(p *types.Profile) {
		p.FullName = "Chidi Okafor"
		p.XP = 500
		p.Level = 1
		p.CompletedLessons = 5
	})
	c := testProfile(uuid.New(), func(p *types.Profile) {
		p.FullName = ""
		p.XP = 900
		p.Level = 1
	})
	svc := newTestLearningService(newFakeProfileRepo(a, b, c), &fakeLessonRepo{}, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())

	entries, err := svc.GetLeaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].ID != c.ID || entries[1].ID != b.ID || entries[2].ID != a.ID {
		t.Fatalf("wrong ordering: %s %s %s", entries[0].FullName, entries[1].FullName, entries[2].FullName)
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Fatalf("entry %d has rank %d", i, e.Rank)
		}
	}
	if entries[0].Initials != "U" {
		t.Fatalf("empty name should yield initials U, got %q", entries[0].Initials)
	}
	if entries[1].Initials != "CO" {
		t.Fatalf("got initials %q, want CO", entries[1].Initials)
	}
}

func TestGetLeaderboardLevelTieBreak(t *testing.T) {
	a := testProfile(uuid.New(), func(p *types.Profile) {
		p.FullName = "Amina Bello"
		p.XP = 500
		p.Level = 2
		p.CompletedLessons = 3
	})
	b := testProfile(uuid.New(), func(p *types.Profile) {
		p.FullName = "Chidi Okafor"
		p.XP = 500
		p.Level = 3
		p.CompletedLessons = 1
	})
	svc := newTestLearningService(newFakeProfileRepo(a, b), &fakeLessonRepo{}, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())

	entries, err := svc.GetLeaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Equal xp: the higher level wins even with fewer completed lessons.
	if entries[0].ID != b.ID || entries[1].ID != a.ID {
		t.Fatalf("wrong ordering: %s before %s", entries[0].FullName, entries[1].FullName)
	}
}

func TestGenerateCertificateGating(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Below the lesson threshold: no certificate, no error.
	id := uuid.New()
	certs := &fakeCertRepo{}
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, func(p *types.Profile) {
		p.CompletedLessons = 4
		p.CompletedQuizzes = 3
	})), &fakeLessonRepo{}, &fakeAttemptRepo{}, certs, now)

	ok, err := svc.GenerateCertificate(ctx, id, "web-fundamentals")
	if err != nil {
		t.Fatalf("GenerateCertificate failed: %v", err)
	}
	if ok || len(certs.rows) != 0 {
		t.Fatalf("ineligible profile must not receive a certificate")
	}

	// At the thresholds the certificate is issued with the mean score.
	id2 := uuid.New()
	attempts := &fakeAttemptRepo{rows: []*types.QuizAttempt{
		{UserID: id2, QuizID: "variables-data-types", Percentage: 80},
		{UserID: id2, QuizID: "functions-scope", Percentage: 91},
	}}
	certs2 := &fakeCertRepo{}
	svc2 := newTestLearningService(newFakeProfileRepo(testProfile(id2, func(p *types.Profile) {
		p.CompletedLessons = 5
		p.CompletedQuizzes = 2
		p.TotalStudyHours = 12.5
	})), &fakeLessonRepo{}, attempts, certs2, now)

	ok, err = svc2.GenerateCertificate(ctx, id2, "web-fundamentals")
	if err != nil {
		t.Fatalf("GenerateCertificate failed: %v", err)
	}
	if !ok || len(certs2.rows) != 1 {
		t.Fatalf("eligible profile should receive a certificate")
	}
	cert := certs2.rows[0]
	if cert.FinalScore != 86 {
		t.Fatalf("got final score %d, want 86", cert.FinalScore)
	}
	if cert.Instructor != "Dr. Adebayo Ogundimu" || cert.Institution != "Lagos State University" {
		t.Fatalf("unexpected issuer fields: %q / %q", cert.Instructor, cert.Institution)
	}
	if !strings.HasPrefix(cert.CertificateNumber, "LASU-WEB-FUNDAMENTALS-") {
		t.Fatalf("unexpected certificate number %q", cert.CertificateNumber)
	}
	suffix := id2.String()[len(id2.String())-6:]
	if !strings.HasSuffix(cert.CertificateNumber, suffix) {
		t.Fatalf("certificate number %q should end with user suffix %q", cert.CertificateNumber, suffix)
	}
}

func TestRecordLessonProgressUpsertsSingleRow(t *testing.T) {
	id := uuid.New()
	lessons := &fakeLessonRepo{}
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, nil)), lessons, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())

	score := 70
	if err := svc.RecordLessonProgress(context.Background(), id, "web-fundamentals", "1", false, 10.4, &score); err != nil {
		t.Fatalf("RecordLessonProgress failed: %v", err)
	}
	if err := svc.RecordLessonProgress(context.Background(), id, "web-fundamentals", "1", true, 22.6, nil); err != nil {
		t.Fatalf("RecordLessonProgress failed: %v", err)
	}

	if len(lessons.rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(lessons.rows))
	}
	row := lessons.rows[0]
	if !row.Completed || row.CompletedAt == nil {
		t.Fatalf("second write should mark the row completed")
	}
	if row.Score != 0 {
		t.Fatalf("score should be overwritten to 0, got %d", row.Score)
	}
	if row.TimeSpent != 23 {
		t.Fatalf("got time_spent %d, want 23", row.TimeSpent)
	}
}

func TestRecordLessonProgressUnknownLesson(t *testing.T) {
	id := uuid.New()
	svc := newTestLearningService(newFakeProfileRepo(testProfile(id, nil)), &fakeLessonRepo{}, &fakeAttemptRepo{}, &fakeCertRepo{}, time.Now())

	if err := svc.RecordLessonProgress(context.Background(), id, "web-fundamentals", "no-such-lesson", true, 5, nil); err == nil {
		t.Fatalf("expected error for unknown lesson")
	}
}
