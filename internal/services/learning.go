package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/cache"
	"github.com/lasudevlab/learnhub-backend/internal/catalog"
	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/repos"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

const (
	certificateRequiredLessons = 5
	certificateRequiredQuizzes = 2

	defaultCourseTitle = "Full Stack Development"
	certInstructor     = "Dr. Adebayo Ogundimu"
	certInstitution    = "Lagos State University"

	leaderboardCacheTTL = 30 * time.Second
)

var defaultCertSkills = []string{"Web Development", "JavaScript", "Problem Solving"}

// QuizResult is what a submission hands back to the caller. Grading does not
// credit xp to the profile; that is a separate, explicit step.
type QuizResult struct {
	Success    bool `json:"success"`
	Score      int  `json:"score"`
	Percentage int  `json:"percentage"`
	XPEarned   int  `json:"xpEarned"`
}

// QuizWithProgress is a catalog quiz annotated with the requesting user's
// attempt history. The outer Locked field shadows the static catalog flag.
type QuizWithProgress struct {
	catalog.Quiz
	Attempts  int  `json:"attempts"`
	Completed bool `json:"completed"`
	Score     *int `json:"score,omitempty"`
	Locked    bool `json:"locked"`
}

type LeaderboardEntry struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"full_name"`
	Course           string    `json:"course"`
	AvatarURL        string    `json:"avatar_url"`
	XP               int       `json:"xp"`
	Level            int       `json:"level"`
	Streak           int       `json:"streak"`
	CompletedLessons int       `json:"completed_lessons"`
	CompletedQuizzes int       `json:"completed_quizzes"`
	Badges           []string  `json:"badges"`
	Rank             int       `json:"rank"`
	Initials         string    `json:"initials"`
}

type UserProgress struct {
	Lessons []*types.LessonProgress `json:"lessons"`
	Quizzes []*types.QuizAttempt    `json:"quizzes"`
}

// LearningService grades quizzes and records lesson completion against the
// compiled-in catalog, and issues certificates once the fixed thresholds are
// met.
type LearningService interface {
	GetModules() []catalog.Module
	GetModule(moduleID string) *catalog.Module
	GetLesson(moduleID, lessonID string) *catalog.Lesson
	GetQuiz(quizID string) *catalog.Quiz

	RecordLessonProgress(ctx context.Context, userID uuid.UUID, moduleID, lessonID string, completed bool, timeSpentMinutes float64, score *int) error
	SubmitQuizAttempt(ctx context.Context, userID uuid.UUID, quizID string, answers map[string]string, timeTakenMinutes int) (QuizResult, error)
	GetQuizzes(ctx context.Context, userID uuid.UUID) ([]QuizWithProgress, error)
	GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	GetUserProgress(ctx context.Context, userID uuid.UUID) (UserProgress, error)
	GenerateCertificate(ctx context.Context, userID uuid.UUID, courseID string) (bool, error)
	GetCertificates(ctx context.Context, userID uuid.UUID) ([]*types.Certificate, error)
}

type learningService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	lessonRepo  repos.LessonProgressRepo
	attemptRepo repos.QuizAttemptRepo
	certRepo    repos.CertificateRepo
	lbCache     *cache.Cache

	now func() time.Time
}

func NewLearningService(
	db *gorm.DB,
	log *logger.Logger,
	profileRepo repos.ProfileRepo,
	lessonRepo repos.LessonProgressRepo,
	attemptRepo repos.QuizAttemptRepo,
	certRepo repos.CertificateRepo,
	lbCache *cache.Cache,
) LearningService {
	return &learningService{
		db:          db,
		log:         log.With("service", "LearningService"),
		profileRepo: profileRepo,
		lessonRepo:  lessonRepo,
		attemptRepo: attemptRepo,
		certRepo:    certRepo,
		lbCache:     lbCache,
		now:         time.Now,
	}
}

func (ls *learningService) GetModules() []catalog.Module { return catalog.Modules() }

func (ls *learningService) GetModule(moduleID string) *catalog.Module {
	return catalog.ModuleByID(moduleID)
}

func (ls *learningService) GetLesson(moduleID, lessonID string) *catalog.Lesson {
	return catalog.LessonByID(moduleID, lessonID)
}

func (ls *learningService) GetQuiz(quizID string) *catalog.Quiz {
	return catalog.QuizByID(quizID)
}

// RecordLessonProgress upserts the (user, module, lesson) row. Re-completing
// a lesson overwrites the stored score and time rather than accumulating.
func (ls *learningService) RecordLessonProgress(ctx context.Context, userID uuid.UUID, moduleID, lessonID string, completed bool, timeSpentMinutes float64, score *int) error {
	lesson := catalog.LessonByID(moduleID, lessonID)
	if lesson == nil {
		return fmt.Errorf("lesson %s/%s not found", moduleID, lessonID)
	}

	sc := 0
	if score != nil {
		sc = *score
	}

	now := ls.now().UTC()
	var completedAt *time.Time
	if completed {
		completedAt = &now
	}

	row := &types.LessonProgress{
		UserID:       userID,
		ModuleID:     moduleID,
		LessonID:     lessonID,
		LessonTitle:  lesson.Title,
		Completed:    completed,
		Score:        sc,
		TimeSpent:    int(math.Round(timeSpentMinutes)),
		Attempts:     1,
		CompletedAt:  completedAt,
		LastAccessed: now,
	}

	if err := ls.lessonRepo.Upsert(ctx, nil, row); err != nil {
		ls.log.Error("Failed to record lesson progress", "user_id", userID, "module_id", moduleID, "lesson_id", lessonID, "error", err)
		return fmt.Errorf("Failed to record lesson progress: %w", err)
	}
	return nil
}

// SubmitQuizAttempt grades the answers and inserts a new immutable attempt
// row. An answer is correct when it contains the question's correct answer as
// a case-insensitive substring; the looseness is a deliberate product rule,
// so a free-text answer embedding the right keyword earns full points.
func (ls *learningService) SubmitQuizAttempt(ctx context.Context, userID uuid.UUID, quizID string, answers map[string]string, timeTakenMinutes int) (QuizResult, error) {
	quiz := catalog.QuizByID(quizID)
	if quiz == nil {
		return QuizResult{}, fmt.Errorf("quiz %s not found", quizID)
	}

	grade := gradeQuiz(quiz, answers)
	if grade.maxScore == 0 {
		return QuizResult{}, fmt.Errorf("quiz %s has no scorable questions", quizID)
	}

	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return QuizResult{}, fmt.Errorf("Failed to encode answers: %w", err)
	}

	row := &types.QuizAttempt{
		UserID:         userID,
		QuizID:         quizID,
		QuizTitle:      quiz.Title,
		Score:          grade.score,
		MaxScore:       grade.maxScore,
		Percentage:     grade.percentage,
		TimeTaken:      timeTakenMinutes,
		Answers:        datatypes.JSON(rawAnswers),
		CorrectAnswers: grade.correctCount,
		TotalQuestions: len(quiz.Questions),
		Difficulty:     quiz.Difficulty,
		XPEarned:       grade.xpEarned,
	}
	if _, err := ls.attemptRepo.Create(ctx, nil, []*types.QuizAttempt{row}); err != nil {
		ls.log.Error("Failed to record quiz attempt", "user_id", userID, "quiz_id", quizID, "error", err)
		return QuizResult{}, fmt.Errorf("Failed to record quiz attempt: %w", err)
	}

	return QuizResult{Success: true, Score: grade.score, Percentage: grade.percentage, XPEarned: grade.xpEarned}, nil
}

type quizGrade struct {
	score        int
	maxScore     int
	percentage   int
	xpEarned     int
	correctCount int
}

// gradeQuiz applies the containment rule question by question and derives the
// rounded percentage, xp and question-count equivalents from the point totals.
func gradeQuiz(quiz *catalog.Quiz, answers map[string]string) quizGrade {
	g := quizGrade{}
	for _, q := range quiz.Questions {
		g.maxScore += q.Points
		answer := answers[q.ID]
		// Blank answers never score, even against an empty correct-answer
		// string that containment would trivially match.
		if answer != "" && strings.Contains(strings.ToLower(answer), strings.ToLower(q.CorrectAnswer)) {
			g.score += q.Points
		}
	}
	if g.maxScore == 0 {
		return g
	}
	g.percentage = int(math.Round(float64(g.score) / float64(g.maxScore) * 100))
	g.xpEarned = int(math.Round(float64(g.percentage) / 100 * float64(quiz.XPReward)))
	g.correctCount = int(math.Round(float64(g.score) / float64(g.maxScore) * float64(len(quiz.Questions))))
	return g
}

// GetQuizzes joins the catalog with the user's attempt history. A quiz whose
// static Locked flag is set stays locked no matter what; Intermediate quizzes
// additionally require at least two completed lessons to unlock.
func (ls *learningService) GetQuizzes(ctx context.Context, userID uuid.UUID) ([]QuizWithProgress, error) {
	quizzes := catalog.Quizzes()
	out := make([]QuizWithProgress, 0, len(quizzes))

	if userID == uuid.Nil {
		for _, q := range quizzes {
			out = append(out, QuizWithProgress{Quiz: q, Locked: q.Locked})
		}
		return out, nil
	}

	var (
		attempts []*types.QuizAttempt
		profile  *types.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attempts, err = ls.attemptRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = ls.profileRepo.GetByID(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		ls.log.Error("Failed to fetch quiz progress", "user_id", userID, "error", err)
		return nil, fmt.Errorf("Failed to fetch quiz progress: %w", err)
	}

	completedLessons := 0
	if profile != nil {
		completedLessons = profile.CompletedLessons
	}

	byQuiz := make(map[string][]*types.QuizAttempt, len(attempts))
	for _, a := range attempts {
		byQuiz[a.QuizID] = append(byQuiz[a.QuizID], a)
	}

	for _, q := range quizzes {
		userAttempts := byQuiz[q.ID]

		var best *types.QuizAttempt
		for _, a := range userAttempts {
			if best == nil || a.Percentage > best.Percentage {
				best = a
			}
		}

		entry := QuizWithProgress{
			Quiz:      q,
			Attempts:  len(userAttempts),
			Completed: len(userAttempts) > 0,
			Locked:    q.Locked || (q.Difficulty == catalog.DifficultyIntermediate && completedLessons < 2),
		}
		if best != nil {
			pct := best.Percentage
			entry.Score = &pct
		}
		out = append(out, entry)
	}
	return out, nil
}

// GetLeaderboard orders by xp, level and completed lessons (all descending),
// annotates 1-based ranks and initials, and serves from the redis cache when
// a fresh copy exists. Cache failures only cost the round trip.
func (ls *learningService) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	key := fmt.Sprintf("leaderboard:%d", limit)
	if raw, ok := ls.lbCache.Get(ctx, key); ok {
		var cached []LeaderboardEntry
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	profiles, err := ls.profileRepo.ListRanked(ctx, nil, limit)
	if err != nil {
		ls.log.Error("Failed to fetch leaderboard", "error", err)
		return nil, fmt.Errorf("Failed to fetch leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, LeaderboardEntry{
			ID:               p.ID,
			FullName:         p.FullName,
			Course:           p.Course,
			AvatarURL:        p.AvatarURL,
			XP:               p.XP,
			Level:            p.Level,
			Streak:           p.Streak,
			CompletedLessons: p.CompletedLessons,
			CompletedQuizzes: p.CompletedQuizzes,
			Badges:           p.BadgeList(),
			Rank:             i + 1,
			Initials:         initialsFor(p.FullName),
		})
	}

	if raw, err := json.Marshal(entries); err == nil {
		ls.lbCache.Set(ctx, key, raw, leaderboardCacheTTL)
	}
	return entries, nil
}

func (ls *learningService) GetUserProgress(ctx context.Context, userID uuid.UUID) (UserProgress, error) {
	lessons, err := ls.lessonRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return UserProgress{}, fmt.Errorf("Failed to fetch lesson progress: %w", err)
	}
	attempts, err := ls.attemptRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return UserProgress{}, fmt.Errorf("Failed to fetch quiz attempts: %w", err)
	}
	return UserProgress{Lessons: lessons, Quizzes: attempts}, nil
}

// GenerateCertificate checks the fixed eligibility thresholds and inserts one
// immutable certificate row. (false, nil) means the student is not yet
// eligible; no row is created.
func (ls *learningService) GenerateCertificate(ctx context.Context, userID uuid.UUID, courseID string) (bool, error) {
	profile, err := ls.profileRepo.GetByID(ctx, nil, userID)
	if err != nil {
		ls.log.Error("Failed to load profile for certificate", "user_id", userID, "error", err)
		return false, fmt.Errorf("Failed to load profile: %w", err)
	}
	if profile == nil {
		return false, fmt.Errorf("profile %s not found", userID)
	}

	if profile.CompletedLessons < certificateRequiredLessons || profile.CompletedQuizzes < certificateRequiredQuizzes {
		return false, nil
	}

	attempts, err := ls.attemptRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return false, fmt.Errorf("Failed to fetch quiz attempts: %w", err)
	}
	finalScore := 0
	if len(attempts) > 0 {
		sum := 0
		for _, a := range attempts {
			sum += a.Percentage
		}
		finalScore = int(math.Round(float64(sum) / float64(len(attempts))))
	}

	courseTitle := defaultCourseTitle
	skills := defaultCertSkills
	if mod := catalog.ModuleByID(courseID); mod != nil {
		courseTitle = mod.Title
		skills = mod.Skills
	}
	rawSkills, err := json.Marshal(skills)
	if err != nil {
		return false, fmt.Errorf("Failed to encode skills: %w", err)
	}

	now := ls.now().UTC()
	row := &types.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CourseTitle:       courseTitle,
		CertificateNumber: certificateNumber(courseID, userID, now),
		FinalScore:        finalScore,
		TotalLessons:      profile.CompletedLessons,
		TotalQuizzes:      profile.CompletedQuizzes,
		StudyHours:        profile.TotalStudyHours,
		Skills:            datatypes.JSON(rawSkills),
		Instructor:        certInstructor,
		Institution:       certInstitution,
		IssuedAt:          now,
	}
	if _, err := ls.certRepo.Create(ctx, nil, []*types.Certificate{row}); err != nil {
		ls.log.Error("Failed to insert certificate", "user_id", userID, "course_id", courseID, "error", err)
		return false, fmt.Errorf("Failed to insert certificate: %w", err)
	}
	return true, nil
}

func (ls *learningService) GetCertificates(ctx context.Context, userID uuid.UUID) ([]*types.Certificate, error) {
	return ls.certRepo.GetByUserID(ctx, nil, userID)
}

// certificateNumber combines course, issue time and a user-id suffix, e.g.
// LASU-WEB-FUNDAMENTALS-1735689600000-1a2b3c.
func certificateNumber(courseID string, userID uuid.UUID, issuedAt time.Time) string {
	uid := userID.String()
	suffix := uid
	if len(uid) > 6 {
		suffix = uid[len(uid)-6:]
	}
	return fmt.Sprintf("LASU-%s-%d-%s", strings.ToUpper(courseID), issuedAt.UnixMilli(), suffix)
}

// initialsFor takes the first letter of each whitespace-separated name token,
// or "U" when the name is empty.
func initialsFor(fullName string) string {
	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return "U"
	}
	var b strings.Builder
	for _, tok := range tokens {
		r := []rune(tok)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
