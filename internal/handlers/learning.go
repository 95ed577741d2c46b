package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/services"
)

const (
	badgeFirstLesson  = "First Lesson"
	badgeSpeedDemon   = "Speed Demon"
	badgePerfectScore = "Perfect Score"
	badgeQuizMaster   = "Quiz Master"
)

type LearningHandler struct {
	log             *logger.Logger
	learningService services.LearningService
	profileService  services.ProfileService
}

func NewLearningHandler(log *logger.Logger, learningService services.LearningService, profileService services.ProfileService) *LearningHandler {
	return &LearningHandler{
		log:             log.With("handler", "LearningHandler"),
		learningService: learningService,
		profileService:  profileService,
	}
}

func (lh *LearningHandler) GetModules(c *gin.Context) {
	RespondOK(c, lh.learningService.GetModules())
}

func (lh *LearningHandler) GetModule(c *gin.Context) {
	mod := lh.learningService.GetModule(c.Param("id"))
	if mod == nil {
		RespondError(c, http.StatusNotFound, "module_not_found", fmt.Errorf("module not found"))
		return
	}
	RespondOK(c, mod)
}

func (lh *LearningHandler) GetLesson(c *gin.Context) {
	lesson := lh.learningService.GetLesson(c.Param("id"), c.Param("lessonId"))
	if lesson == nil {
		RespondError(c, http.StatusNotFound, "lesson_not_found", fmt.Errorf("lesson not found"))
		return
	}
	RespondOK(c, lesson)
}

// CompleteLesson runs the full completion flow: record the progress row, then
// credit xp, recount completed lessons, add study hours, award the First
// Lesson and Speed Demon badges where earned, and touch the streak. Progress
// recording must succeed; the award steps are individually best-effort so a
// failed badge never loses the completion itself.
func (lh *LearningHandler) CompleteLesson(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	moduleID := c.Param("id")
	lessonID := c.Param("lessonId")

	var req struct {
		TimeSpentMinutes float64 `json:"time_spent_minutes"`
		Score            *int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	lesson := lh.learningService.GetLesson(moduleID, lessonID)
	if lesson == nil {
		RespondError(c, http.StatusNotFound, "lesson_not_found", fmt.Errorf("lesson not found"))
		return
	}

	ctx := c.Request.Context()

	alreadyCompleted := false
	if rows, err := lh.profileService.GetLessonProgress(ctx, userID); err == nil {
		for _, row := range rows {
			if row.ModuleID == moduleID && row.LessonID == lessonID && row.Completed {
				alreadyCompleted = true
				break
			}
		}
	}

	if err := lh.learningService.RecordLessonProgress(ctx, userID, moduleID, lessonID, true, req.TimeSpentMinutes, req.Score); err != nil {
		RespondError(c, http.StatusInternalServerError, "lesson_complete_failed", fmt.Errorf("something went wrong"))
		return
	}

	if err := lh.profileService.AwardXP(ctx, userID, lesson.XPReward); err != nil {
		lh.log.Warn("Failed to award lesson xp", "user_id", userID, "lesson_id", lessonID, "error", err)
	}

	completedCount := 0
	totalMinutes := 0
	if rows, err := lh.profileService.GetLessonProgress(ctx, userID); err == nil {
		for _, row := range rows {
			if row.Completed {
				completedCount++
			}
			totalMinutes += row.TimeSpent
		}
		if err := lh.profileService.UpdateProfile(ctx, userID, map[string]interface{}{
			"completed_lessons": completedCount,
			"total_study_hours": float64(totalMinutes) / 60,
		}); err != nil {
			lh.log.Warn("Failed to update lesson totals", "user_id", userID, "error", err)
		}
	}

	if !alreadyCompleted && completedCount == 1 {
		if err := lh.profileService.AwardBadge(ctx, userID, badgeFirstLesson); err != nil {
			lh.log.Warn("Failed to award badge", "badge", badgeFirstLesson, "error", err)
		}
	}
	if lesson.EstimatedTime > 0 && req.TimeSpentMinutes <= float64(lesson.EstimatedTime)/2 {
		if err := lh.profileService.AwardBadge(ctx, userID, badgeSpeedDemon); err != nil {
			lh.log.Warn("Failed to award badge", "badge", badgeSpeedDemon, "error", err)
		}
	}

	if err := lh.profileService.UpdateStreak(ctx, userID); err != nil {
		lh.log.Warn("Failed to update streak", "user_id", userID, "error", err)
	}

	RespondOK(c, gin.H{"success": true, "xp_earned": lesson.XPReward})
}

func (lh *LearningHandler) GetQuizzes(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	quizzes, err := lh.learningService.GetQuizzes(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "quizzes_fetch_failed", fmt.Errorf("something went wrong"))
		return
	}
	RespondOK(c, quizzes)
}

func (lh *LearningHandler) GetQuiz(c *gin.Context) {
	quiz := lh.learningService.GetQuiz(c.Param("id"))
	if quiz == nil {
		RespondError(c, http.StatusNotFound, "quiz_not_found", fmt.Errorf("quiz not found"))
		return
	}
	RespondOK(c, quiz)
}

// SubmitQuiz grades the attempt, then credits the earned xp, recounts the
// distinct quizzes attempted, awards Perfect Score / Quiz Master where the
// percentage qualifies, and touches the streak.
func (lh *LearningHandler) SubmitQuiz(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	quizID := c.Param("id")

	var req struct {
		Answers          map[string]string `json:"answers"`
		TimeTakenMinutes int               `json:"time_taken_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	ctx := c.Request.Context()
	result, err := lh.learningService.SubmitQuizAttempt(ctx, userID, quizID, req.Answers, req.TimeTakenMinutes)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "quiz_submit_failed", fmt.Errorf("something went wrong"))
		return
	}

	if result.XPEarned > 0 {
		if xErr := lh.profileService.AwardXP(ctx, userID, result.XPEarned); xErr != nil {
			lh.log.Warn("Failed to award quiz xp", "user_id", userID, "quiz_id", quizID, "error", xErr)
		}
	}

	if attempts, aErr := lh.profileService.GetQuizAttempts(ctx, userID); aErr == nil {
		distinct := map[string]struct{}{}
		for _, a := range attempts {
			distinct[a.QuizID] = struct{}{}
		}
		if uErr := lh.profileService.UpdateProfile(ctx, userID, map[string]interface{}{
			"completed_quizzes": len(distinct),
		}); uErr != nil {
			lh.log.Warn("Failed to update quiz totals", "user_id", userID, "error", uErr)
		}
	}

	if result.Percentage == 100 {
		if bErr := lh.profileService.AwardBadge(ctx, userID, badgePerfectScore); bErr != nil {
			lh.log.Warn("Failed to award badge", "badge", badgePerfectScore, "error", bErr)
		}
	}
	if result.Percentage >= 80 {
		if bErr := lh.profileService.AwardBadge(ctx, userID, badgeQuizMaster); bErr != nil {
			lh.log.Warn("Failed to award badge", "badge", badgeQuizMaster, "error", bErr)
		}
	}

	if sErr := lh.profileService.UpdateStreak(ctx, userID); sErr != nil {
		lh.log.Warn("Failed to update streak", "user_id", userID, "error", sErr)
	}

	RespondOK(c, result)
}

func (lh *LearningHandler) GetLeaderboard(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	entries, err := lh.learningService.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "leaderboard_fetch_failed", fmt.Errorf("something went wrong"))
		return
	}
	RespondOK(c, entries)
}

func (lh *LearningHandler) GetProgress(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	progress, err := lh.learningService.GetUserProgress(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "progress_fetch_failed", fmt.Errorf("something went wrong"))
		return
	}
	RespondOK(c, progress)
}

func (lh *LearningHandler) GetCertificates(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	certs, err := lh.learningService.GetCertificates(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "certificates_fetch_failed", fmt.Errorf("something went wrong"))
		return
	}
	RespondOK(c, certs)
}

func (lh *LearningHandler) GenerateCertificate(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	courseID := c.Param("courseId")

	eligible, err := lh.learningService.GenerateCertificate(c.Request.Context(), userID, courseID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "certificate_failed", fmt.Errorf("something went wrong"))
		return
	}
	if !eligible {
		RespondError(c, http.StatusUnprocessableEntity, "requirements_not_met", fmt.Errorf("requirements not met"))
		return
	}
	RespondOK(c, gin.H{"success": true})
}
