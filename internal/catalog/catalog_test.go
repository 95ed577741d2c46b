package catalog

import "testing"

func TestModuleAccessors(t *testing.T) {
	mods := Modules()
	if len(mods) == 0 {
		t.Fatalf("catalog has no modules")
	}

	mod := ModuleByID("web-fundamentals")
	if mod == nil {
		t.Fatalf("web-fundamentals module missing")
	}
	if len(mod.Lessons) == 0 {
		t.Fatalf("web-fundamentals has no lessons")
	}

	if ModuleByID("nope") != nil {
		t.Fatalf("unknown module should be nil")
	}
}

func TestLessonByID(t *testing.T) {
	lesson := LessonByID("web-fundamentals", "1")
	if lesson == nil {
		t.Fatalf("lesson 1 missing")
	}
	if lesson.XPReward <= 0 {
		t.Fatalf("lesson should carry an xp reward")
	}

	if LessonByID("web-fundamentals", "999") != nil {
		t.Fatalf("unknown lesson should be nil")
	}
	if LessonByID("nope", "1") != nil {
		t.Fatalf("lesson of unknown module should be nil")
	}
}

func TestQuizAccessors(t *testing.T) {
	if len(Quizzes()) == 0 {
		t.Fatalf("catalog has no quizzes")
	}

	quiz := QuizByID("variables-data-types")
	if quiz == nil {
		t.Fatalf("variables-data-types quiz missing")
	}
	total := 0
	for _, q := range quiz.Questions {
		if q.CorrectAnswer == "" {
			t.Fatalf("question %s has no correct answer", q.ID)
		}
		total += q.Points
	}
	if total == 0 {
		t.Fatalf("quiz has no scorable points")
	}

	if QuizByID("nope") != nil {
		t.Fatalf("unknown quiz should be nil")
	}
}

func TestEveryQuizHasQuestionsOrIsLocked(t *testing.T) {
	for _, q := range Quizzes() {
		if len(q.Questions) == 0 && !q.Locked {
			t.Fatalf("quiz %s is playable but has no questions", q.ID)
		}
	}
}
