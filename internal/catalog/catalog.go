// Package catalog holds the compiled-in course content: modules, lessons and
// quizzes. The dataset is immutable and versioned with the binary; nothing in
// here is ever persisted.
package catalog

type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	XPReward    int      `json:"xpReward"`
	Skills      []string `json:"skills"`
	Projects    []string `json:"projects"`
	Lessons     []Lesson `json:"lessons"`
}

type Lesson struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Content        string `json:"content"`
	CodeExample    string `json:"codeExample,omitempty"`
	Challenge      string `json:"challenge,omitempty"`
	StarterCode    string `json:"starterCode,omitempty"`
	ExpectedOutput string `json:"expectedOutput,omitempty"`
	Tips           string `json:"tips,omitempty"`
	Type           string `json:"type"`
	XPReward       int    `json:"xpReward"`
	EstimatedTime  int    `json:"estimatedTime"`
}

type Quiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Difficulty  string         `json:"difficulty"`
	Questions   []QuizQuestion `json:"questions"`
	TimeLimit   int            `json:"timeLimit"`
	XPReward    int            `json:"xpReward"`
	Category    string         `json:"category"`
	Type        string         `json:"type"`
	Locked      bool           `json:"locked,omitempty"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Code          string   `json:"code,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
}

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

func Modules() []Module {
	return modules
}

func ModuleByID(moduleID string) *Module {
	for i := range modules {
		if modules[i].ID == moduleID {
			return &modules[i]
		}
	}
	return nil
}

func LessonByID(moduleID, lessonID string) *Lesson {
	mod := ModuleByID(moduleID)
	if mod == nil {
		return nil
	}
	for i := range mod.Lessons {
		if mod.Lessons[i].ID == lessonID {
			return &mod.Lessons[i]
		}
	}
	return nil
}

func Quizzes() []Quiz {
	return quizzes
}

func QuizByID(quizID string) *Quiz {
	for i := range quizzes {
		if quizzes[i].ID == quizID {
			return &quizzes[i]
		}
	}
	return nil
}
