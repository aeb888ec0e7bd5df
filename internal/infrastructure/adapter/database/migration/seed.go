package migration

import (
	"encoding/json"
	"fmt"

	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// defaultBadges is the initial badge catalog: five purchasable tiers,
// login and per-category quiz streak badges, and the perfect-score ladder
var defaultBadges = []model.Badge{
	{ID: "badge-1", Name: "Bronze Collector", Description: "A shiny bronze badge for dedicated learners", Price: 1000, Icon: "award", Color: "amber"},
	{ID: "badge-2", Name: "Silver Scholar", Description: "A prestigious silver badge for committed students", Price: 2000, Icon: "star", Color: "gray"},
	{ID: "badge-3", Name: "Gold Master", Description: "An exclusive gold badge for top performers", Price: 5000, Icon: "crown", Color: "yellow"},
	{ID: "badge-4", Name: "Platinum Elite", Description: "The ultimate platinum badge for VitaCoin legends", Price: 10000, Icon: "trophy", Color: "blue"},
	{ID: "badge-5", Name: "Diamond Champion", Description: "The rarest diamond badge for true champions", Price: 20000, Icon: "zap", Color: "purple"},

	{ID: "badge-6", Name: "Early Bird", Description: "Login for 1 consecutive day", RequirementType: "streak", RequirementCategory: "login", RequirementValue: 1, Icon: "target", Color: "green"},
	{ID: "badge-7", Name: "Consistent Learner", Description: "Login for 7 consecutive days", RequirementType: "streak", RequirementCategory: "login", RequirementValue: 7, Icon: "target", Color: "blue"},
	{ID: "badge-8", Name: "Dedicated Student", Description: "Login for 30 consecutive days", RequirementType: "streak", RequirementCategory: "login", RequirementValue: 30, Icon: "target", Color: "purple"},
	{ID: "badge-9", Name: "Login Legend", Description: "Login for 100 consecutive days", RequirementType: "streak", RequirementCategory: "login", RequirementValue: 100, Icon: "crown", Color: "yellow"},

	{ID: "badge-10", Name: "Math Enthusiast", Description: "Complete math quizzes for 7 consecutive days", RequirementType: "streak", RequirementCategory: "math", RequirementValue: 7, Icon: "zap", Color: "blue"},
	{ID: "badge-11", Name: "Logic Master", Description: "Complete aptitude quizzes for 7 consecutive days", RequirementType: "streak", RequirementCategory: "aptitude", RequirementValue: 7, Icon: "zap", Color: "purple"},
	{ID: "badge-12", Name: "Grammar Guru", Description: "Complete grammar quizzes for 7 consecutive days", RequirementType: "streak", RequirementCategory: "grammar", RequirementValue: 7, Icon: "zap", Color: "green"},
	{ID: "badge-13", Name: "Code Warrior", Description: "Complete programming quizzes for 7 consecutive days", RequirementType: "streak", RequirementCategory: "programming", RequirementValue: 7, Icon: "zap", Color: "orange"},

	{ID: "badge-14", Name: "Perfect Day", Description: "Score 100% on all quiz categories in one day", RequirementType: "perfect", RequirementCategory: "daily", RequirementValue: 1, Icon: "star", Color: "yellow"},
	{ID: "badge-15", Name: "Perfect Week", Description: "Score 100% on all quizzes for 7 consecutive days", RequirementType: "perfect", RequirementCategory: "weekly", RequirementValue: 7, Icon: "crown", Color: "purple"},
	{ID: "badge-16", Name: "Perfect Month", Description: "Score 100% on all quizzes for 30 consecutive days", RequirementType: "perfect", RequirementCategory: "monthly", RequirementValue: 30, Icon: "trophy", Color: "gold"},
}

type seedQuestion struct {
	id           string
	category     string
	prompt       string
	options      []string
	correctIndex int
	difficulty   string
}

var defaultQuestions = []seedQuestion{
	{"math-01", "math", "What is 15% of 200?", []string{"25", "30", "35", "40"}, 1, "easy"},
	{"math-02", "math", "If x + 5 = 12, what is the value of x?", []string{"5", "6", "7", "8"}, 2, "easy"},
	{"math-03", "math", "What is the area of a circle with radius 4?", []string{"12π", "16π", "8π", "4π"}, 1, "medium"},
	{"math-04", "math", "Solve: 2x² - 8 = 0", []string{"x = ±2", "x = ±4", "x = ±1", "x = ±3"}, 0, "medium"},
	{"math-05", "math", "What is the derivative of x³?", []string{"x²", "2x²", "3x²", "4x²"}, 2, "hard"},

	{"aptitude-01", "aptitude", "If BOOK is coded as CPPL, how is WORD coded?", []string{"XPSE", "XQSE", "YPSE", "XPSD"}, 0, "medium"},
	{"aptitude-02", "aptitude", "Complete the series: 2, 6, 12, 20, ?", []string{"28", "30", "32", "34"}, 1, "medium"},
	{"aptitude-03", "aptitude", "A train travels 60 km in 45 minutes. What is its speed in km/h?", []string{"75", "80", "85", "90"}, 1, "easy"},
	{"aptitude-04", "aptitude", "If all roses are flowers and some flowers are red, which conclusion is correct?", []string{"All roses are red", "Some roses are red", "No roses are red", "Cannot be determined"}, 3, "hard"},
	{"aptitude-05", "aptitude", "What comes next in the pattern: A1, C3, E5, G7, ?", []string{"H8", "I9", "J10", "K11"}, 1, "medium"},

	{"grammar-01", "grammar", "Choose the correct sentence:", []string{"Neither John nor his friends was present.", "Neither John nor his friends were present.", "Neither John or his friends were present.", "Neither John and his friends were present."}, 1, "medium"},
	{"grammar-02", "grammar", "What is the past participle of \"swim\"?", []string{"swam", "swum", "swimmed", "swimming"}, 1, "easy"},
	{"grammar-03", "grammar", "Identify the type of sentence: \"What a beautiful day!\"", []string{"Declarative", "Interrogative", "Imperative", "Exclamatory"}, 3, "easy"},
	{"grammar-04", "grammar", "Choose the correct form: \"I wish I _____ taller.\"", []string{"am", "was", "were", "will be"}, 2, "medium"},
	{"grammar-05", "grammar", "Which sentence uses the subjunctive mood correctly?", []string{"If I was rich, I would travel.", "If I were rich, I would travel.", "If I am rich, I would travel.", "If I will be rich, I would travel."}, 1, "hard"},

	{"programming-01", "programming", "What does \"HTML\" stand for?", []string{"Hypertext Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"}, 0, "easy"},
	{"programming-02", "programming", "Which of these is NOT a JavaScript data type?", []string{"string", "boolean", "integer", "undefined"}, 2, "easy"},
	{"programming-03", "programming", "What is the time complexity of binary search?", []string{"O(n)", "O(log n)", "O(n²)", "O(1)"}, 1, "medium"},
	{"programming-04", "programming", "In Python, what does the \"yield\" keyword do?", []string{"Returns a value and exits the function", "Creates a generator function", "Raises an exception", "Imports a module"}, 1, "hard"},
	{"programming-05", "programming", "Which SQL command is used to retrieve data from a database?", []string{"GET", "FETCH", "SELECT", "RETRIEVE"}, 2, "easy"},
}

// SeedBadges inserts the default badge catalog. Existing rows are left
// untouched so operators can tweak prices without the seed reverting them.
func SeedBadges(db *gorm.DB, logger coreport.Logger) error {
	var count int64
	if err := db.Model(&model.Badge{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count badges: %w", err)
	}
	if count > 0 {
		logger.Debug("Badge catalog already seeded", map[string]any{"badges": count})
		return nil
	}

	if err := db.Create(&defaultBadges).Error; err != nil {
		logger.Error("Failed to seed badge catalog", map[string]any{"error": err.Error()})
		return err
	}
	logger.Info("Seeded badge catalog", map[string]any{"badges": len(defaultBadges)})
	return nil
}

// SeedQuestions inserts the default quiz question catalog
func SeedQuestions(db *gorm.DB, logger coreport.Logger) error {
	var count int64
	if err := db.Model(&model.QuizQuestion{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count quiz questions: %w", err)
	}
	if count > 0 {
		logger.Debug("Question catalog already seeded", map[string]any{"questions": count})
		return nil
	}

	rows := make([]model.QuizQuestion, 0, len(defaultQuestions))
	for _, q := range defaultQuestions {
		options, err := json.Marshal(q.options)
		if err != nil {
			return fmt.Errorf("failed to serialize options for %s: %w", q.id, err)
		}
		rows = append(rows, model.QuizQuestion{
			ID:           q.id,
			Category:     q.category,
			Prompt:       q.prompt,
			Options:      string(options),
			CorrectIndex: q.correctIndex,
			Difficulty:   q.difficulty,
			Points:       5,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		logger.Error("Failed to seed question catalog", map[string]any{"error": err.Error()})
		return err
	}
	logger.Info("Seeded question catalog", map[string]any{"questions": len(rows)})
	return nil
}
