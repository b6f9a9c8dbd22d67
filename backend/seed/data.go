package seed

import (
	"encoding/json"
	"samvidhan-sarathi/backend/models"
)

var seedTopics = []models.Topic{
	{
		CustomID:    "l0-1",
		Title:       "Preamble",
		Description: "Introduction to the Constitution, its purpose, and ideals including sovereignty, socialism, secularism, democracy, justice, liberty, equality, and fraternity.",
		Category:    "other",
		Difficulty:  "beginner",
		Country:     "India",
		Order:       1,
		IsActive:    true,
	},
	{
		CustomID:    "l0-2",
		Title:       "History of Constitution",
		Description: "Timeline of formation, Constituent Assembly, and the drafting process of the Indian Constitution.",
		Category:    "other",
		Difficulty:  "beginner",
		Country:     "India",
		Order:       2,
		IsActive:    true,
	},
	{
		CustomID:    "l1-1",
		Title:       "Part I: Union and its Territory",
		Description: "Articles 1-4: Name and territory of the Union, admission of new states, formation of new states, and alteration of boundaries.",
		Category:    "other",
		Difficulty:  "beginner",
		Country:     "India",
		Order:       3,
		IsActive:    true,
	},
	{
		CustomID:    "l1-2",
		Title:       "Part III: Fundamental Rights",
		Description: "Articles 12-35: Six fundamental rights including Right to Equality, Right to Freedom, Right against Exploitation, and more.",
		Category:    "fundamental-rights",
		Difficulty:  "beginner",
		Country:     "India",
		Order:       4,
		IsActive:    true,
	},
	{
		CustomID:    "l1-3",
		Title:       "Part IV: Directive Principles",
		Description: "Articles 36-51: Guidelines provided to the government to ensure social and economic democracy through welfare approach.",
		Category:    "directive-principles",
		Difficulty:  "intermediate",
		Country:     "India",
		Order:       5,
		IsActive:    true,
	},
	{
		CustomID:    "l1-4",
		Title:       "Part V: Union Government",
		Description: "Articles 52-151: Structure and functioning of the President, Vice-President, Prime Minister, and Parliament.",
		Category:    "executive",
		Difficulty:  "intermediate",
		Country:     "India",
		Order:       6,
		IsActive:    true,
	},
	{
		CustomID:    "l1-5",
		Title:       "The Judiciary",
		Description: "Structure of the Supreme Court and High Courts, judicial review, and writ jurisdiction.",
		Category:    "judiciary",
		Difficulty:  "intermediate",
		Country:     "India",
		Order:       7,
		IsActive:    true,
	},
	{
		CustomID:    "l1-6",
		Title:       "Constitutional Amendments",
		Description: "Article 368 and the amendment procedure, with landmark amendments and the basic structure doctrine.",
		Category:    "amendments",
		Difficulty:  "advanced",
		Country:     "India",
		Order:       8,
		IsActive:    true,
	},
}

type seedQuestion struct {
	text    string
	options []models.QuestionOption
}

type seedContentItem struct {
	topicCustomID string
	content       models.Content
	questions     []seedQuestion
}

func mustGameConfig(gameType string, config interface{}) string {
	raw, err := json.Marshal(config)
	if err != nil {
		panic(err)
	}
	full, err := json.Marshal(models.GameConfig{Type: gameType, Config: raw})
	if err != nil {
		panic(err)
	}
	return string(full)
}

func seedContent() []seedContentItem {
	return []seedContentItem{
		{
			topicCustomID: "l1-2",
			content: models.Content{
				Title:         "Fundamental Rights Quiz",
				Type:          models.ContentTypeQuiz,
				Body:          "Test your knowledge of the six fundamental rights guaranteed by Part III of the Constitution.",
				EstimatedTime: 10,
				Points:        50,
				Order:         1,
				IsActive:      true,
			},
			questions: []seedQuestion{
				{
					text: "Which article abolishes untouchability?",
					options: []models.QuestionOption{
						{Text: "Article 14", IsCorrect: false},
						{Text: "Article 15", IsCorrect: false},
						{Text: "Article 17", IsCorrect: true},
						{Text: "Article 19", IsCorrect: false},
					},
				},
				{
					text: "Which article is known as the 'Heart and Soul' of the Constitution?",
					options: []models.QuestionOption{
						{Text: "Article 30", IsCorrect: false},
						{Text: "Article 31", IsCorrect: false},
						{Text: "Article 32", IsCorrect: true},
						{Text: "Article 33", IsCorrect: false},
					},
				},
				{
					text: "Which articles cover the Right to Freedom of Religion?",
					options: []models.QuestionOption{
						{Text: "Articles 19-22", IsCorrect: false},
						{Text: "Articles 23-24", IsCorrect: false},
						{Text: "Articles 25-28", IsCorrect: true},
						{Text: "Articles 29-30", IsCorrect: false},
					},
				},
			},
		},
		{
			topicCustomID: "l0-1",
			content: models.Content{
				Title:         "Understanding the Preamble",
				Type:          models.ContentTypeLesson,
				Body:          "The Preamble declares India a sovereign, socialist, secular, democratic republic and sets out justice, liberty, equality and fraternity as its guiding ideals.",
				EstimatedTime: 8,
				Points:        20,
				Order:         1,
				IsActive:      true,
			},
		},
		{
			topicCustomID: "l1-2",
			content: models.Content{
				Title:         "Constitutional Matching Game",
				Type:          models.ContentTypeGame,
				Body:          "Match each constitutional term with its correct definition. Test your knowledge of key constitutional concepts.",
				EstimatedTime: 10,
				Points:        50,
				Order:         2,
				IsActive:      true,
				GameConfig: mustGameConfig(models.GameTypeMatching, models.MatchingConfig{
					Pairs: []models.MatchingPair{
						{Term: "Article 14", Definition: "Right to Equality - Equality before law and equal protection of laws"},
						{Term: "Article 19", Definition: "Right to Freedom - Speech, expression, assembly, association, movement, residence, and profession"},
						{Term: "Article 21", Definition: "Right to Life and Personal Liberty - No person shall be deprived of his life or personal liberty except according to procedure established by law"},
						{Term: "Article 32", Definition: "Right to Constitutional Remedies - Empowers citizens to approach the Supreme Court directly for enforcement of fundamental rights"},
						{Term: "Article 368", Definition: "Power of Parliament to amend the Constitution and procedure thereof"},
					},
				}),
			},
		},
		{
			topicCustomID: "l0-2",
			content: models.Content{
				Title:         "Constitutional Timeline",
				Type:          models.ContentTypeGame,
				Body:          "Arrange key events in the history of the Indian Constitution in chronological order.",
				EstimatedTime: 8,
				Points:        40,
				Order:         1,
				IsActive:      true,
				GameConfig: mustGameConfig(models.GameTypeTimeline, models.TimelineConfig{
					Events: []models.TimelineEvent{
						{Year: 1946, Event: "Formation of Constituent Assembly", Details: "The Constituent Assembly was formed to draft a constitution for India"},
						{Year: 1947, Event: "Independence of India", Details: "India gained independence from British rule on August 15"},
						{Year: 1949, Event: "Constitution Adoption", Details: "The Constitution of India was adopted by the Constituent Assembly on November 26"},
						{Year: 1950, Event: "Constitution Implementation", Details: "The Constitution of India came into effect on January 26, celebrated as Republic Day"},
						{Year: 1976, Event: "42nd Amendment", Details: "Added the words 'secular' and 'socialist' to the Preamble"},
					},
				}),
			},
		},
		{
			topicCustomID: "l0-1",
			content: models.Content{
				Title:         "Constitution Structure Spiral",
				Type:          models.ContentTypeGame,
				Body:          "Explore the structure of the Constitution through this interactive spiral visualization.",
				EstimatedTime: 5,
				Points:        30,
				Order:         2,
				IsActive:      true,
				GameConfig: mustGameConfig(models.GameTypeSpiral, models.SpiralConfig{
					CenterTitle: "Indian Constitution",
					Levels: []models.SpiralLevel{
						{Title: "Level 0: Introduction", Items: []string{"Preamble", "History", "Features"}, Color: "#3498db"},
						{Title: "Level 1: Basic Structure", Items: []string{"Parts I-VIII", "Parts IX-XV", "Parts XVI-XXII"}, Color: "#2ecc71"},
						{Title: "Level 2: Schedules", Items: []string{"Schedules 1-4", "Schedules 5-8", "Schedules 9-12"}, Color: "#9b59b6"},
						{Title: "Level 3: Amendments", Items: []string{"1st-42nd", "43rd-86th", "87th-105th"}, Color: "#f39c12"},
					},
				}),
			},
		},
		{
			topicCustomID: "l1-2",
			content: models.Content{
				Title:         "Constitutional Rights Scenarios",
				Type:          models.ContentTypeGame,
				Body:          "Apply your understanding of constitutional rights to real-world scenarios. Analyze situations and determine how constitutional principles would be applied.",
				EstimatedTime: 15,
				Points:        60,
				Order:         3,
				IsActive:      true,
				GameConfig: mustGameConfig(models.GameTypeScenario, models.ScenarioConfig{
					Scenarios: []models.Scenario{
						{
							Situation: "A political leader makes a speech that contains derogatory remarks against a particular religious community, claiming it's protected as free speech under Article 19(1)(a).",
							Question:  "How would a court likely rule on this constitutional question?",
							Hint:      "Consider the balance between free speech rights and reasonable restrictions under Article 19(2).",
							Options: []models.ScenarioOption{
								{Text: "The speech is fully protected as free speech", IsCorrect: false, Feedback: "Incorrect. Freedom of speech under Article 19(1)(a) is subject to reasonable restrictions under Article 19(2), including public order, decency, and morality."},
								{Text: "Hate speech inciting violence or discrimination is not protected", IsCorrect: true, Feedback: "Correct! The Supreme Court has held that hate speech that incites violence or discrimination is not protected under Article 19(1)(a) and falls within the reasonable restrictions under Article 19(2)."},
								{Text: "Political speech can never be restricted", IsCorrect: false, Feedback: "Incorrect. While political speech receives strong protection, it is still subject to reasonable restrictions under Article 19(2)."},
								{Text: "The state may ban any speech it finds objectionable", IsCorrect: false, Feedback: "Incorrect. Restrictions on speech must be reasonable and proportionate, and are subject to judicial review."},
							},
						},
						{
							Situation: "A state government has reserved 75% of seats in higher educational institutions for socially and educationally backward classes, SC/STs, and economically weaker sections.",
							Question:  "Is this reservation policy constitutionally valid?",
							Hint:      "Recall the ceiling on reservations established by the Supreme Court.",
							Options: []models.ScenarioOption{
								{Text: "Yes, any level of reservation is permitted under Article 15(4)", IsCorrect: false, Feedback: "Incorrect. While Article 15(4) allows special provisions for backward classes, the Supreme Court has capped reservations at 50% in most circumstances (Indra Sawhney case)."},
								{Text: "No, it likely exceeds the 50% ceiling set by the Supreme Court", IsCorrect: true, Feedback: "Correct! In Indra Sawhney v. Union of India, the Supreme Court established a 50% ceiling on reservations to balance equality of opportunity with special provisions for backward classes."},
								{Text: "Yes, if the legislature passed it unanimously", IsCorrect: false, Feedback: "Incorrect. Legislative unanimity doesn't exempt policies from constitutional scrutiny."},
							},
						},
					},
				}),
			},
		},
	}
}

func mustRequirements(req models.BadgeRequirements) string {
	raw, err := json.Marshal(req)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

func seedBadges() []models.Badge {
	return []models.Badge{
		{
			Name:         "Quiz Master",
			Description:  "Successfully complete 5 quizzes with a score of 80% or higher.",
			Icon:         "quiz-master",
			Category:     "mastery",
			Requirements: mustRequirements(models.BadgeRequirements{MinQuizzes: 5, MinScore: 80}),
			Points:       100,
			Rarity:       "uncommon",
		},
		{
			Name:         "Constitution Defender",
			Description:  "Complete 3 or more constitutional scenario challenges.",
			Icon:         "constitution-defender",
			Category:     "achievement",
			Requirements: mustRequirements(models.BadgeRequirements{MinScenarios: 3}),
			Points:       150,
			Rarity:       "uncommon",
		},
		{
			Name:         "Preamble Scholar",
			Description:  "Score 80% or higher on a Preamble-related quiz.",
			Icon:         "preamble-scholar",
			Category:     "mastery",
			Requirements: mustRequirements(models.BadgeRequirements{SpecificQuiz: "preamble", MinScore: 80}),
			Points:       75,
			Rarity:       "common",
		},
		{
			Name:         "Rights Expert",
			Description:  "Score 80% or higher on a Fundamental Rights quiz.",
			Icon:         "rights-expert",
			Category:     "mastery",
			Requirements: mustRequirements(models.BadgeRequirements{SpecificQuiz: "rights", MinScore: 80}),
			Points:       75,
			Rarity:       "common",
		},
		{
			Name:         "Amendment Tracker",
			Description:  "Score 80% or higher on a Constitutional Amendments quiz.",
			Icon:         "amendment-tracker",
			Category:     "mastery",
			Requirements: mustRequirements(models.BadgeRequirements{SpecificQuiz: "amendments", MinScore: 80}),
			Points:       75,
			Rarity:       "common",
		},
		{
			Name:         "Perfect Score",
			Description:  "Achieve a perfect 100% score on any quiz.",
			Icon:         "perfect-score",
			Category:     "achievement",
			Requirements: mustRequirements(models.BadgeRequirements{PerfectScore: true}),
			Points:       200,
			Rarity:       "rare",
		},
		{
			Name:         "Fast Learner",
			Description:  "Complete 10 different learning activities.",
			Icon:         "fast-learner",
			Category:     "progress",
			Requirements: mustRequirements(models.BadgeRequirements{MinActivities: 10}),
			Points:       100,
			Rarity:       "common",
		},
		{
			Name:         "Constitutional Expert",
			Description:  "Complete a topic with 100% mastery.",
			Icon:         "constitutional-expert",
			Category:     "mastery",
			Requirements: mustRequirements(models.BadgeRequirements{TopicCompletion: 100}),
			Points:       250,
			Rarity:       "epic",
		},
	}
}
