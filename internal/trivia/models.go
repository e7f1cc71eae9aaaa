package trivia

// QuestionsPerPage is the fixed window size used by Paginate.
const QuestionsPerPage = 10

type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// Question is stored as-is and doubles as the formatted JSON shape returned
// by every endpoint. Category is a plain column: questions pointing at a
// missing category are tolerated.
type Question struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionPage is one page of an ordered question selection.
type QuestionPage struct {
	Questions []Question
	Total     int
}

// CategoryTypes maps category id to its type label.
func CategoryTypes(categories []Category) map[int]string {
	types := make(map[int]string, len(categories))
	for _, category := range categories {
		types[category.ID] = category.Type
	}
	return types
}
