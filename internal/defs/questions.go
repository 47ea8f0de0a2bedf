// internal/defs/questions.go
package defs

// QuestionRecord is one authored entry of a question bank file.
type QuestionRecord struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Difficulty    int    `json:"difficulty"`
	QuestionText  string `json:"questionText"`
	Num1          int    `json:"num1"`
	Num2          int    `json:"num2"`
	CorrectAnswer int    `json:"correctAnswer"`
	WrongAnswers  []int  `json:"wrongAnswers"`
}

// QuestionBankFile mirrors the on-disk question bank layout.
type QuestionBankFile struct {
	Questions []QuestionRecord `json:"questions"`
}
