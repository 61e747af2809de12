package repository

import (
	"fmt"

	"jeopardytool/internal/domain"
)

func newTestGame(id, title string) *domain.Game {
	g := domain.NewGame(title)
	g.ID = id
	for c := 0; c < domain.CategoriesPerGame; c++ {
		cat := domain.NewCategory(fmt.Sprintf("Category %d", c+1))
		for a := 0; a < domain.AnswersPerCategory; a++ {
			cat.Answers = append(cat.Answers, domain.NewTextAnswer(fmt.Sprintf("q%d", a), fmt.Sprintf("a%d", a)))
		}
		g.AddCategory(cat)
	}
	return g
}
