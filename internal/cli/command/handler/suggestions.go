package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/Tomas-vilte/SmartCommit/internal/ui"
	"github.com/manifoldco/promptui"
)

var _ ports.CommitHandler = (*SuggestionHandler)(nil)

// SuggestionHandler muestra las sugerencias, deja elegir una de forma
// interactiva y crea el commit con la elegida.
type SuggestionHandler struct {
	gitService ports.GitService
	t          *i18n.Translations
}

func NewSuggestionHandler(git ports.GitService, t *i18n.Translations) *SuggestionHandler {
	return &SuggestionHandler{
		gitService: git,
		t:          t,
	}
}

func (h *SuggestionHandler) HandleSuggestions(ctx context.Context, suggestions []models.CommitSuggestion) error {
	ui.PrintSuggestions(suggestions)

	items := make([]string, 0, len(suggestions)+1)
	for _, suggestion := range suggestions {
		items = append(items, suggestion.Title)
	}
	cancel := h.t.GetMessage("operation_cancelled", 0, nil)
	items = append(items, cancel)

	selector := promptui.Select{
		Label: h.t.GetMessage("select_suggestion", 0, nil),
		Items: items,
		Size:  len(items),
	}

	index, _, err := selector.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			fmt.Println(cancel)
			return nil
		}
		return err
	}
	if index == len(suggestions) {
		fmt.Println(cancel)
		return nil
	}

	message := suggestions[index].Message()
	if err := h.gitService.CreateCommit(ctx, message); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", ui.Success.Sprint("✓"), h.t.GetMessage("commit_created", 0, nil))
	fmt.Println(message)
	return nil
}
