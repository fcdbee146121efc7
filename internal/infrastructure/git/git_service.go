package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// IsRepository verifica si el directorio actual está dentro de un repo git.
func (s *GitService) IsRepository(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	return cmd.Run() == nil
}

// GetStagedChanges obtiene el diff staged y la lista de archivos, aplicando
// los patrones de exclusión como pathspecs de git. Devuelve (nil, nil)
// cuando no hay nada staged.
func (s *GitService) GetStagedChanges(ctx context.Context, excludePatterns []string) (*models.CommitInfo, error) {
	pathspecs := buildPathspecs(excludePatterns)

	nameArgs := append([]string{"diff", "--cached", "--name-only"}, pathspecs...)
	nameCmd := exec.CommandContext(ctx, "git", nameArgs...)
	nameOutput, err := nameCmd.Output()
	if err != nil {
		return nil, fmt.Errorf("error al obtener los archivos staged: %w", err)
	}

	files := make([]string, 0)
	for _, line := range strings.Split(string(nameOutput), "\n") {
		if file := strings.TrimSpace(line); file != "" {
			files = append(files, file)
		}
	}

	if len(files) == 0 {
		return nil, nil
	}

	diffArgs := append([]string{"diff", "--cached"}, pathspecs...)
	diffCmd := exec.CommandContext(ctx, "git", diffArgs...)
	diffOutput, err := diffCmd.Output()
	if err != nil {
		return nil, fmt.Errorf("error al obtener el diff staged: %w", err)
	}

	diff := string(diffOutput)
	if strings.TrimSpace(diff) == "" {
		return nil, nil
	}

	return &models.CommitInfo{
		Files: files,
		Diff:  diff,
	}, nil
}

// CreateCommit crea un commit con el mensaje dado.
func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error al crear el commit: %v → %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// HooksDir devuelve el directorio de hooks del repositorio actual.
func (s *GitService) HooksDir(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-path", "hooks")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("error al resolver el directorio de hooks: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// buildPathspecs convierte los patrones de exclusión en pathspecs de git.
// Con exclusiones hay que anclar el pathspec "." para que git no interprete
// la lista como inclusiva.
func buildPathspecs(excludePatterns []string) []string {
	if len(excludePatterns) == 0 {
		return nil
	}
	specs := []string{"--", "."}
	for _, pattern := range excludePatterns {
		if pattern == "" {
			continue
		}
		specs = append(specs, ":(exclude)"+pattern)
	}
	return specs
}
