package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

// Spinner wraps the terminal spinner used while waiting on the model.
type Spinner struct {
	spinner *spinner.Spinner
}

func NewSpinner(message string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
	)
	return &Spinner{spinner: s}
}

func (s *Spinner) Start() {
	s.spinner.Start()
}

func (s *Spinner) Stop() {
	s.spinner.Stop()
}

// StreamPrinter imprime los deltas del modelo a medida que llegan: el canal
// de reasoning atenuado, el de contenido normal. Inserta los separadores de
// fase la primera vez que aparece cada una.
type StreamPrinter struct {
	lastPhase models.GenerationPhase
	lastKind  models.StreamEventKind
}

func NewStreamPrinter() *StreamPrinter {
	return &StreamPrinter{}
}

func (p *StreamPrinter) Print(event models.StreamEvent) {
	if event.Phase != p.lastPhase {
		if p.lastPhase != "" {
			fmt.Println()
		}
		Dim.Printf("── %s ──\n", event.Phase)
		p.lastPhase = event.Phase
		p.lastKind = ""
	}
	if event.Kind != p.lastKind && p.lastKind != "" {
		fmt.Println()
	}
	p.lastKind = event.Kind

	if event.Kind == models.StreamReasoning {
		Dim.Print(event.Text)
		return
	}
	fmt.Print(event.Text)
}

// Finish cierra la línea en curso si se imprimió algo.
func (p *StreamPrinter) Finish() {
	if p.lastPhase != "" {
		fmt.Println()
	}
}

// PrintSuggestions muestra las sugerencias numeradas con su body indentado.
func PrintSuggestions(suggestions []models.CommitSuggestion) {
	for i, suggestion := range suggestions {
		fmt.Println()
		Accent.Printf("[%d] ", i+1)
		Info.Println(suggestion.Title)
		if suggestion.Body != "" {
			for _, line := range strings.Split(suggestion.Body, "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	}
	fmt.Println()
}

// PrintJudgeReport muestra el resultado del pase de clasificación.
func PrintJudgeReport(report *models.JudgeReport) {
	if report == nil {
		return
	}
	Dim.Printf("commit type: %s (candidates:", report.SelectedType)
	for _, candidate := range report.Candidates {
		Dim.Printf(" %s=%.2f", candidate.Type, candidate.WeightedScore)
		if !candidate.HardGatePass {
			Dim.Print("✗")
		}
	}
	Dim.Println(")")
}
