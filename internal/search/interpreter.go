package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/leadradar/leadradar/internal/llm"
	"github.com/leadradar/leadradar/internal/model"
)

// Interpreter turns a free-form prospecting prompt like "dentists around
// the area that look offline" into a structured search Request. Coordinates
// still come from the caller; interpreting place names is out of scope.
type Interpreter struct {
	LLM llm.LLMClient
}

func NewInterpreter(client llm.LLMClient) *Interpreter {
	return &Interpreter{LLM: client}
}

type promptInterpretation struct {
	Industry string `json:"industry"`
	Limit    int    `json:"limit"`
}

var knownIndustries = []model.Industry{
	model.IndustrySalon, model.IndustryBarber, model.IndustrySpa,
	model.IndustryDentist, model.IndustryDoctor, model.IndustryChiro,
	model.IndustryRestaurant, model.IndustryCafe, model.IndustryFitness,
	model.IndustryAutoRepair, model.IndustryPlumber, model.IndustryElectrician,
	model.IndustryLandscaping, model.IndustryRetail, model.IndustryOther,
}

// Interpret asks the model to map the prompt onto a known industry and an
// optional result limit. Scrape and analyze stay enabled; the prompt surface
// is for people who want the full pipeline.
func (i *Interpreter) Interpret(ctx context.Context, prompt string) (Request, error) {
	if i.LLM == nil {
		return Request{}, fmt.Errorf("no llm provider configured")
	}

	industries := make([]string, len(knownIndustries))
	for idx, ind := range knownIndustries {
		industries[idx] = string(ind)
	}

	llmPrompt := fmt.Sprintf(`You classify lead-prospecting requests.
Request: %s

Pick the single best matching industry from this list: %s.
If a result count is mentioned, include it as "limit", otherwise use 0.

Return only a JSON object, for example:
{"industry": "dentist", "limit": 10}
`, prompt, strings.Join(industries, ", "))

	response, err := i.LLM.Generate(ctx, llmPrompt)
	if err != nil {
		return Request{}, fmt.Errorf("failed to interpret prompt: %w", err)
	}

	parsed, err := llm.ParseJSON[promptInterpretation](response)
	if err != nil {
		return Request{}, fmt.Errorf("failed to parse interpretation: %w", err)
	}

	industry := model.IndustryOther
	for _, ind := range knownIndustries {
		if strings.EqualFold(string(ind), strings.TrimSpace(parsed.Industry)) {
			industry = ind
			break
		}
	}

	return Request{
		Industry:      industry,
		Limit:         parsed.Limit,
		EnableScrape:  true,
		EnableAnalyze: true,
	}, nil
}
