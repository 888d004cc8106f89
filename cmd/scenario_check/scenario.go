package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/service"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

const (
	kindMood      = "mood"
	kindSymptoms  = "symptoms"
	kindDiet      = "diet"
	kindCompanion = "companion"
)

type Scenario struct {
	Name    string      `yaml:"name"`
	Kind    string      `yaml:"kind"`
	Input   string      `yaml:"input"`
	Age     *int        `yaml:"age"`
	History []string    `yaml:"history"`
	Expect  Expectation `yaml:"expect"`
}

// Expectation: los campos vacíos no se verifican.
type Expectation struct {
	PrimaryEmotion    string   `yaml:"primary_emotion"`
	SecondaryEmotions []string `yaml:"secondary_emotions"`
	MinAnxiety        *float64 `yaml:"min_anxiety"`
	MinStress         *float64 `yaml:"min_stress"`
	TopCondition      string   `yaml:"top_condition"`
	Urgency           string   `yaml:"urgency"`
	Results           *int     `yaml:"results"`
	PlanTitle         string   `yaml:"plan_title"`
	NutritionGoals    []string `yaml:"nutrition_goals"`
	Exercises         *int     `yaml:"exercises"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Result es el veredicto de un escenario.
type Result struct {
	Scenario Scenario
	Failures []string
}

func (r Result) Passed() bool { return len(r.Failures) == 0 }

func loadScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f scenarioFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, errors.New("no scenarios declared")
	}
	for i, sc := range f.Scenarios {
		switch sc.Kind {
		case kindMood, kindSymptoms, kindDiet, kindCompanion:
		default:
			return nil, fmt.Errorf("scenario %d (%s): unknown kind %q", i, sc.Name, sc.Kind)
		}
		if strings.TrimSpace(sc.Input) == "" {
			return nil, fmt.Errorf("scenario %d (%s): empty input", i, sc.Name)
		}
	}
	return f.Scenarios, nil
}

func loadScenarioFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadScenarios(f)
}

// runner agrupa los servicios contra los que se evalúan los escenarios.
type runner struct {
	mood      *service.MoodAnalyzer
	symptoms  *service.SymptomService
	diet      *service.DietService
	companion *service.CompanionService
}

func (r *runner) Run(ctx context.Context, sc Scenario) (Result, error) {
	res := Result{Scenario: sc}
	exp := sc.Expect

	switch sc.Kind {
	case kindMood:
		checkMood(&res, r.mood.Analyze(sc.Input), exp)

	case kindSymptoms:
		report, err := r.symptoms.Analyze(ctx, sc.Input, service.SymptomOptions{Age: sc.Age})
		if err != nil {
			return res, err
		}
		checkSymptoms(&res, report, exp)

	case kindDiet:
		history := make([]domain.Message, 0, len(sc.History))
		for _, h := range sc.History {
			history = append(history, domain.Message{Role: domain.RoleUser, Content: h})
		}
		checkDiet(&res, r.diet.Generate(sc.Input, history), exp)

	case kindCompanion:
		analysis, reply := r.companion.Reply(sc.Input)
		checkMood(&res, analysis, exp)
		if reply.Message == "" {
			res.fail("empty companion message")
		}
		if exp.Exercises != nil && len(reply.Exercises) != *exp.Exercises {
			res.fail("exercises: want %d, got %d", *exp.Exercises, len(reply.Exercises))
		}
	}
	return res, nil
}

func (r *Result) fail(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

func checkMood(res *Result, a domain.MoodAnalysis, exp Expectation) {
	if math.IsNaN(a.Mood) || math.IsNaN(a.Anxiety) || math.IsNaN(a.Stress) {
		res.fail("analysis contains NaN: %+v", a)
	}
	if exp.PrimaryEmotion != "" && a.PrimaryEmotion != exp.PrimaryEmotion {
		res.fail("primary emotion: want %s, got %s", exp.PrimaryEmotion, a.PrimaryEmotion)
	}
	if exp.SecondaryEmotions != nil && !slices.Equal(a.SecondaryEmotions, exp.SecondaryEmotions) {
		res.fail("secondary emotions: want %v, got %v", exp.SecondaryEmotions, a.SecondaryEmotions)
	}
	if exp.MinAnxiety != nil && a.Anxiety < *exp.MinAnxiety {
		res.fail("anxiety: want >= %.2f, got %.2f", *exp.MinAnxiety, a.Anxiety)
	}
	if exp.MinStress != nil && a.Stress < *exp.MinStress {
		res.fail("stress: want >= %.2f, got %.2f", *exp.MinStress, a.Stress)
	}
}

func checkSymptoms(res *Result, report domain.SymptomReport, exp Expectation) {
	if len(report.Results) == 0 {
		res.fail("no results")
		return
	}
	if !report.Success {
		res.fail("model unavailable, fallback used (%s)", report.Results[0].Condition)
		return
	}
	top := report.Results[0]
	if exp.TopCondition != "" && top.Condition != exp.TopCondition {
		res.fail("top condition: want %s, got %s", exp.TopCondition, top.Condition)
	}
	if exp.Urgency != "" && string(top.Urgency) != exp.Urgency {
		res.fail("urgency: want %s, got %s", exp.Urgency, top.Urgency)
	}
	if exp.Results != nil && len(report.Results) != *exp.Results {
		res.fail("results: want %d, got %d", *exp.Results, len(report.Results))
	}
	for i := 1; i < len(report.Results); i++ {
		if report.Results[i].Confidence > report.Results[i-1].Confidence {
			res.fail("results not sorted by confidence at %d", i)
			break
		}
	}
}

func checkDiet(res *Result, resp domain.DietResponse, exp Expectation) {
	plan := resp.MealPlan
	if plan == nil {
		res.fail("no meal plan")
		return
	}
	if exp.PlanTitle != "" && plan.Title != exp.PlanTitle {
		res.fail("plan title: want %s, got %s", exp.PlanTitle, plan.Title)
	}
	for _, g := range exp.NutritionGoals {
		if !slices.Contains(plan.NutritionGoals, g) {
			res.fail("nutrition goals: missing %q in %v", g, plan.NutritionGoals)
		}
	}
	if plan.DailyCalories != plan.SumCalories() {
		res.fail("daily calories %d differ from meal sum %d", plan.DailyCalories, plan.SumCalories())
	}
	if resp.TextResponse == "" {
		res.fail("empty text response")
	}
}
