package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"arogya-ai/internal/config"
	"arogya-ai/internal/db"
	"arogya-ai/internal/domain"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/random"
	"arogya-ai/internal/repository"
	"arogya-ai/internal/service"
)

// cliUserID es el espacio de datos fijo que usa la consola.
const cliUserID = "cli_user"

type app struct {
	reader    *bufio.Reader
	mood      *service.MoodAnalyzer
	companion *service.CompanionService
	symptoms  *service.SymptomService
	diet      *service.DietService
	wellness  *service.WellnessService
}

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	store, closeStore, err := db.NewKVStore(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	table, err := service.DefaultConditionTable()
	if cfg.ConditionsFile != "" {
		table, err = service.LoadConditionFile(cfg.ConditionsFile)
	}
	if err != nil {
		log.Fatal(err)
	}

	rnd := random.New(cfg.RandomSeed)
	modelSvc := llm.NewSimulatedService(
		cfg.ModelVersion,
		cfg.ModelFailureRate,
		time.Duration(cfg.ModelLatencyMinMS)*time.Millisecond,
		time.Duration(cfg.ModelLatencyMaxMS)*time.Millisecond,
		rnd,
		logger,
	)
	mood := service.NewMoodAnalyzer()
	a := &app{
		reader:    bufio.NewReader(os.Stdin),
		mood:      mood,
		companion: service.NewCompanionService(mood, rnd, logger),
		symptoms:  service.NewSymptomService(modelSvc, table, logger),
		diet:      service.NewDietService(rnd, logger),
		wellness:  service.NewWellnessService(repository.NewKVWellnessRepository(store), rnd, logger),
	}

	for {
		fmt.Println("\n===== ArogyaAI+ =====")
		fmt.Println("[1] Hablar con el compañero")
		fmt.Println("[2] Analizar síntomas")
		fmt.Println("[3] Plan de comidas")
		fmt.Println("[4] Escribir en el diario")
		fmt.Println("[5] Ver historial de ánimo")
		fmt.Println("[6] Salir")
		fmt.Print("Selecciona una opcion: ")

		switch a.readLine() {
		case "1":
			if err := a.companionFlow(ctx); err != nil {
				fmt.Printf("Error en chat: %v\n", err)
			}
		case "2":
			if err := a.symptomFlow(ctx); err != nil {
				fmt.Printf("Error analizando síntomas: %v\n", err)
			}
		case "3":
			a.dietFlow()
		case "4":
			if err := a.journalFlow(ctx); err != nil {
				fmt.Printf("Error en diario: %v\n", err)
			}
		case "5":
			if err := a.historyFlow(ctx); err != nil {
				fmt.Printf("Error leyendo historial: %v\n", err)
			}
		case "6":
			return
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func (a *app) readLine() string {
	line, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func isExit(text string) bool {
	return strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit")
}

func (a *app) companionFlow(ctx context.Context) error {
	fmt.Println("---- Compañero (escribe 'salir' para terminar) ----")
	for {
		fmt.Print("Tu > ")
		text := a.readLine()
		if text == "" {
			continue
		}
		if isExit(text) {
			return nil
		}

		analysis, reply := a.companion.Reply(text)
		if _, err := a.wellness.RecordMood(ctx, cliUserID, analysis); err != nil {
			return fmt.Errorf("guardar ánimo: %w", err)
		}
		fmt.Printf("[%s | ánimo %.2f ansiedad %.2f estrés %.2f]\n", analysis.PrimaryEmotion, analysis.Mood, analysis.Anxiety, analysis.Stress)
		fmt.Printf("ArogyaAI > %s\n", reply.Message)
		for _, ex := range reply.Exercises {
			fmt.Printf("  * %s (%s)\n", ex.Title, ex.Duration)
		}
		for _, v := range reply.Videos {
			fmt.Printf("  > %s - %s\n", v.Title, v.Creator)
		}
	}
}

func (a *app) symptomFlow(ctx context.Context) error {
	fmt.Print("Describe tus síntomas: ")
	text := a.readLine()
	if text == "" {
		return nil
	}
	fmt.Print("Edad (opcional): ")
	var opts service.SymptomOptions
	if raw := a.readLine(); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			fmt.Println("Edad invalida, se ignora.")
		} else {
			opts.Age = &age
		}
	}

	report, err := a.symptoms.Analyze(ctx, text, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Modelo: %s\n", report.ModelUsed)
	for i, r := range report.Results {
		fmt.Printf("%d. %s (%d%%, urgencia %s)\n   %s\n", i+1, r.Condition, r.Confidence, r.Urgency, r.Description)
	}
	return nil
}

func (a *app) dietFlow() {
	fmt.Println("---- Asesor de dieta (escribe 'salir' para terminar) ----")
	var history []domain.Message
	for {
		fmt.Print("Tu > ")
		text := a.readLine()
		if text == "" {
			continue
		}
		if isExit(text) {
			return
		}
		resp := a.diet.Generate(text, history)
		history = append(history,
			domain.Message{Role: domain.RoleUser, Content: text},
			domain.Message{Role: domain.RoleAssistant, Content: resp.TextResponse},
		)
		fmt.Printf("ArogyaAI > %s\n", resp.TextResponse)
		if resp.MealPlan == nil {
			continue
		}
		for _, meal := range resp.MealPlan.Meals {
			names := make([]string, 0, len(meal.Foods))
			for _, f := range meal.Foods {
				names = append(names, f.Name)
			}
			fmt.Printf("  %s %s (%d kcal): %s\n", meal.Time, meal.Name, meal.Calories, strings.Join(names, ", "))
		}
	}
}

func (a *app) journalFlow(ctx context.Context) error {
	fmt.Print("¿Cómo te sientes hoy? (opcional): ")
	var current *domain.MoodAnalysis
	if feeling := a.readLine(); feeling != "" {
		analysis := a.mood.Analyze(feeling)
		current = &analysis
	}
	_, prompt := a.wellness.JournalPrompt(current)
	fmt.Printf("Consigna: %s\n> ", prompt)
	entry, err := a.wellness.AddJournalEntry(ctx, cliUserID, prompt, a.readLine())
	if err != nil {
		return err
	}
	fmt.Printf("Entrada guardada (%s).\n", entry.ID)

	aff, err := a.wellness.SuggestAffirmation(current, "")
	if err == nil {
		fmt.Printf("Afirmación: %s\n", aff.Text)
	}
	return nil
}

func (a *app) historyFlow(ctx context.Context) error {
	history, err := a.wellness.MoodHistory(ctx, cliUserID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("Sin registros todavía.")
		return nil
	}
	for _, e := range history {
		fmt.Printf("%s  ánimo %3.0f  ansiedad %3.0f  estrés %3.0f\n", e.Date.Local().Format("2006-01-02 15:04"), e.Mood, e.Anxiety, e.Stress)
	}
	return nil
}
