package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/random"
)

// dietFlags son las señales detectadas en la consulta.
// Los objetivos salen solo de la consulta actual; las restricciones
// también se acumulan desde mensajes previos del usuario.
type dietFlags struct {
	weightLoss bool
	weightGain bool
	heart      bool

	vegetarian bool
	vegan      bool
	diabetic   bool
	lactose    bool
	glutenFree bool
}

func parseDietFlags(query string, history []domain.Message) dietFlags {
	q := strings.ToLower(query)
	f := dietFlags{
		weightLoss: containsAny(q, []string{"lose weight", "weight loss", "slim down"}),
		weightGain: containsAny(q, []string{"gain weight", "gain muscle", "bulk up"}),
		heart:      containsAny(q, []string{"heart", "cardiovascular"}),
	}
	f.addRestrictions(q)
	for _, m := range history {
		if m.Role == domain.RoleUser {
			f.addRestrictions(strings.ToLower(m.Content))
		}
	}
	return f
}

func (f *dietFlags) addRestrictions(lower string) {
	f.vegetarian = f.vegetarian || strings.Contains(lower, "vegetarian")
	f.vegan = f.vegan || strings.Contains(lower, "vegan")
	f.diabetic = f.diabetic || containsAny(lower, []string{"diabetes", "diabetic"})
	f.lactose = f.lactose || containsAny(lower, []string{"lactose", "dairy free"})
	f.glutenFree = f.glutenFree || strings.Contains(lower, "gluten")
}

// requiredTags traduce las restricciones a marcas que todo alimento debe tener.
func (f dietFlags) requiredTags() domain.DietTag {
	var tags domain.DietTag
	if f.vegetarian {
		tags |= domain.TagVegetarian
	}
	if f.vegan {
		tags |= domain.TagVegan | domain.TagVegetarian
	}
	if f.lactose {
		tags |= domain.TagLactoseFree
	}
	if f.glutenFree {
		tags |= domain.TagGlutenFree
	}
	return tags
}

func (f dietFlags) template() mealPlanTemplate {
	switch {
	case f.weightLoss:
		return weightLossTemplate
	case f.weightGain:
		return muscleBuildingTemplate
	case f.heart:
		return heartHealthyTemplate
	case f.vegan:
		return plantBasedTemplate
	default:
		return maintenanceTemplate
	}
}

type DietService struct {
	rnd    random.Source
	logger *zap.Logger
}

func NewDietService(rnd random.Source, logger *zap.Logger) *DietService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DietService{
		rnd:    rnd,
		logger: logger,
	}
}

// Generate arma un plan de comidas a partir de la consulta y el historial.
// Con la misma semilla y la misma entrada el plan es idéntico.
func (s *DietService) Generate(query string, history []domain.Message) domain.DietResponse {
	flags := parseDietFlags(query, history)

	plan := flags.template().clone()
	customizePlan(&plan, flags)

	filter := foodFilter{required: flags.requiredTags()}
	for _, slot := range mealSlots {
		if slot.snack && s.rnd.Float64() > 0.7 {
			continue
		}
		meal := domain.Meal{Name: slot.name, Time: slot.time, Foods: []domain.Food{}}
		switch slot.name {
		case "Breakfast":
			s.fillBreakfast(&meal, filter)
		case "Lunch":
			s.fillLunch(&meal, filter, flags)
		case "Dinner":
			s.fillDinner(&meal, filter, flags)
		default:
			s.fillSnack(&meal, filter, flags)
		}
		if len(meal.Foods) == 0 {
			continue
		}
		plan.Meals = append(plan.Meals, meal)
	}
	plan.DailyCalories = plan.SumCalories()

	s.logger.Debug("meal plan generated",
		zap.String("title", plan.Title),
		zap.Int("meals", len(plan.Meals)),
		zap.Int("daily_calories", plan.DailyCalories),
	)

	return domain.DietResponse{
		TextResponse: dietTextResponse(plan, flags),
		MealPlan:     &plan,
	}
}

func customizePlan(plan *domain.MealPlan, f dietFlags) {
	switch {
	case f.weightLoss:
		plan.NutritionGoals = append(plan.NutritionGoals, "Weight Loss", "Calorie Deficit")
	case f.weightGain:
		plan.NutritionGoals = append(plan.NutritionGoals, "Muscle Gain", "Calorie Surplus")
	}

	if f.vegetarian {
		plan.NutritionGoals = append(plan.NutritionGoals, "Vegetarian")
		switch {
		case f.weightLoss:
			plan.Title = "Vegetarian Weight Loss Plan"
			plan.Description = "Plant-based foods with higher protein to support weight loss while maintaining muscle mass."
		case f.weightGain:
			plan.Title = "Vegetarian Muscle Building Plan"
			plan.Description = "Nutrient-dense vegetarian foods to support muscle growth and recovery."
		default:
			plan.Title = "Balanced Vegetarian Plan"
			plan.Description = "Well-rounded vegetarian meal plan for overall health and wellbeing."
		}
	}

	if f.vegan {
		goals := plan.NutritionGoals[:0]
		for _, g := range plan.NutritionGoals {
			if g != "Vegetarian" {
				goals = append(goals, g)
			}
		}
		plan.NutritionGoals = append(goals, "Vegan")
		switch {
		case f.weightLoss:
			plan.Title = "Vegan Weight Loss Plan"
			plan.Description = "Plant-based foods with focus on protein sources to support fat loss."
		case f.weightGain:
			plan.Title = "Vegan Muscle Building Plan"
			plan.Description = "Higher-calorie vegan foods to support muscle growth and recovery."
		default:
			plan.Title = "Balanced Vegan Plan"
			plan.Description = "Nutritionally complete vegan meal plan for optimal health."
		}
	}

	if f.diabetic {
		plan.NutritionGoals = append(plan.NutritionGoals, "Blood Sugar Management")
		plan.HealthTips = append(plan.HealthTips,
			"Monitor carbohydrate intake consistently throughout the day",
			"Choose low glycemic index foods",
			"Pair carbohydrates with proteins and healthy fats to slow glucose absorption",
		)
	}
	if f.lactose {
		plan.NutritionGoals = append(plan.NutritionGoals, "Lactose-Free")
		plan.HealthTips = append(plan.HealthTips,
			"Use plant-based milk alternatives like almond, soy, or oat milk",
			"Check labels for hidden dairy ingredients in processed foods",
		)
	}
	if f.glutenFree {
		plan.NutritionGoals = append(plan.NutritionGoals, "Gluten-Free")
		plan.HealthTips = append(plan.HealthTips,
			"Choose naturally gluten-free grains like rice, quinoa, and buckwheat",
			"Be cautious of cross-contamination in food preparation",
		)
	}
}

// addRandom agrega un candidato al azar; no hace nada si no hay candidatos.
func (s *DietService) addRandom(meal *domain.Meal, candidates []domain.Food) {
	if item, ok := random.Pick(s.rnd, candidates); ok {
		meal.AddFood(item)
	}
}

func (s *DietService) fillBreakfast(meal *domain.Meal, filter foodFilter) {
	s.addRandom(meal, filter.apply(proteinFoods))
	s.addRandom(meal, filter.apply(grainFoods))
	s.addRandom(meal, filter.apply(fruitFoods))
}

func (s *DietService) fillLunch(meal *domain.Meal, filter foodFilter, f dietFlags) {
	s.addRandom(meal, filter.apply(proteinFoods))
	vegetables := filter.apply(vegetableFoods)
	for i := 0; i < 2; i++ {
		s.addRandom(meal, vegetables)
	}
	if !f.weightLoss || s.rnd.Float64() > 0.5 {
		s.addRandom(meal, filter.apply(grainFoods))
	}
	s.addRandom(meal, filter.apply(fatFoods))
}

func (s *DietService) fillDinner(meal *domain.Meal, filter foodFilter, f dietFlags) {
	s.addRandom(meal, filter.apply(proteinFoods))

	// 2-3 vegetales distintos
	vegetables := filter.apply(vegetableFoods)
	count := 2 + s.rnd.IntN(2)
	for i := 0; i < count && len(vegetables) > 0; i++ {
		idx := s.rnd.IntN(len(vegetables))
		meal.AddFood(vegetables[idx])
		vegetables = append(vegetables[:idx], vegetables[idx+1:]...)
	}

	if !f.weightLoss || s.rnd.Float64() > 0.7 {
		s.addRandom(meal, filter.apply(grainFoods))
	}
	s.addRandom(meal, filter.apply(fatFoods))
}

func (s *DietService) fillSnack(meal *domain.Meal, filter foodFilter, f dietFlags) {
	switch {
	case f.weightLoss:
		options := append(filter.under(100).apply(proteinFoods), filter.apply(vegetableFoods)...)
		options = append(options, filter.under(80).apply(fruitFoods)...)
		s.addRandom(meal, options)
	case f.weightGain:
		s.addRandom(meal, filter.apply(proteinFoods, fruitFoods, fatFoods))
		s.addRandom(meal, filter.apply(dairyFoods))
	default:
		s.addRandom(meal, append(filter.apply(fruitFoods), filter.under(150).apply(dairyFoods)...))
	}
}

func dietTextResponse(plan domain.MealPlan, f dietFlags) string {
	var b strings.Builder

	switch {
	case f.diabetic:
		b.WriteString("Based on your diabetic condition, I've created a meal plan focused on managing blood sugar levels. ")
	case f.weightLoss:
		b.WriteString("I've designed a calorie-controlled meal plan to support your weight loss goals while ensuring adequate nutrition. ")
	case f.weightGain:
		b.WriteString("I've put together a higher-calorie meal plan with plenty of protein to support your muscle building goals. ")
	case f.heart:
		b.WriteString("This heart-healthy meal plan emphasizes foods that support cardiovascular health and reduce inflammation. ")
	default:
		b.WriteString("I've created a balanced meal plan that provides a good mix of all essential nutrients to support overall health. ")
	}

	switch {
	case f.vegetarian:
		b.WriteString("All meals are vegetarian as requested. ")
	case f.vegan:
		b.WriteString("All meals are 100% plant-based to align with your vegan lifestyle. ")
	}
	if f.glutenFree {
		b.WriteString("I've excluded all sources of gluten from your meal plan. ")
	}
	if f.lactose {
		b.WriteString("The plan avoids dairy products or uses lactose-free alternatives. ")
	}

	fmt.Fprintf(&b, "\n\nThis plan provides approximately %d calories per day with a macronutrient distribution of %d%% protein, %d%% carbohydrates, and %d%% fats. ",
		plan.DailyCalories, plan.Macros.Protein, plan.Macros.Carbs, plan.Macros.Fats)
	b.WriteString("\n\nI've included a detailed meal plan below. You can see each meal with specific foods, portions, and calorie counts. The plan also includes health tips tailored to your needs.")
	b.WriteString("\n\nWould you like me to adjust anything about this meal plan? For example, I can modify the calorie level, add more meals, or adjust the types of foods included.")
	return b.String()
}
