package service

import "arogya-ai/internal/domain"

type mealPlanTemplate struct {
	title         string
	description   string
	dailyCalories int
	macros        domain.Macros
	healthTips    []string
}

// clone devuelve un plan nuevo; los slices no se comparten con la plantilla.
func (t mealPlanTemplate) clone() domain.MealPlan {
	tips := make([]string, len(t.healthTips))
	copy(tips, t.healthTips)
	return domain.MealPlan{
		Title:          t.title,
		Description:    t.description,
		DailyCalories:  t.dailyCalories,
		Macros:         t.macros,
		Meals:          []domain.Meal{},
		HealthTips:     tips,
		NutritionGoals: []string{},
	}
}

var (
	weightLossTemplate = mealPlanTemplate{
		title:         "Weight Loss Plan",
		description:   "A calorie-controlled diet with higher protein to preserve muscle mass while promoting fat loss.",
		dailyCalories: 1500,
		macros:        domain.Macros{Protein: 35, Carbs: 40, Fats: 25},
		healthTips: []string{
			"Drink at least 2-3 liters of water daily",
			"Focus on whole foods and minimize processed foods",
			"Incorporate strength training 2-3 times per week",
			"Eat slowly and mindfully to recognize fullness cues",
			"Get 7-9 hours of quality sleep each night",
		},
	}
	muscleBuildingTemplate = mealPlanTemplate{
		title:         "Muscle Building Plan",
		description:   "Higher calorie diet with emphasis on protein to support muscle growth and recovery.",
		dailyCalories: 2800,
		macros:        domain.Macros{Protein: 30, Carbs: 50, Fats: 20},
		healthTips: []string{
			"Consume protein with each meal",
			"Eat a meal containing protein and carbs within 1-2 hours after workout",
			"Focus on progressive overload in your strength training",
			"Stay consistent with your meal timing",
			"Include a variety of protein sources in your diet",
		},
	}
	maintenanceTemplate = mealPlanTemplate{
		title:         "Balanced Maintenance Plan",
		description:   "Well-balanced macronutrient distribution to maintain current weight and support overall health.",
		dailyCalories: 2200,
		macros:        domain.Macros{Protein: 25, Carbs: 50, Fats: 25},
		healthTips: []string{
			"Fill half your plate with vegetables and fruits",
			"Choose whole grains over refined grains",
			"Include a variety of protein sources",
			"Limit added sugars and highly processed foods",
			"Practice portion control even with healthy foods",
		},
	}
	heartHealthyTemplate = mealPlanTemplate{
		title:         "Heart-Healthy Diet",
		description:   "Focuses on foods that support cardiovascular health and reduce inflammation.",
		dailyCalories: 1800,
		macros:        domain.Macros{Protein: 20, Carbs: 55, Fats: 25},
		healthTips: []string{
			"Choose unsaturated fats over saturated fats",
			"Limit sodium intake to less than 2,300mg per day",
			"Consume omega-3 rich foods like fatty fish at least twice weekly",
			"Include soluble fiber from oats, legumes, and fruits",
			"Minimize processed foods and added sugars",
		},
	}
	plantBasedTemplate = mealPlanTemplate{
		title:         "Plant-Based Nutrition Plan",
		description:   "Carefully designed vegan meal plan ensuring complete protein and essential nutrients.",
		dailyCalories: 2000,
		macros:        domain.Macros{Protein: 20, Carbs: 60, Fats: 20},
		healthTips: []string{
			"Combine different plant proteins to ensure you get all essential amino acids",
			"Include vitamin B12 fortified foods or supplements",
			"Focus on iron-rich plant foods like lentils, tofu, and spinach",
			"Consume calcium-rich foods like fortified plant milks and leafy greens",
			"Include sources of omega-3 fatty acids like flaxseeds and walnuts",
		},
	}
)

type mealSlot struct {
	name  string
	time  string
	snack bool
}

var mealSlots = []mealSlot{
	{name: "Breakfast", time: "7:30 AM"},
	{name: "Mid-Morning Snack", time: "10:30 AM", snack: true},
	{name: "Lunch", time: "1:00 PM"},
	{name: "Afternoon Snack", time: "4:00 PM", snack: true},
	{name: "Dinner", time: "7:00 PM"},
}
