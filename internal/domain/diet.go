package domain

// FoodCategory agrupa los alimentos de la base.
type FoodCategory string

const (
	FoodProtein   FoodCategory = "protein"
	FoodVegetable FoodCategory = "vegetable"
	FoodFruit     FoodCategory = "fruit"
	FoodGrain     FoodCategory = "grain"
	FoodDairy     FoodCategory = "dairy"
	FoodFat       FoodCategory = "fat"
)

// DietTag marca para qué restricciones dietarias es apto un alimento.
type DietTag uint8

const (
	TagVegetarian DietTag = 1 << iota
	TagVegan
	TagLactoseFree
	TagGlutenFree
)

// Has indica si t contiene todas las marcas de want.
func (t DietTag) Has(want DietTag) bool {
	return t&want == want
}

type Food struct {
	Name     string       `json:"name"`
	Portion  string       `json:"portion"`
	Calories int          `json:"calories"`
	Category FoodCategory `json:"category"`
	Tags     DietTag      `json:"-"`
}

type Meal struct {
	Name     string `json:"name"`
	Time     string `json:"time"`
	Foods    []Food `json:"foods"`
	Calories int    `json:"calories"`
}

// AddFood agrega un alimento y recalcula las calorías de la comida.
func (m *Meal) AddFood(f Food) {
	m.Foods = append(m.Foods, f)
	m.Calories = m.SumCalories()
}

// SumCalories suma las calorías de los alimentos de la comida.
func (m Meal) SumCalories() int {
	total := 0
	for _, f := range m.Foods {
		total += f.Calories
	}
	return total
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type MealPlan struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	DailyCalories  int      `json:"daily_calories"`
	Macros         Macros   `json:"macros"`
	Meals          []Meal   `json:"meals"`
	HealthTips     []string `json:"health_tips"`
	NutritionGoals []string `json:"nutrition_goals"`
}

// SumCalories recalcula el total diario a partir de las comidas incluidas.
func (p MealPlan) SumCalories() int {
	total := 0
	for _, m := range p.Meals {
		total += m.SumCalories()
	}
	return total
}

// DietResponse es la respuesta del asesor de dieta.
type DietResponse struct {
	TextResponse string    `json:"text_response"`
	MealPlan     *MealPlan `json:"meal_plan"`
}
