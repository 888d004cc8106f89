package service

import "arogya-ai/internal/domain"

// Combinaciones de marcas usadas en la base de alimentos.
const (
	tagsPlant      = domain.TagVegetarian | domain.TagVegan | domain.TagLactoseFree | domain.TagGlutenFree
	tagsPlantWheat = domain.TagVegetarian | domain.TagVegan | domain.TagLactoseFree
	tagsDairy      = domain.TagVegetarian | domain.TagGlutenFree
	tagsOvo        = domain.TagVegetarian | domain.TagLactoseFree | domain.TagGlutenFree
	tagsMeat       = domain.TagLactoseFree | domain.TagGlutenFree
)

func food(name, portion string, calories int, category domain.FoodCategory, tags domain.DietTag) domain.Food {
	return domain.Food{Name: name, Portion: portion, Calories: calories, Category: category, Tags: tags}
}

var proteinFoods = []domain.Food{
	food("Chicken Breast", "100g", 165, domain.FoodProtein, tagsMeat),
	food("Salmon", "100g", 206, domain.FoodProtein, tagsMeat),
	food("Tofu", "100g", 76, domain.FoodProtein, tagsPlant),
	food("Lentils", "100g cooked", 116, domain.FoodProtein, tagsPlant),
	food("Greek Yogurt", "100g", 59, domain.FoodProtein, tagsDairy),
	food("Eggs", "2 large", 156, domain.FoodProtein, tagsOvo),
	food("Chickpeas", "100g cooked", 164, domain.FoodProtein, tagsPlant),
	food("Turkey Breast", "100g", 157, domain.FoodProtein, tagsMeat),
	food("Cottage Cheese", "100g", 98, domain.FoodProtein, tagsDairy),
	food("Whey Protein", "30g scoop", 120, domain.FoodProtein, tagsDairy),
}

var vegetableFoods = []domain.Food{
	food("Broccoli", "100g", 34, domain.FoodVegetable, tagsPlant),
	food("Spinach", "100g", 23, domain.FoodVegetable, tagsPlant),
	food("Bell Peppers", "100g", 31, domain.FoodVegetable, tagsPlant),
	food("Cauliflower", "100g", 25, domain.FoodVegetable, tagsPlant),
	food("Kale", "100g", 49, domain.FoodVegetable, tagsPlant),
	food("Carrots", "100g", 41, domain.FoodVegetable, tagsPlant),
	food("Zucchini", "100g", 17, domain.FoodVegetable, tagsPlant),
	food("Green Beans", "100g", 31, domain.FoodVegetable, tagsPlant),
	food("Cucumber", "100g", 15, domain.FoodVegetable, tagsPlant),
	food("Tomatoes", "100g", 18, domain.FoodVegetable, tagsPlant),
}

var fruitFoods = []domain.Food{
	food("Apple", "1 medium", 95, domain.FoodFruit, tagsPlant),
	food("Banana", "1 medium", 105, domain.FoodFruit, tagsPlant),
	food("Blueberries", "100g", 57, domain.FoodFruit, tagsPlant),
	food("Orange", "1 medium", 62, domain.FoodFruit, tagsPlant),
	food("Strawberries", "100g", 32, domain.FoodFruit, tagsPlant),
	food("Avocado", "1/2 medium", 161, domain.FoodFruit, tagsPlant),
	food("Mango", "100g", 60, domain.FoodFruit, tagsPlant),
	food("Kiwi", "1 medium", 42, domain.FoodFruit, tagsPlant),
	food("Grapefruit", "1/2 medium", 52, domain.FoodFruit, tagsPlant),
	food("Pineapple", "100g", 50, domain.FoodFruit, tagsPlant),
}

var grainFoods = []domain.Food{
	food("Brown Rice", "100g cooked", 112, domain.FoodGrain, tagsPlant),
	food("Quinoa", "100g cooked", 120, domain.FoodGrain, tagsPlant),
	food("Oats", "40g dry", 150, domain.FoodGrain, tagsPlant),
	food("Whole Wheat Bread", "1 slice", 81, domain.FoodGrain, tagsPlantWheat),
	food("Whole Wheat Pasta", "100g cooked", 124, domain.FoodGrain, tagsPlantWheat),
	food("Sweet Potato", "100g", 86, domain.FoodGrain, tagsPlant),
	food("Barley", "100g cooked", 123, domain.FoodGrain, tagsPlantWheat),
	food("Buckwheat", "100g cooked", 92, domain.FoodGrain, tagsPlant),
	food("Corn", "100g", 96, domain.FoodGrain, tagsPlant),
	food("Farro", "100g cooked", 130, domain.FoodGrain, tagsPlantWheat),
}

var dairyFoods = []domain.Food{
	food("Milk", "1 cup", 122, domain.FoodDairy, tagsDairy),
	food("Cheese", "30g", 110, domain.FoodDairy, tagsDairy),
	food("Yogurt", "1 cup", 149, domain.FoodDairy, tagsDairy),
	food("Almond Milk", "1 cup", 39, domain.FoodDairy, tagsPlant),
	food("Soy Milk", "1 cup", 80, domain.FoodDairy, tagsPlant),
	food("Oat Milk", "1 cup", 120, domain.FoodDairy, tagsPlant),
	food("Coconut Milk", "1 cup", 552, domain.FoodDairy, tagsPlant),
	food("Kefir", "1 cup", 110, domain.FoodDairy, tagsDairy),
	food("Lactose-Free Milk", "1 cup", 120, domain.FoodDairy, tagsOvo),
	food("Cashew Milk", "1 cup", 25, domain.FoodDairy, tagsPlant),
}

var fatFoods = []domain.Food{
	food("Olive Oil", "1 tbsp", 119, domain.FoodFat, tagsPlant),
	food("Almonds", "30g", 173, domain.FoodFat, tagsPlant),
	food("Chia Seeds", "1 tbsp", 58, domain.FoodFat, tagsPlant),
	food("Flaxseed", "1 tbsp", 55, domain.FoodFat, tagsPlant),
	food("Walnuts", "30g", 185, domain.FoodFat, tagsPlant),
	food("Coconut Oil", "1 tbsp", 117, domain.FoodFat, tagsPlant),
	food("Avocado Oil", "1 tbsp", 124, domain.FoodFat, tagsPlant),
	food("Peanut Butter", "1 tbsp", 94, domain.FoodFat, tagsPlant),
	food("Pumpkin Seeds", "30g", 151, domain.FoodFat, tagsPlant),
	food("Sunflower Seeds", "30g", 165, domain.FoodFat, tagsPlant),
}

// foodFilter selecciona candidatos aptos para las restricciones activas.
type foodFilter struct {
	required    domain.DietTag
	maxCalories int // 0 = sin límite; estricto (<)
}

func (f foodFilter) apply(lists ...[]domain.Food) []domain.Food {
	out := make([]domain.Food, 0, 16)
	for _, list := range lists {
		for _, item := range list {
			if !item.Tags.Has(f.required) {
				continue
			}
			if f.maxCalories > 0 && item.Calories >= f.maxCalories {
				continue
			}
			out = append(out, item)
		}
	}
	return out
}

func (f foodFilter) under(calories int) foodFilter {
	f.maxCalories = calories
	return f
}
