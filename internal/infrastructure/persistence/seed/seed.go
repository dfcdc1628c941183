// Package seed loads demo content into any repository backend. It is
// used by both the in-memory and sqlite setups when seeding is enabled.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// Demo populates the repositories with demo content: a small recipe
// catalog, a stocked pantry, a handful of planned days and a few
// assistant conversations. Intended for development and demos.
func Demo(ctx context.Context, meals outbound.MealRepository, plans outbound.MealPlanRepository, ingredients outbound.IngredientRepository, conversations outbound.ConversationRepository) error {
	now := time.Now()

	seededMeals := demoMeals(now)
	for _, m := range seededMeals {
		if err := meals.Create(ctx, m); err != nil {
			return err
		}
	}

	for _, i := range demoIngredients(now) {
		if err := ingredients.Create(ctx, i); err != nil {
			return err
		}
	}

	for _, p := range demoPlans(now, seededMeals) {
		if err := plans.Create(ctx, p); err != nil {
			return err
		}
	}

	for _, c := range demoConversations(now) {
		if err := conversations.Create(ctx, c); err != nil {
			return err
		}
	}

	return nil
}

func demoMeals(now time.Time) []*meal.Meal {
	type row struct {
		title        string
		description  string
		category     meal.Category
		prepTime     int
		cookTime     int
		servingSize  int
		imageURL     string
		instructions []string
	}

	rows := []row{
		{
			title:       "Classic Pancakes",
			description: "Fluffy, golden pancakes perfect for a weekend breakfast. Light and delicious with your favorite toppings.",
			category:    meal.CategoryBreakfast,
			prepTime:    10, cookTime: 15, servingSize: 4,
			imageURL: "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=800&q=80",
			instructions: []string{
				"Mix flour, sugar, baking powder, and salt in a large bowl",
				"In another bowl, whisk together milk, eggs, and melted butter",
				"Pour wet ingredients into dry ingredients and stir until just combined",
				"Heat a non-stick pan over medium heat",
				"Pour 1/4 cup batter for each pancake",
				"Cook until bubbles form on surface, then flip and cook until golden brown",
				"Serve hot with maple syrup and fresh berries",
			},
		},
		{
			title:       "Grilled Chicken Caesar Salad",
			description: "A healthy and satisfying lunch featuring grilled chicken breast, crispy romaine lettuce, and creamy Caesar dressing.",
			category:    meal.CategoryLunch,
			prepTime:    15, cookTime: 20, servingSize: 2,
			imageURL: "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=800&q=80",
			instructions: []string{
				"Season chicken breasts with salt, pepper, and olive oil",
				"Grill chicken over medium-high heat for 6-8 minutes per side",
				"Let chicken rest for 5 minutes, then slice",
				"Wash and chop romaine lettuce",
				"Toss lettuce with Caesar dressing",
				"Top with sliced chicken, croutons, and parmesan cheese",
				"Serve immediately",
			},
		},
		{
			title:       "Spaghetti Carbonara",
			description: "Rich and creamy Italian pasta dish made with eggs, cheese, pancetta, and black pepper. A classic comfort food.",
			category:    meal.CategoryDinner,
			prepTime:    10, cookTime: 20, servingSize: 4,
			imageURL: "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=800&q=80",
			instructions: []string{
				"Cook spaghetti in salted boiling water until al dente",
				"While pasta cooks, crisp pancetta in a large pan",
				"In a bowl, whisk together eggs, parmesan, and black pepper",
				"Drain pasta, reserving 1 cup pasta water",
				"Add hot pasta to pancetta pan off heat",
				"Quickly stir in egg mixture, adding pasta water to create creamy sauce",
				"Serve immediately with extra parmesan and black pepper",
			},
		},
		{
			title:       "Trail Mix Energy Balls",
			description: "No-bake energy bites packed with oats, nuts, and dried fruit. Perfect for a quick snack on the go.",
			category:    meal.CategorySnack,
			prepTime:    15, cookTime: 0, servingSize: 12,
			imageURL: "https://images.unsplash.com/photo-1621939514649-280e2ee25f60?w=800&q=80",
			instructions: []string{
				"Combine oats, almonds, and dried cranberries in a food processor",
				"Pulse until mixture is finely chopped",
				"Add honey, peanut butter, and vanilla extract",
				"Process until mixture holds together",
				"Roll into 1-inch balls",
				"Refrigerate for at least 30 minutes before serving",
				"Store in an airtight container in the fridge for up to 2 weeks",
			},
		},
		{
			title:       "Chocolate Lava Cake",
			description: "Decadent individual chocolate cakes with a molten center. A restaurant-quality dessert made at home.",
			category:    meal.CategoryDessert,
			prepTime:    15, cookTime: 12, servingSize: 4,
			imageURL: "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=800&q=80",
			instructions: []string{
				"Preheat oven to 425°F (220°C)",
				"Butter and flour four ramekins",
				"Melt chocolate and butter together in a double boiler",
				"Whisk in sugar, eggs, and vanilla until smooth",
				"Fold in flour until just combined",
				"Divide batter among ramekins",
				"Bake for 12 minutes until edges are firm but center is soft",
				"Let cool for 1 minute, then invert onto plates",
				"Serve immediately with vanilla ice cream",
			},
		},
		{
			title:       "Mango Smoothie",
			description: "Refreshing tropical smoothie made with ripe mangoes, yogurt, and a hint of honey. Perfect for breakfast or a snack.",
			category:    meal.CategoryDrink,
			prepTime:    5, cookTime: 0, servingSize: 2,
			imageURL: "https://images.unsplash.com/photo-1505252585461-04db1eb84625?w=800&q=80",
			instructions: []string{
				"Peel and cube fresh mango",
				"Add mango, yogurt, milk, and honey to blender",
				"Add ice cubes for a chilled smoothie",
				"Blend on high until smooth and creamy",
				"Taste and add more honey if desired",
				"Pour into glasses and serve immediately",
				"Garnish with fresh mint leaves if desired",
			},
		},
		{
			title:       "Avocado Toast",
			description: "Simple yet delicious breakfast featuring creamy avocado on crispy toast with a perfect soft-boiled egg.",
			category:    meal.CategoryBreakfast,
			prepTime:    5, cookTime: 10, servingSize: 2,
			imageURL: "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=800&q=80",
			instructions: []string{
				"Toast bread slices until golden and crispy",
				"Mash ripe avocado with salt, pepper, and lemon juice",
				"Soft-boil eggs for 6-7 minutes",
				"Spread avocado mixture on toast",
				"Peel and halve soft-boiled eggs",
				"Place egg halves on top of avocado toast",
				"Sprinkle with red pepper flakes and fresh herbs",
				"Serve immediately",
			},
		},
		{
			title:       "Beef Tacos",
			description: "Flavorful seasoned beef in crispy taco shells with fresh toppings. A crowd-pleasing dinner option.",
			category:    meal.CategoryDinner,
			prepTime:    15, cookTime: 20, servingSize: 6,
			imageURL: "https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?w=800&q=80",
			instructions: []string{
				"Brown ground beef in a large skillet over medium-high heat",
				"Drain excess fat and add taco seasoning with water",
				"Simmer for 5 minutes until sauce thickens",
				"Warm taco shells in the oven",
				"Prepare toppings: shred lettuce, dice tomatoes, grate cheese",
				"Fill taco shells with seasoned beef",
				"Top with lettuce, tomatoes, cheese, and sour cream",
				"Serve with lime wedges",
			},
		},
	}

	meals := make([]*meal.Meal, 0, len(rows))
	for _, r := range rows {
		meals = append(meals, meal.Restore(
			uuid.New(), r.title, r.description, r.category,
			r.prepTime, r.cookTime, r.servingSize,
			r.instructions, r.imageURL, now, now,
		))
	}
	return meals
}

func demoIngredients(now time.Time) []*ingredient.Ingredient {
	chickenProducts := []ingredient.Product{
		{ID: uuid.New(), Retailer: "FreshMart", Label: "Boneless Skinless Chicken Breast, 2 lb", Cost: 11.98, Servings: 8, URL: "https://freshmart.example/chicken-breast-2lb"},
		{ID: uuid.New(), Retailer: "ValueGrocer", Label: "Chicken Breast Family Pack, 4 lb", Cost: 19.96, Servings: 16, URL: "https://valuegrocer.example/chicken-family-pack"},
	}
	chickenDefault := chickenProducts[0].ID

	riceProducts := []ingredient.Product{
		{ID: uuid.New(), Retailer: "ValueGrocer", Label: "Long Grain White Rice, 5 lb bag", Cost: 6.49, Servings: 50},
	}
	riceDefault := riceProducts[0].ID

	oliveOilProducts := []ingredient.Product{
		{ID: uuid.New(), Retailer: "FreshMart", Label: "Extra Virgin Olive Oil, 750 ml", Cost: 9.99, Servings: 0, URL: "https://freshmart.example/evoo-750"},
	}

	rows := []*ingredient.Ingredient{
		ingredient.Restore(
			uuid.New(), "Chicken Breast", ingredient.TypeMeat,
			"https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=800&q=80",
			ingredient.NutrientProfile{Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74, Calories: 165},
			2.5, 0.25, ingredient.UnitPound, "",
			chickenProducts, &chickenDefault, now, now,
		),
		ingredient.Restore(
			uuid.New(), "White Rice", ingredient.TypeGrains,
			"https://images.unsplash.com/photo-1586201375761-83865001e31c?w=800&q=80",
			ingredient.NutrientProfile{Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sugar: 0.1, Sodium: 1, Calories: 130},
			3, 0.5, ingredient.UnitBag, "",
			riceProducts, &riceDefault, now, now,
		),
		ingredient.Restore(
			uuid.New(), "Olive Oil", ingredient.TypeOils,
			"https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=800&q=80",
			ingredient.NutrientProfile{Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sugar: 0, Sodium: 2, Calories: 884},
			1, 1, ingredient.UnitBottle, "",
			oliveOilProducts, nil, now, now,
		),
		ingredient.Restore(
			uuid.New(), "Avocado", ingredient.TypeProduce,
			"https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=800&q=80",
			ingredient.NutrientProfile{Protein: 2, Carbs: 9, Fat: 15, Fiber: 7, Sugar: 0.7, Sodium: 7, Calories: 160},
			4, 0.5, ingredient.UnitPiece, "",
			nil, nil, now, now,
		),
		ingredient.Restore(
			uuid.New(), "Greek Yogurt", ingredient.TypeDairy,
			"https://images.unsplash.com/photo-1488477181946-6428a0291777?w=800&q=80",
			ingredient.NutrientProfile{Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0, Sugar: 3.2, Sodium: 36, Calories: 59},
			2, 1, ingredient.UnitContainer, "",
			nil, nil, now, now,
		),
		ingredient.Restore(
			uuid.New(), "Sourdough Starter", ingredient.TypeOther,
			"",
			ingredient.NutrientProfile{Protein: 3.5, Carbs: 20, Fat: 0.5, Fiber: 1, Sugar: 0.5, Sodium: 2, Calories: 101},
			1, 1, ingredient.UnitOther, "crock",
			nil, nil, now, now,
		),
	}
	return rows
}

func demoPlans(now time.Time, meals []*meal.Meal) []*mealplan.MealPlan {
	if len(meals) < 8 {
		return nil
	}
	today := mealplan.NormalizeToDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	type row struct {
		date      time.Time
		mealType  mealplan.MealType
		mealIdx   int
		timeOfDay string
		notes     string
	}

	rows := []row{
		{date: today, mealType: mealplan.MealTypeBreakfast, mealIdx: 0, timeOfDay: "08:00"},
		{date: today, mealType: mealplan.MealTypeLunch, mealIdx: 1, timeOfDay: "12:30", notes: "Double the dressing"},
		{date: today, mealType: mealplan.MealTypeDinner, mealIdx: 2, timeOfDay: "19:00"},
		{date: tomorrow, mealType: mealplan.MealTypeBreakfast, mealIdx: 6, timeOfDay: "07:30"},
		{date: tomorrow, mealType: mealplan.MealTypeSnack, mealIdx: 3},
		{date: tomorrow, mealType: mealplan.MealTypeDinner, mealIdx: 7, timeOfDay: "18:45", notes: "Taco night"},
	}

	plans := make([]*mealplan.MealPlan, 0, len(rows))
	for _, r := range rows {
		plans = append(plans, mealplan.Restore(
			uuid.New(), r.date, r.mealType, meals[r.mealIdx].ID(),
			r.timeOfDay, r.notes, now, now,
		))
	}
	return plans
}

func demoConversations(now time.Time) []*chat.Conversation {
	oneHourAgo := now.Add(-time.Hour)
	oneDayAgo := now.Add(-24 * time.Hour)
	twoDaysAgo := now.Add(-48 * time.Hour)
	oneWeekAgo := now.Add(-7 * 24 * time.Hour)

	msg := func(role chat.Role, content string, at time.Time) chat.Message {
		return chat.Message{ID: uuid.New(), Role: role, Content: content, Timestamp: at}
	}

	return []*chat.Conversation{
		chat.Restore(uuid.New(), "Quick Breakfast Ideas", []chat.Message{
			msg(chat.RoleUser, "What are some quick breakfast ideas for busy mornings?", oneHourAgo.Add(-10*time.Second)),
			msg(chat.RoleAssistant, "Here are some quick breakfast ideas perfect for busy mornings:\n\n1. **Overnight Oats** - Prepare the night before with oats, milk, and your favorite toppings\n2. **Smoothie Bowl** - Blend fruits with yogurt and top with granola\n3. **Avocado Toast** - Quick, nutritious, and customizable\n4. **Greek Yogurt Parfait** - Layer yogurt with berries and granola\n5. **Egg Muffins** - Make a batch ahead and reheat as needed\n\nAll of these can be prepared in 5-10 minutes or made ahead!", oneHourAgo),
		}, true, oneHourAgo, oneHourAgo.Add(-10*time.Second)),

		chat.Restore(uuid.New(), "Meal Prep for the Week", []chat.Message{
			msg(chat.RoleUser, "How can I meal prep for a busy work week?", oneDayAgo.Add(-15*time.Second)),
			msg(chat.RoleAssistant, "Great question! Here's a simple meal prep strategy:\n\n**Sunday Prep:**\n- Cook a large batch of grains (rice, quinoa)\n- Roast vegetables (broccoli, sweet potatoes, peppers)\n- Grill or bake proteins (chicken, tofu, fish)\n- Prepare 2-3 sauces or dressings\n\n**Storage Tips:**\n- Use glass containers for better reheating\n- Store proteins separately from veggies to maintain freshness\n- Label everything with dates\n\n**Mix & Match:**\nCombine different proteins, grains, and veggies throughout the week for variety!", oneDayAgo.Add(-10*time.Second)),
			msg(chat.RoleUser, "How long will these meals stay fresh?", oneDayAgo.Add(-5*time.Second)),
			msg(chat.RoleAssistant, "Most meal prep foods will stay fresh for 3-4 days in the refrigerator. Here are some guidelines:\n\n- **Cooked grains**: 4-5 days\n- **Cooked chicken**: 3-4 days\n- **Roasted vegetables**: 3-4 days\n- **Raw cut vegetables**: 2-3 days\n- **Cooked fish**: 2-3 days\n\nFor longer storage, freeze portions in individual containers for up to 3 months!", oneDayAgo),
		}, true, oneDayAgo, oneDayAgo.Add(-15*time.Second)),

		chat.Restore(uuid.New(), "Vegetarian Dinner Options", []chat.Message{
			msg(chat.RoleUser, "I want to try more vegetarian dinners. Any suggestions?", twoDaysAgo.Add(-8*time.Second)),
			msg(chat.RoleAssistant, "Absolutely! Here are some delicious vegetarian dinner ideas:\n\n1. **Vegetable Stir-Fry** with tofu and rice\n2. **Lentil Curry** - hearty and flavorful\n3. **Stuffed Bell Peppers** with quinoa and black beans\n4. **Mushroom Risotto** - creamy and satisfying\n5. **Chickpea Tacos** with fresh toppings\n6. **Eggplant Parmesan** - classic Italian comfort food\n7. **Buddha Bowl** with roasted veggies, grains, and tahini sauce\n\nAll of these are protein-rich and incredibly satisfying!", twoDaysAgo),
		}, false, twoDaysAgo, twoDaysAgo.Add(-8*time.Second)),

		chat.Restore(uuid.New(), "Baking Tips for Beginners", []chat.Message{
			msg(chat.RoleUser, "I'm new to baking. What should I start with?", oneWeekAgo.Add(-12*time.Second)),
			msg(chat.RoleAssistant, "Welcome to the world of baking! Here are some beginner-friendly recipes to start with:\n\n**Easy Starters:**\n1. **Chocolate Chip Cookies** - Classic and forgiving\n2. **Banana Bread** - Hard to mess up and super moist\n3. **Brownies** - One-bowl wonder\n4. **Muffins** - Great for breakfast\n\n**Essential Tips:**\n- Measure ingredients accurately\n- Use room temperature eggs and butter (unless specified)\n- Don't overmix the batter\n- Preheat your oven fully\n- Invest in an oven thermometer\n\nStart with cookies - they're the most forgiving for beginners!", oneWeekAgo),
		}, false, oneWeekAgo, oneWeekAgo.Add(-12*time.Second)),
	}
}
