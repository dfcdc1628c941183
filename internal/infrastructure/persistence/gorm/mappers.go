// Package gorm: mapping between domain entities and GORM models
package gorm

import (
	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/domain/user"
)

// MealToModel converts a domain meal to a GORM model
func MealToModel(m *meal.Meal) *MealModel {
	return &MealModel{
		ID:              m.ID(),
		Title:           m.Title(),
		Description:     m.Description(),
		Category:        string(m.Category()),
		PrepTimeMinutes: m.PrepTime(),
		CookTimeMinutes: m.CookTime(),
		ServingSize:     m.ServingSize(),
		Instructions:    StringSlice(m.Instructions()),
		ImageURL:        m.ImageURL(),
		CreatedAt:       m.CreatedAt(),
		UpdatedAt:       m.UpdatedAt(),
	}
}

// ModelToMeal converts a GORM model to a domain meal
func ModelToMeal(model *MealModel) *meal.Meal {
	return meal.Restore(
		model.ID,
		model.Title,
		model.Description,
		meal.Category(model.Category),
		model.PrepTimeMinutes,
		model.CookTimeMinutes,
		model.ServingSize,
		[]string(model.Instructions),
		model.ImageURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// PlanToModel converts a domain meal plan to a GORM model
func PlanToModel(p *mealplan.MealPlan) *MealPlanModel {
	return &MealPlanModel{
		ID:        p.ID(),
		MealID:    p.MealID(),
		Date:      p.Date(),
		MealType:  string(p.MealType()),
		TimeOfDay: p.TimeOfDay(),
		Notes:     p.Notes(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

// ModelToPlan converts a GORM model to a domain meal plan
func ModelToPlan(model *MealPlanModel) *mealplan.MealPlan {
	return mealplan.Restore(
		model.ID,
		model.Date,
		mealplan.MealType(model.MealType),
		model.MealID,
		model.TimeOfDay,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// IngredientToModel converts a domain ingredient to a GORM model
func IngredientToModel(i *ingredient.Ingredient) *IngredientModel {
	nutrients := i.Nutrients()
	products := make(ProductSlice, 0, len(i.Products()))
	for _, p := range i.Products() {
		products = append(products, ProductRecord{
			ID:       p.ID,
			Retailer: p.Retailer,
			Label:    p.Label,
			Cost:     p.Cost,
			Servings: p.Servings,
			URL:      p.URL,
		})
	}

	return &IngredientModel{
		ID:       i.ID(),
		Name:     i.Name(),
		Type:     string(i.Type()),
		ImageURL: i.ImageURL(),
		Nutrients: NutrientsModel{
			Protein:  nutrients.Protein,
			Carbs:    nutrients.Carbs,
			Fat:      nutrients.Fat,
			Fiber:    nutrients.Fiber,
			Sugar:    nutrients.Sugar,
			Sodium:   nutrients.Sodium,
			Calories: nutrients.Calories,
		},
		CurrentAmount:    i.CurrentAmount(),
		ServingSize:      i.ServingSize(),
		Unit:             string(i.Unit()),
		OtherUnit:        i.OtherUnit(),
		Products:         products,
		DefaultProductID: i.DefaultProductID(),
		CreatedAt:        i.CreatedAt(),
		UpdatedAt:        i.UpdatedAt(),
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(model *IngredientModel) *ingredient.Ingredient {
	products := make([]ingredient.Product, 0, len(model.Products))
	for _, p := range model.Products {
		products = append(products, ingredient.Product{
			ID:       p.ID,
			Retailer: p.Retailer,
			Label:    p.Label,
			Cost:     p.Cost,
			Servings: p.Servings,
			URL:      p.URL,
		})
	}

	return ingredient.Restore(
		model.ID,
		model.Name,
		ingredient.Type(model.Type),
		model.ImageURL,
		ingredient.NutrientProfile{
			Protein:  model.Nutrients.Protein,
			Carbs:    model.Nutrients.Carbs,
			Fat:      model.Nutrients.Fat,
			Fiber:    model.Nutrients.Fiber,
			Sugar:    model.Nutrients.Sugar,
			Sodium:   model.Nutrients.Sodium,
			Calories: model.Nutrients.Calories,
		},
		model.CurrentAmount,
		model.ServingSize,
		ingredient.Unit(model.Unit),
		model.OtherUnit,
		products,
		model.DefaultProductID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ConversationToModel converts a domain conversation to a GORM model
func ConversationToModel(c *chat.Conversation) *ConversationModel {
	messages := make(MessageSlice, 0, len(c.Messages()))
	for _, m := range c.Messages() {
		messages = append(messages, MessageRecord{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}

	return &ConversationModel{
		ID:          c.ID(),
		Title:       c.Title(),
		Pinned:      c.Pinned(),
		Messages:    messages,
		LastUpdated: c.LastUpdated(),
		CreatedAt:   c.CreatedAt(),
	}
}

// ModelToConversation converts a GORM model to a domain conversation
func ModelToConversation(model *ConversationModel) *chat.Conversation {
	messages := make([]chat.Message, 0, len(model.Messages))
	for _, m := range model.Messages {
		messages = append(messages, chat.Message{
			ID:        m.ID,
			Role:      chat.Role(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}

	return chat.Restore(
		model.ID,
		model.Title,
		messages,
		model.Pinned,
		model.LastUpdated,
		model.CreatedAt,
	)
}

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:            u.ID(),
		Email:         u.Email(),
		PasswordHash:  u.PasswordHash(),
		Provider:      string(u.Provider()),
		EmailVerified: u.EmailVerified(),
		CreatedAt:     u.CreatedAt(),
		LastLoginAt:   u.LastLoginAt(),
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(model *UserModel) *user.User {
	return user.Restore(
		model.ID,
		model.Email,
		model.PasswordHash,
		user.Provider(model.Provider),
		model.EmailVerified,
		model.CreatedAt,
		model.LastLoginAt,
	)
}
