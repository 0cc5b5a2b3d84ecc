package models

import (
	"time"
)

type Category string

const (
	CategorySpecialtyCoffee   Category = "specialty_coffee"
	CategoryTraditionalCoffee Category = "traditional_coffee"
	CategoryColdBeverages     Category = "cold_beverages"
	CategoryPastries          Category = "pastries"
	CategoryBreakfast         Category = "breakfast"
	CategorySnacks            Category = "snacks"
)

var Categories = []Category{
	CategorySpecialtyCoffee,
	CategoryTraditionalCoffee,
	CategoryColdBeverages,
	CategoryPastries,
	CategoryBreakfast,
	CategorySnacks,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem is the stored menu document. Documents are addressed by ID, the
// store's own _id is never exposed.
type MenuItem struct {
	ID            string    `json:"id" bson:"id" validate:"required"`
	Name          string    `json:"name" bson:"name"`
	NameAr        string    `json:"name_ar" bson:"name_ar"`
	Description   string    `json:"description" bson:"description"`
	DescriptionAr string    `json:"description_ar" bson:"description_ar"`
	Price         float64   `json:"price" bson:"price" validate:"gte=0"`
	Category      Category  `json:"category" bson:"category" validate:"menu_category"`
	ImageURL      *string   `json:"image_url" bson:"image_url"`
	Available     bool      `json:"available" bson:"available"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// MenuItemCreate is the request body for both create and full update.
// Fields are pointers so a missing field can be told apart from a zero
// value: "required" checks presence only and an empty string is accepted.
type MenuItemCreate struct {
	Name          *string  `json:"name" validate:"required"`
	NameAr        *string  `json:"name_ar" validate:"required"`
	Description   *string  `json:"description" validate:"required"`
	DescriptionAr *string  `json:"description_ar" validate:"required"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	Category      Category `json:"category" validate:"required,menu_category"`
	ImageURL      *string  `json:"image_url"`
	Available     *bool    `json:"available"`
}

func (in MenuItemCreate) IsAvailable() bool {
	if in.Available == nil {
		return true
	}
	return *in.Available
}

// Apply copies every mutable field of the input onto item.
func (in MenuItemCreate) Apply(item *MenuItem) {
	item.Name = deref(in.Name)
	item.NameAr = deref(in.NameAr)
	item.Description = deref(in.Description)
	item.DescriptionAr = deref(in.DescriptionAr)
	if in.Price != nil {
		item.Price = *in.Price
	}
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.Available = in.IsAvailable()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
