package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:255;not null" json:"type"`
}

// DefaultCategories is the standard trivia category set, in id order.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}
