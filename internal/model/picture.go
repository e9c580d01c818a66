package model

import "time"

// Picture represents a picture document in the pictures collection.
type Picture struct {
	ID          string    `bson:"_id" json:"_id"`
	Title       string    `bson:"title" json:"title"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	Name        string    `bson:"name" json:"name"`
	Filename    string    `bson:"filename" json:"filename"`
	Description string    `bson:"description" json:"description"`
	CreatorID   string    `bson:"creator_id" json:"creator_id"`
	MoneyMade   float64   `bson:"money_made" json:"money_made"`
	Likes       int       `bson:"likes" json:"likes"`
	CreatedDate time.Time `bson:"created_date" json:"created_date"`
}
