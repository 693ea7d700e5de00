package models

// FavoriteList is a named collection of tweets curated by one owner.
// Names are unique per owner.
type FavoriteList struct {
	OwnerID string `gorm:"column:owner_id;primaryKey"`
	Name    string `gorm:"column:name;primaryKey"`
}

// ListEntry records one tweet's membership in an owner's favorite list
type ListEntry struct {
	OwnerID  string `gorm:"column:owner_id;primaryKey"`
	ListName string `gorm:"column:list_name;primaryKey"`
	TweetID  int    `gorm:"column:tweet_id;primaryKey;autoIncrement:false"`
}

// CreateListRequest defines the payload for creating a favorite list
type CreateListRequest struct {
	Name string `validate:"required,max=49"`
}
