package models

// Follow represents a follower -> followee edge
type Follow struct {
	FollowerID string `gorm:"column:follower_id;primaryKey"`
	FolloweeID string `gorm:"column:followee_id;primaryKey"`
	StartDate  string `gorm:"column:start_date;not null"`
}
