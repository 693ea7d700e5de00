package models

// Retweet represents a retweet edge pointing back at the original tweet.
// The edge carries a date but no time; spam retweets are excluded from
// feeds and statistics.
type Retweet struct {
	TweetID     int    `gorm:"column:tweet_id;primaryKey;autoIncrement:false"`
	RetweeterID string `gorm:"column:retweeter_id;primaryKey"`
	WriterID    string `gorm:"column:writer_id;not null"`
	Spam        bool   `gorm:"column:spam;not null"`
	Date        string `gorm:"column:date;not null"`
}
