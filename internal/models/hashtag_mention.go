package models

// HashtagMention links a tweet to one literal #tag found in its text.
// Terms keep their leading '#' and original case; search lowercases both
// sides, so storage is case-sensitive and matching is not.
type HashtagMention struct {
	TweetID int    `gorm:"column:tweet_id;primaryKey;autoIncrement:false"`
	Term    string `gorm:"column:term;primaryKey"`
}
