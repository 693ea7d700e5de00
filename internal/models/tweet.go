package models

// Row kinds reported by the feed, search, and recent-tweet queries.
const (
	KindTweet   = "tweet"
	KindRetweet = "retweet"
)

// Tweet represents a posted message
type Tweet struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement:false"` // allocated as max+1, never by the store
	WriterID string `gorm:"column:writer_id;not null;index"`
	Text     string `gorm:"column:text;not null"`
	Date     string `gorm:"column:date;not null"` // YYYY-MM-DD
	Time     string `gorm:"column:time;not null"` // HH:MM:SS
	ReplyTo  *int   `gorm:"column:reply_to"`
}

// TweetRow is the display row produced by feed, search, and recent-tweet
// queries. On a retweet row in a recent-tweets listing, Date is the retweet
// date while Time is the original tweet's time.
type TweetRow struct {
	Kind string
	ID   int
	Date string
	Time string
	Text string
	Spam bool
}

// ComposeTweetRequest defines the payload for a new tweet or reply
type ComposeTweetRequest struct {
	Text string `validate:"required,max=280"`
}
