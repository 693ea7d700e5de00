package ui

import (
	"fmt"
	"strconv"
	"strings"

	"chirp/internal/models"
)

var rowSeparator = Dim(strings.Repeat("-", 50))

// ClearScreen clears the terminal using ANSI escape sequences
func ClearScreen() {
	fmt.Print("\033[2J\033[H")
}

// Banner displays the application banner and the exit-keyword hint
func Banner(exitKeyword string) {
	fmt.Println(Title("╔══════════════════════════════════════════╗"))
	fmt.Println(Title("║  Chirp - a tiny terminal social network  ║"))
	fmt.Println(Title("╚══════════════════════════════════════════╝"))
	fmt.Println(Dim(fmt.Sprintf("Type %q at any prompt (except passwords) to leave the application.", exitKeyword)))
}

// Heading prints a section heading
func Heading(title string) {
	fmt.Println(Section("\n=== " + title + " ==="))
}

// Menu prints a heading followed by 1-based numbered options
func Menu(title string, options []string) {
	Heading(title)
	for i, option := range options {
		fmt.Printf("%s %s\n", Highlight(fmt.Sprintf("%d.", i+1)), option)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func printTweetRows(rows []models.TweetRow) {
	for i, row := range rows {
		fmt.Printf("%s Type: %s, TID: %s, Date: %s, Time: %s\n",
			Highlight(fmt.Sprintf("%d.", i+1)), row.Kind, Highlight(strconv.Itoa(row.ID)), row.Date, row.Time)
		fmt.Printf("   Text: %s\n", row.Text)
		fmt.Printf("   Spam: %s\n", yesNo(row.Spam))
		fmt.Println(rowSeparator)
	}
}

// TweetPage renders one page of tweet rows under the given heading and
// reports whether the page had content. The pagination loop uses the
// report to decide between prompting and terminating.
func TweetPage(heading string) func(rows []models.TweetRow) bool {
	return func(rows []models.TweetRow) bool {
		if len(rows) == 0 {
			return false
		}
		Heading(heading)
		printTweetRows(rows)
		return true
	}
}

// UserPage renders one page of user rows under the given heading and
// reports whether the page had content.
func UserPage(heading string) func(rows []models.UserRow) bool {
	return func(rows []models.UserRow) bool {
		if len(rows) == 0 {
			return false
		}
		Heading(heading)
		for i, row := range rows {
			fmt.Printf("%s User ID: %s, Name: %s\n",
				Highlight(fmt.Sprintf("%d.", i+1)), Highlight(row.ID), row.Name)
		}
		return true
	}
}

// TweetStats renders the statistics block for one tweet
func TweetStats(tweetID int, retweets, replies int64) {
	Heading(fmt.Sprintf("Statistics for Tweet %d", tweetID))
	fmt.Printf("Retweets: %d\n", retweets)
	fmt.Printf("Replies: %d\n", replies)
}

// UserDetails renders a user's profile block: counts plus recent activity
func UserDetails(user models.UserRow, tweets, following, followers int64, recent []models.TweetRow) {
	Heading(fmt.Sprintf("User Details: %s (ID: %s)", user.Name, user.ID))
	fmt.Printf("Tweets: %d\n", tweets)
	fmt.Printf("Following: %d\n", following)
	fmt.Printf("Followers: %d\n", followers)
	if len(recent) == 0 {
		fmt.Println(Dim("\nNo recent tweets."))
		return
	}
	fmt.Println(Section("\nRecent Tweets:"))
	printTweetRows(recent)
}

// ListView pairs a favorite list's name with its member tweet ids in
// storage order.
type ListView struct {
	Name     string
	TweetIDs []int
}

// FavoriteLists renders all of a user's lists with their contents and
// reports whether the user had any.
func FavoriteLists(lists []ListView) bool {
	if len(lists) == 0 {
		return false
	}
	Heading("Your Favorite Lists")
	for i, list := range lists {
		ids := "Empty"
		if len(list.TweetIDs) > 0 {
			parts := make([]string, len(list.TweetIDs))
			for j, id := range list.TweetIDs {
				parts[j] = strconv.Itoa(id)
			}
			ids = strings.Join(parts, ", ")
		}
		fmt.Printf("%s %s: %s\n", Highlight(fmt.Sprintf("%d.", i+1)), list.Name, ids)
	}
	return true
}
