package domain

// Quote is a motivational quote shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Quotes is the fixed quote set.
var Quotes = []Quote{
	{Text: "The only bad workout is the one that didn't happen.", Author: "Unknown"},
	{Text: "Your body can stand almost anything. It's your mind you have to convince.", Author: "Unknown"},
	{Text: "Strength does not come from the physical capacity. It comes from an indomitable will.", Author: "Mahatma Gandhi"},
	{Text: "The difference between the impossible and the possible lies in determination.", Author: "Tommy Lasorda"},
	{Text: "Don't wish for it. Work for it.", Author: "Unknown"},
}

// InitialQuote is shown before the first random pick.
var InitialQuote = Quotes[1]
