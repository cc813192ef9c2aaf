package model

// NewsItem is one headline consumed from the feed proxy
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pub_date"`
}

// EmergencyContact is one entry in the static emergency phone list
type EmergencyContact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Icon   string `json:"icon"`
}
