package models

// NewsItem is a normalized feed entry. All text is HTML-stripped and trimmed
// before it gets here; nothing in this shape is persisted.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewsResponse is the envelope returned by the news endpoint. Items is always
// present, possibly empty.
type NewsResponse struct {
	Items []NewsItem `json:"items"`
}
