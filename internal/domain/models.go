package domain

// Domain contains core models shared by the client, renderer and publishers.

// Article is a single headline as returned by the news API.
type Article struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
