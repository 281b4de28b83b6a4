package handler

type ArticleResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	OriginLink  string `json:"origin_link"`
	Publication string `json:"publication"`
	PublishedAt string `json:"published_at"`
	Journalist  string `json:"journalist"`
}

type NewsResponse struct {
	Count    int               `json:"count"`
	Articles []ArticleResponse `json:"articles"`
}

type EmptyResponse struct {
	Error    string            `json:"error"`
	Message  string            `json:"message"`
	Articles []ArticleResponse `json:"articles"`
}

type InternalErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
