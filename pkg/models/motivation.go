package models

type ContentType string

const (
	ContentQuote   ContentType = "quote"
	ContentArticle ContentType = "article"
	ContentVideo   ContentType = "video"
	ContentPodcast ContentType = "podcast"
)

type MotivationalContent struct {
	ID       string      `json:"id"`
	Type     ContentType `json:"type"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Author   string      `json:"author,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
	URL      string      `json:"url,omitempty"`
	Category string      `json:"category"`
}

type ContentInput struct {
	Type     ContentType `json:"type"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Author   string      `json:"author,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
	URL      string      `json:"url,omitempty"`
	Category string      `json:"category"`
}

type ContentPatch struct {
	Type     *ContentType `json:"type,omitempty"`
	Title    *string      `json:"title,omitempty"`
	Content  *string      `json:"content,omitempty"`
	Author   *string      `json:"author,omitempty"`
	ImageURL *string      `json:"image_url,omitempty"`
	URL      *string      `json:"url,omitempty"`
	Category *string      `json:"category,omitempty"`
}

func (p ContentPatch) Apply(c *MotivationalContent) {
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.Author != nil {
		c.Author = *p.Author
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	if p.URL != nil {
		c.URL = *p.URL
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
}
