package models

type Blog struct {
	ID     string `json:"id" bson:"_id"`
	Title  string `json:"title" bson:"title"`
	Author string `json:"author" bson:"author"`
	URL    string `json:"url" bson:"url"`
	Likes  int    `json:"likes" bson:"likes"`
	UserID string `json:"userId" bson:"userId"`
}

// BlogRef is the projection attached to users when listing them.
type BlogRef struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

func (b Blog) Ref() BlogRef {
	return BlogRef{ID: b.ID, Author: b.Author, Title: b.Title}
}
