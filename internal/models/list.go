package models

// Aggregations over blog lists, used by the stats endpoint and reports.

func Dummy(blogs []Blog) int { return 1 }

func TotalLikes(blogs []Blog) int {
	sum := 0
	for _, b := range blogs {
		sum += b.Likes
	}
	return sum
}

// FavoriteBlog returns the blog with the most likes. Ties resolve to the
// first maximal entry; the second return is false for an empty list.
func FavoriteBlog(blogs []Blog) (Blog, bool) {
	if len(blogs) == 0 {
		return Blog{}, false
	}
	fav := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > fav.Likes {
			fav = b
		}
	}
	return fav, true
}
