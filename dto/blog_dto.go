package dto

// BlogCreateRequest carries the fields accepted when creating a blog post.
// Title and Content are required.
type BlogCreateRequest struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
	Author   string   `json:"author"`
	Status   string   `json:"status"`
}

// BlogUpdateRequest is a merge patch over an existing post
type BlogUpdateRequest struct {
	Title    *string   `json:"title"`
	Excerpt  *string   `json:"excerpt"`
	Content  *string   `json:"content"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
	Image    *string   `json:"image"`
	Author   *string   `json:"author"`
	Status   *string   `json:"status"`
}
