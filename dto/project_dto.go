package dto

// ProjectCreateRequest carries the fields accepted when creating a project.
// Title and Description are required; everything else defaults.
type ProjectCreateRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Category        string   `json:"category"`
	Technologies    []string `json:"technologies"`
	Image           string   `json:"image"`
	Gallery         []string `json:"gallery"`
	Client          string   `json:"client"`
	Year            string   `json:"year"`
	URL             string   `json:"url"`
	Featured        bool     `json:"featured"`
	Status          string   `json:"status"`
}

// ProjectUpdateRequest is a merge patch: submitted keys overwrite, omitted
// keys keep their stored value. The slug is recomputed only when Title is
// present.
type ProjectUpdateRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"fullDescription"`
	Category        *string   `json:"category"`
	Technologies    *[]string `json:"technologies"`
	Image           *string   `json:"image"`
	Gallery         *[]string `json:"gallery"`
	Client          *string   `json:"client"`
	Year            *string   `json:"year"`
	URL             *string   `json:"url"`
	Featured        *bool     `json:"featured"`
	Status          *string   `json:"status"`
}
