package models

// Skill is a single entry on the skills grid, grouped by category.
type Skill struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency int     `json:"proficiency"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type SkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Project struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	LongDescription *string `json:"long_description"`
	ImageURL        *string `json:"image_url"`
	ImagePublicID   *string `json:"image_public_id"`
	LiveURL         *string `json:"live_url"`
	GithubURL       *string `json:"github_url"`
	Technologies    *string `json:"technologies"`
	TechnicalSkills *string `json:"technical_skills"`
	Category        string  `json:"category"`
	Featured        BoolInt `json:"featured"`
	CreatedAt       string  `json:"created_at"`
}

type ProjectRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	LongDescription string `json:"long_description"`
	ImageURL        string `json:"image_url"`
	ImagePublicID   string `json:"image_public_id"`
	LiveURL         string `json:"live_url"`
	GithubURL       string `json:"github_url"`
	Technologies    string `json:"technologies"`
	TechnicalSkills string `json:"technical_skills"`
	Category        string `json:"category" binding:"required"`
	Featured        bool   `json:"featured"`
}

// ProjectCounts backs the public project counter widget.
type ProjectCounts struct {
	Total      int             `json:"total"`
	Featured   int             `json:"featured"`
	Categories []CategoryCount `json:"categories"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Experience struct {
	ID           int     `json:"id"`
	Company      string  `json:"company"`
	Position     string  `json:"position"`
	Description  string  `json:"description"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Current      BoolInt `json:"current"`
	Technologies *string `json:"technologies"`
	Achievements *string `json:"achievements"`
	CreatedAt    string  `json:"created_at"`
}

type ExperienceRequest struct {
	Company      string  `json:"company" binding:"required"`
	Position     string  `json:"position" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      *string `json:"end_date"`
	Current      bool    `json:"current"`
	Technologies string  `json:"technologies"`
	Achievements string  `json:"achievements"`
}

// AboutSection is one named block of the about page. The section name is
// unique, so writes are upserts keyed on it.
type AboutSection struct {
	ID        int     `json:"id"`
	Section   string  `json:"section"`
	Title     *string `json:"title"`
	Content   string  `json:"content"`
	UpdatedAt string  `json:"updated_at"`
}

type AboutSectionRequest struct {
	Section string `json:"section" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// Stat is a configurable headline number shown on the landing page.
type Stat struct {
	ID           int     `json:"id"`
	Key          string  `json:"key"`
	Value        string  `json:"value"`
	Label        string  `json:"label"`
	Color        *string `json:"color"`
	DisplayOrder int     `json:"display_order"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type StatRequest struct {
	Key          string `json:"key" binding:"required"`
	Value        string `json:"value" binding:"required"`
	Label        string `json:"label" binding:"required"`
	Color        string `json:"color"`
	DisplayOrder int    `json:"display_order"`
}

type ContactMessage struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	Read      BoolInt `json:"read"`
	CreatedAt string  `json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactReadRequest struct {
	Read *bool `json:"read" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
