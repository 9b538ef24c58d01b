// Package content holds the static portfolio data the UI renders.
package content

// Profile is the page owner's header and contact block.
type Profile struct {
	Name         string `json:"name"`
	Initials     string `json:"initials"`
	Title        string `json:"title"`
	Tagline      string `json:"tagline"`
	Summary      string `json:"summary"`
	Availability string `json:"availability"`
	Prompt       string `json:"prompt"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	GitHub       string `json:"github"`
	LinkedIn     string `json:"linkedin"`
}

// Metric is one headline number.
type Metric struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// Recommendation is a quote shown by the carousel.
type Recommendation struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
}

// Skill is one entry of a skill category.
type Skill struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience string `json:"experience"`
	RealWork   string `json:"real_work"`
}

// SkillCategory is one tab of the skills panel.
type SkillCategory struct {
	Key   string  `json:"key"`
	Title string  `json:"title"`
	Color string  `json:"color"`
	Items []Skill `json:"items"`
}

// KeyValue keeps metric tables in display order.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Enterprise is one employer.
type Enterprise struct {
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Period    string     `json:"period"`
	Location  string     `json:"location"`
	Type      string     `json:"type"`
	Impact    []string   `json:"impact"`
	TechStack []string   `json:"tech_stack"`
	Metrics   []KeyValue `json:"metrics"`
}

// Project is one client project.
type Project struct {
	Name         string     `json:"name"`
	Client       string     `json:"client"`
	Scale        string     `json:"scale"`
	Description  string     `json:"description"`
	TechStack    []string   `json:"tech_stack"`
	Achievements []string   `json:"achievements"`
	Metrics      []KeyValue `json:"metrics"`
}

// Exploration is a technology currently being explored.
type Exploration struct {
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SideProject is a hobby project.
type SideProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// StatImage is an externally hosted statistics card.
type StatImage struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Portfolio is the whole page.
type Portfolio struct {
	Profile         Profile          `json:"profile"`
	Commands        []string         `json:"commands"`
	Metrics         []Metric         `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
	Skills          []SkillCategory  `json:"skills"`
	Enterprises     []Enterprise     `json:"enterprises"`
	Projects        []Project        `json:"projects"`
	Explorations    []Exploration    `json:"explorations"`
	SideProjects    []SideProject    `json:"side_projects"`
	StatImages      []StatImage      `json:"stat_images"`
}

// Default returns a fresh copy of the built-in portfolio.
func Default() Portfolio {
	return Portfolio{
		Profile:         profile,
		Commands:        append([]string(nil), commands...),
		Metrics:         append([]Metric(nil), metrics...),
		Recommendations: append([]Recommendation(nil), recommendations...),
		Skills:          append([]SkillCategory(nil), skills...),
		Enterprises:     append([]Enterprise(nil), enterprises...),
		Projects:        append([]Project(nil), projects...),
		Explorations:    append([]Exploration(nil), explorations...),
		SideProjects:    append([]SideProject(nil), sideProjects...),
		StatImages:      append([]StatImage(nil), statImages...),
	}
}

// MailtoURL is the profile email as a mailto link.
func (p Profile) MailtoURL() string { return "mailto:" + p.Email }

// TelURL is the profile phone as a tel link.
func (p Profile) TelURL() string { return "tel:" + p.Phone }
