// Package content holds the portfolio copy and the records the content store
// is seeded with. Both the web and terminal hosts render from it.
package content

var (
	About = `Developer who enjoys turning rough ideas into tools people actually use.
	Most projects start small, a script or a weekend prototype, and grow into a chance
	to learn a new stack, dig into networking, or chase down a tricky bug.
	Away from the keyboard I am usually reading about security or breaking and fixing my home lab.`

	Highlights = []Highlight{
		{Title: "Full-Stack Development", Description: "Web services and interfaces from the database up to the browser."},
		{Title: "Network Security", Description: "Port scanning, vulnerability assessment and hardening of small networks."},
		{Title: "Performance", Description: "Profiling first, then removing the work nobody needed."},
	}

	Tagline = `Building secure, fast and friendly software.`
)

// Highlight is a short About page card.
type Highlight struct {
	Title       string
	Description string
}

// Skill is a single skill with a proficiency between 0 and 100.
type Skill struct {
	Name  string
	Level int
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Title  string
	Skills []Skill
}

// Project is a portfolio entry, looked up by ID from /projects/:id.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Tagline         string   `json:"tagline"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	Tech            []string `json:"tech"`
	Features        []string `json:"features,omitempty"`
	Github          string   `json:"github,omitempty"`
	Demo            string   `json:"demo,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`
}

// Certification types.
const (
	CertGlobal      = "global"
	CertGeneral     = "general"
	CertCompetition = "competition"
)

// Certification is an earned certificate with a link to its proof.
type Certification struct {
	Name   string `json:"name"`
	Link   string `json:"link"`
	Type   string `json:"type"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Experience is a position, looked up by ID from /experience/:id.
type Experience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Period           string   `json:"period"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Tech             []string `json:"tech"`
	CertificateName  string   `json:"certificate_name,omitempty"`
	CertificateLink  string   `json:"certificate_link,omitempty"`
}

// SkillGroups is the Skills page, in display order.
var SkillGroups = []SkillGroup{
	{Title: "Frontend", Skills: []Skill{{"HTMX", 85}, {"TypeScript", 80}, {"CSS/Tailwind", 88}}},
	{Title: "Backend", Skills: []Skill{{"Go", 90}, {"Python", 82}, {"SQL", 84}}},
	{Title: "Tools & Platforms", Skills: []Skill{{"Docker", 83}, {"Linux", 90}, {"Git", 93}}},
}

// Projects is the project seed, in display order.
var Projects = []Project{
	{
		ID:              "cybersec",
		Title:           "CyberSec",
		Tagline:         "CLI and web UI port scanner with AI-assisted analysis",
		Description:     "Network analysis and vulnerability assessment with a browser dashboard.",
		LongDescription: "Combines a scriptable command line scanner with a web dashboard. Results are scored for likely vulnerabilities and exported as reports.",
		Tech:            []string{"Python", "FastAPI", "React", "Docker"},
		Features: []string{
			"Multi-threaded port scanning with tunable profiles",
			"Vulnerability hints for discovered services",
			"Report export",
		},
		Github:    "https://github.com/example/cybersec",
		CreatedAt: "2023-01-15",
	},
	{
		ID:          "portfolio",
		Title:       "Portfolio",
		Tagline:     "This site",
		Description: "Server-rendered portfolio with a radial navigation menu driven by HTMX.",
		Tech:        []string{"Go", "Gin", "HTMX", "SQLite"},
		Features: []string{
			"Radial menu laid out on the server from the browser viewport",
			"Privacy-conscious visitor statistics",
		},
		CreatedAt: "2025-06-01",
	},
}

var Certifications = []Certification{
	{Name: "DevOps Professional", Link: "https://example.com/certs/devops", Type: CertGlobal, Issuer: "Oracle University", Date: "2025-10-13"},
	{Name: "Developer Professional", Link: "https://example.com/certs/developer", Type: CertGlobal, Issuer: "Oracle University", Date: "2025-09-22"},
	{Name: "Generative AI Professional", Link: "https://example.com/certs/genai", Type: CertGlobal, Issuer: "Oracle University", Date: "2025-08-20"},
	{Name: "Capture The Flag Finalist", Link: "https://example.com/certs/ctf", Type: CertCompetition, Issuer: "Campus Security Club", Date: "2024-03-02"},
}

var Experiences = []Experience{
	{
		ID:          "cisco-aicte",
		Company:     "AICTE - Cisco",
		Position:    "Network Engineer (virtual internship)",
		Period:      "Sept 2024 - Nov 2024",
		Location:    "Remote",
		Description: "Designed and maintained network infrastructure for educational institutions.",
		Responsibilities: []string{
			"Built lab topologies for routed campus networks",
			"Ran security audits with packet captures",
			"Documented VLAN and firewall configurations",
		},
		Tech:            []string{"Cisco IOS", "OSPF", "VLAN", "Wireshark"},
		CertificateName: "Cisco AICTE Virtual Internship",
		CertificateLink: "https://example.com/certs/cisco-aicte",
	},
}
