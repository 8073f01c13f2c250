package services

import "lancelocker.dev/internal/models"

// DefaultLockerPath is where the locker document is read from unless configured otherwise
const DefaultLockerPath = "your_projects/locker.json"

const (
	defaultProfileName    = "Lance"
	defaultProfileTagline = "Manufacturing & Mechanical Engineering Portfolio"
)

// DefaultProfile returns the profile used when the document has none
func DefaultProfile() *models.Profile {
	return &models.Profile{
		Name:    defaultProfileName,
		Tagline: defaultProfileTagline,
		Chips:   []string{"CNC • Fixtures • DFM", "SolidWorks • GD&T • CAM"},
		Links: []models.Link{
			{Label: "Resume (PDF)", URL: "#"},
			{Label: "Email", URL: "mailto:lance@example.com"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/"},
			{Label: "GitHub", URL: "https://github.com/"},
		},
	}
}

// DefaultLocker returns the document served when the locker file cannot be read or parsed.
// A fresh copy is built on every call.
func DefaultLocker() *models.Locker {
	return &models.Locker{
		Profile: DefaultProfile(),
		Projects: []models.Project{
			{
				ID:      "example_project",
				Title:   "CNC Fixture Design",
				Tagline: "Workholding solution for aluminum machining",
				Model:   "your_projects/example_project.glb",
				Images:  []string{"your_projects/example_image.png"},
				Links: []models.Link{
					{Label: "Process Doc (PDF)", URL: "#"},
					{Label: "Manufacturing Plan", URL: "#"},
				},
				Facts: []models.Fact{
					{Key: "Role", Value: "Manufacturing Engineer"},
					{Key: "Highlights", Value: "Doweling scheme, quick swap jaws, op1→op2 repeatability"},
				},
				Tags:    []string{"Fixture", "CNC"},
				Summary: "Designed, machined, and validated a modular fixture for small-batch aluminum parts with a focus on rigidity, chip evacuation, and rapid changeover.",
			},
		},
	}
}
