// Package profile holds the static content of the page. Every call to Default
// builds fresh tables, so callers can't alter what others see.
package profile

// Person is the subject of the page.
type Person struct {
	Name        string
	Headline    string
	Credentials string
	Lab         string
	Affiliation []string
	Portrait    string
	Email       string
	Telephone   string
}

// Stat is a headline number shown under the hero.
type Stat struct {
	Value string
	Label string
	Icon  string
}

// ResearchInterest is one card of the research section.
type ResearchInterest struct {
	Icon        string
	Title       string
	Description string
	Accent      string
}

// AcademicEntry is one position or degree of the academic background.
type AcademicEntry struct {
	Badge    string
	Title    string
	Subtitle string
	Location string
	Extra    string
	Color    string
}

// Project is a completed or running research project.
type Project struct {
	Name   string
	Status string
}

// GuidanceStat summarizes student supervision.
type GuidanceStat struct {
	Value  string
	Label  string
	Detail string
}

// ChannelKind distinguishes how a contact channel is opened.
type ChannelKind string

const (
	ChannelPhone   ChannelKind = "phone"
	ChannelEmail   ChannelKind = "email"
	ChannelProfile ChannelKind = "profile"
)

// ContactChannel is a plain link the visitor can follow. Channels are inert
// data; nothing validates them.
type ContactChannel struct {
	Kind     ChannelKind
	Label    string
	Display  string
	Href     string
	External bool
}

// ExternalLink opens in a new tab.
type ExternalLink struct {
	Label string
	Href  string
}

// Publications describes the publications card.
type Publications struct {
	Count   int
	Summary []string
	Links   []ExternalLink
}

// Profile is all content of the page.
type Profile struct {
	Person        Person
	Links         []ExternalLink
	Stats         []Stat
	About         string // Markdown
	Research      []ResearchInterest
	Academic      []AcademicEntry
	Publications  Publications
	Projects      []Project
	Guidance      []GuidanceStat
	Conferences   string
	Contact       []ContactChannel
	Address       []string
	FooterTagline string
}

const (
	ScholarURL    = "https://scholar.google.com/citations?user=fDrpWdkAAAAJ&hl=en&oi=ao"
	UniversityURL = "https://svuniversity.edu.in/college_of_science/dr-t-madhusudana-reddy-2"
	StockPortrait = "https://images.unsplash.com/photo-1659353887617-8cf154b312c5?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
)

const about = `Prof. T. Madhusudana Reddy is a distinguished Professor in the Department of Chemistry at Sri Venkateswara University, Tirupati, Andhra Pradesh, India. He obtained his M.Sc degree in 1999 with Physical Chemistry as specialization and later carried his research on *"Chemically modified electrodes"* for obtaining his Ph.D degree in the year 2005.

Prof. Reddy teaches Electrochemistry to the PG students and his research mainly focuses in the field of Electrochemistry. Presently he is working on **Electrochemical sensors and Biosensors**. He has published 73 research articles in international journals and has 21 years of research and 19 years of teaching experience.

During 2005-2007, he worked as Postdoctoral Researcher at *"Chimie, Electrochimie Moléculaires et Chimie Analytique"* CNRS, UMR 6521, Université de Bretagne Occidentale, Brest, France. During 2015-2016, he was awarded with Raman Fellowship by UGC to visit USA to carry out research at the Department of Chemistry, University of Minnesota, Minneapolis, USA.

He visited France, Spain and USA for attending conferences. He has successfully completed two major research projects (UGC-MRP and DST-Fast Track Project).

Under his guidance 9 Ph.D's and 1 M.Phil. degrees were awarded. Presently seven Ph.D scholars and two M.Phil. students are working for their degrees under his supervision.
`

// Default returns the compiled-in profile.
func Default() Profile {
	return Profile{
		Person: Person{
			Name:        "Prof. T. Madhusudana Reddy",
			Headline:    "Professor of Chemistry",
			Credentials: "Ph.D., PDF (France), UGC-Raman Fellow (USA)",
			Lab:         "Electrochemical Research Laboratory",
			Affiliation: []string{
				"Department of Chemistry",
				"S. V. U. College of Sciences",
				"Sri Venkateswara University",
			},
			Portrait:  StockPortrait,
			Email:     "tmsreddysvu@gmail.com",
			Telephone: "+91-9441088587",
		},
		Links: []ExternalLink{
			{Label: "Google Scholar", Href: ScholarURL},
			{Label: "University Profile", Href: UniversityURL},
		},
		Stats: []Stat{
			{Value: "21", Label: "Years Research", Icon: "🔬"},
			{Value: "73", Label: "Publications", Icon: "📚"},
			{Value: "10", Label: "Degrees Awarded", Icon: "🎓"},
			{Value: "19", Label: "Years Teaching", Icon: "👨‍🏫"},
		},
		About: about,
		Research: []ResearchInterest{
			{Icon: "⚡", Title: "Electrochemical Sensors", Accent: "blue",
				Description: "Development of novel electrochemical sensors for detection of environmental pollutants and biomarkers."},
			{Icon: "🧬", Title: "Biosensors", Accent: "green",
				Description: "Design and fabrication of biosensors for medical diagnostics and food safety applications."},
			{Icon: "🔋", Title: "Battery Materials", Accent: "purple",
				Description: "Research on advanced materials for battery applications and energy storage systems."},
			{Icon: "⚛️", Title: "Nanomaterials", Accent: "yellow",
				Description: "Synthesis and characterization of nanomaterials for electrochemical applications."},
			{Icon: "🌍", Title: "Environmental Analysis", Accent: "red",
				Description: "Electrochemical methods for environmental monitoring and pollution control."},
			{Icon: "💊", Title: "Pharmaceutical Analysis", Accent: "indigo",
				Description: "Electroanalytical techniques for pharmaceutical drug analysis and quality control."},
		},
		Academic: []AcademicEntry{
			{Badge: "P", Title: "Professor", Color: "blue",
				Subtitle: "Department of Chemistry, Sri Venkateswara University",
				Location: "Tirupati, Andhra Pradesh, India",
				Extra:    "Electrochemical Research Laboratory"},
			{Badge: "RF", Title: "UGC-Raman Fellow (2015-2016)", Color: "green",
				Subtitle: "Department of Chemistry, University of Minnesota",
				Location: "Minneapolis, USA"},
			{Badge: "PDF", Title: "Postdoctoral Researcher (2005-2007)", Color: "purple",
				Subtitle: "CNRS, UMR 6521, Université de Bretagne Occidentale",
				Location: "Brest, France",
				Extra:    "Chimie, Electrochimie Moléculaires et Chimie Analytique"},
			{Badge: "PhD", Title: "Doctor of Philosophy (2005)", Color: "yellow",
				Subtitle: "Chemistry",
				Location: `Research on "Chemically modified electrodes"`},
			{Badge: "MSc", Title: "Master of Science (1999)", Color: "orange",
				Subtitle: "Chemistry",
				Location: "Specialization in Physical Chemistry"},
		},
		Publications: Publications{
			Count: 73,
			Summary: []string{
				"Prof. T. Madhusudana Reddy has published 73 research articles in leading international journals in the field of electrochemistry, analytical chemistry, and nanomaterials.",
				"His research papers have been cited numerous times, reflecting the significant impact of his work on the scientific community.",
			},
			Links: []ExternalLink{
				{Label: "View on Google Scholar", Href: ScholarURL},
				{Label: "Complete Publications", Href: UniversityURL},
			},
		},
		Projects: []Project{
			{Name: "UGC Major Research Project", Status: "Successfully completed"},
			{Name: "DST-Fast Track Project", Status: "Successfully completed"},
		},
		Guidance: []GuidanceStat{
			{Value: "10", Label: "Degrees Awarded", Detail: "9 Ph.D & 1 M.Phil."},
			{Value: "9", Label: "Currently Guiding", Detail: "7 Ph.D & 2 M.Phil. scholars"},
		},
		Conferences: "Prof. Reddy has participated in several international conferences, visiting France, Spain, and the USA to present his research and collaborate with international researchers in the field of electrochemistry.",
		Contact: []ContactChannel{
			{Kind: ChannelPhone, Label: "Phone", Display: "+91-9441088587", Href: "tel:+919441088587"},
			{Kind: ChannelEmail, Label: "Email", Display: "tmsreddysvu@gmail.com", Href: "mailto:tmsreddysvu@gmail.com"},
			{Kind: ChannelProfile, Label: "University Profile", Display: "View Profile", Href: UniversityURL, External: true},
		},
		Address: []string{
			"Electrochemical Research Laboratory",
			"Department of Chemistry",
			"S. V. U. College of Sciences",
			"Sri Venkateswara University",
			"Tirupati - 517502",
			"Andhra Pradesh, INDIA",
		},
		FooterTagline: "Electrochemical Research Laboratory | Sri Venkateswara University",
	}
}
