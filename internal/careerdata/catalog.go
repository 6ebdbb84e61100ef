package careerdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Detail 职业详情静态条目
type Detail struct {
	Description    string   `yaml:"description" json:"description"`
	SkillsRequired []string `yaml:"skills_required" json:"skills_required"`
	Education      string   `yaml:"education" json:"education"`
	SalaryRange    string   `yaml:"salary_range" json:"salary_range"`
	JobOutlook     string   `yaml:"job_outlook" json:"job_outlook"`
	Companies      []string `yaml:"companies" json:"companies"`
	Courses        []string `yaml:"courses" json:"courses"`
}

// Course 课程条目
type Course struct {
	Name        string   `yaml:"name" json:"name"`
	Duration    string   `yaml:"duration" json:"duration"`
	Eligibility string   `yaml:"eligibility" json:"eligibility"`
	Fees        string   `yaml:"fees" json:"fees"`
	Careers     []string `yaml:"careers" json:"careers"`
}

// Skill 技能条目
type Skill struct {
	Name        string   `yaml:"name" json:"name"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
	Careers     []string `yaml:"careers" json:"careers"`
}

// AlternativePath 低分段工科方向的替代升学路径子项
type AlternativePath struct {
	Name         string `yaml:"name" json:"name"`
	Description  string `yaml:"description" json:"description"`
	Eligibility  string `yaml:"eligibility" json:"eligibility"`
	Duration     string `yaml:"duration" json:"duration"`
	Fees         string `yaml:"fees" json:"fees"`
	JobProspects string `yaml:"job_prospects" json:"job_prospects"`
}

// Catalog 职业参考数据总表。加载后只读，热更新时整体替换
type Catalog struct {
	Careers          map[string]Detail `yaml:"careers"`
	Courses          []Course          `yaml:"courses"`
	Skills           []Skill           `yaml:"skills"`
	AlternativePaths []AlternativePath `yaml:"alternative_paths"`
}

// DetailFor 按标签查详情，未知标签返回兜底记录而非报错
func (c *Catalog) DetailFor(name string) Detail {
	if d, ok := c.Careers[name]; ok {
		return d
	}
	return defaultDetail()
}

func defaultDetail() Detail {
	return Detail{
		Description:    "Career information not available.",
		SkillsRequired: []string{},
		Education:      "Varies",
		SalaryRange:    "₹3-10 LPA",
		JobOutlook:     "Good",
		Companies:      []string{},
		Courses:        []string{},
	}
}

// Load 从 YAML 资源文件加载目录，缺失的分区回落到内置数据
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read careers catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse careers catalog: %w", err)
	}

	defaults := DefaultCatalog()
	if len(c.Careers) == 0 {
		c.Careers = defaults.Careers
	}
	if len(c.Courses) == 0 {
		c.Courses = defaults.Courses
	}
	if len(c.Skills) == 0 {
		c.Skills = defaults.Skills
	}
	if len(c.AlternativePaths) == 0 {
		c.AlternativePaths = defaults.AlternativePaths
	}
	return &c, nil
}

// DefaultCatalog 内置参考数据，资源文件缺失时保证查询仍可用
func DefaultCatalog() *Catalog {
	return &Catalog{
		Careers: map[string]Detail{
			"Software Engineer": {
				Description:    "Software engineers design, develop, and maintain software applications and systems.",
				SkillsRequired: []string{"Programming", "Problem Solving", "Teamwork", "Communication"},
				Education:      "B.Tech in Computer Science or related field",
				SalaryRange:    "₹4-15 LPA",
				JobOutlook:     "Excellent - High demand",
				Companies:      []string{"TCS", "Infosys", "Wipro", "Google", "Microsoft"},
				Courses:        []string{"B.Tech Computer Science", "BCA", "MCA", "Diploma in IT"},
			},
			"Medical Doctor": {
				Description:    "Medical doctors diagnose and treat patients, providing healthcare services.",
				SkillsRequired: []string{"Medical Knowledge", "Patient Care", "Communication", "Critical Thinking"},
				Education:      "MBBS degree from recognized medical college",
				SalaryRange:    "₹8-25 LPA",
				JobOutlook:     "Excellent - Always in demand",
				Companies:      []string{"Hospitals", "Clinics", "Research Institutes", "Private Practice"},
				Courses:        []string{"MBBS", "BDS", "BAMS", "BHMS"},
			},
			"Business Manager": {
				Description:    "Business managers oversee operations and lead teams in organizations.",
				SkillsRequired: []string{"Leadership", "Communication", "Strategic Thinking", "Problem Solving"},
				Education:      "MBA or Business Administration degree",
				SalaryRange:    "₹6-20 LPA",
				JobOutlook:     "Good - Growing demand",
				Companies:      []string{"Corporate Companies", "Startups", "Consulting Firms"},
				Courses:        []string{"MBA", "BBA", "B.Com", "PGDM"},
			},
		},
		Courses: []Course{
			{
				Name:        "B.Tech Computer Science",
				Duration:    "4 years",
				Eligibility: "10+2 with PCM",
				Fees:        "₹2-8 LPA",
				Careers:     []string{"Software Engineer", "Data Scientist", "Web Developer"},
			},
			{
				Name:        "MBBS",
				Duration:    "5.5 years",
				Eligibility: "10+2 with PCB, NEET qualified",
				Fees:        "₹10-50 LPA",
				Careers:     []string{"Medical Doctor", "Surgeon", "Researcher"},
			},
			{
				Name:        "MBA",
				Duration:    "2 years",
				Eligibility: "Graduation in any field",
				Fees:        "₹5-20 LPA",
				Careers:     []string{"Business Manager", "Consultant", "Entrepreneur"},
			},
			{
				Name:        "B.Des (Design)",
				Duration:    "4 years",
				Eligibility: "10+2 in any stream",
				Fees:        "₹3-12 LPA",
				Careers:     []string{"Graphic Designer", "UI/UX Designer", "Fashion Designer"},
			},
		},
		Skills: []Skill{
			{
				Name:        "Programming",
				Category:    "Technical",
				Description: "Ability to write and understand code",
				Careers:     []string{"Software Engineer", "Data Scientist", "Web Developer"},
			},
			{
				Name:        "Communication",
				Category:    "Soft Skills",
				Description: "Effective verbal and written communication",
				Careers:     []string{"Manager", "Teacher", "Sales Executive"},
			},
			{
				Name:        "Leadership",
				Category:    "Management",
				Description: "Ability to lead and motivate teams",
				Careers:     []string{"Business Manager", "Project Manager", "Team Lead"},
			},
			{
				Name:        "Creativity",
				Category:    "Artistic",
				Description: "Ability to think creatively and innovatively",
				Careers:     []string{"Designer", "Artist", "Content Creator"},
			},
		},
		AlternativePaths: []AlternativePath{
			{
				Name:         "Engineering Diploma (Polytechnic)",
				Description:  "Three-year diploma in an engineering trade with lateral entry to B.Tech later",
				Eligibility:  "10th pass with 45% or above",
				Duration:     "3 years",
				Fees:         "₹30,000 - 1,50,000",
				JobProspects: "Junior engineer roles; lateral entry into degree programmes",
			},
			{
				Name:         "ITI (Industrial Training Institute)",
				Description:  "Hands-on training in trades like electrician, fitter, machinist",
				Eligibility:  "10th pass",
				Duration:     "6 months - 2 years",
				Fees:         "₹10,000 - 50,000",
				JobProspects: "High demand in manufacturing, construction and maintenance",
			},
			{
				Name:         "IT Certification Courses",
				Description:  "Short programming, web development or digital marketing certificates",
				Eligibility:  "10th pass, basic computer literacy",
				Duration:     "3-12 months",
				Fees:         "₹20,000 - 1,00,000",
				JobProspects: "Growing IT sector with entry-level openings",
			},
			{
				Name:         "Distance Learning Degree",
				Description:  "Open-schooling and distance degrees while working or re-attempting exams",
				Eligibility:  "10th/12th pass depending on programme",
				Duration:     "3 years, flexible pace",
				Fees:         "₹5,000 - 40,000 per year",
				JobProspects: "Keeps degree options open alongside employment",
			},
		},
	}
}
