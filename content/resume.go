package content

// Stat is one headline number
type Stat struct {
	Label string
	Value string
}

// SkillGroup is a category of skills with proficiency in [0,100]
type SkillGroup struct {
	Name   string
	Color  string
	Skills []Skill
}

type Skill struct {
	Name  string
	Level int
}

// Metric is an impact KPI
type Metric struct {
	Label       string
	Value       string
	Suffix      string
	Description string
	Color       string
}

type Location struct {
	Flag    string
	Country string
	City    string
	Role    string
	Active  bool
}

type Job struct {
	Period      string
	Title       string
	Company     string
	Description string
	Skills      []string
}

type Project struct {
	Title       string
	Category    string
	Description string
	Tags        []string
	Link        string
}

// EffectButton is a footer button starting a primary overlay by kind name
type EffectButton struct {
	Label string
	Kind  string
}

// Resume is the full page copy for one language
type Resume struct {
	FirstName   string
	LastName    string
	OpenToWork  string
	Description []string
	Links       []Link

	StatsTitle string
	Stats      []Stat

	SkillsTitle    string
	SkillGroups    []SkillGroup
	MetricsTitle   string
	Metrics        []Metric
	GlobalTitle    string
	GlobalSubtitle string
	Locations      []Location

	TimelineTitle    string
	TimelineSubtitle string
	Jobs             []Job

	ProjectsTitle    string
	ProjectsSubtitle string
	Projects         []Project

	FooterTitle       string
	FooterDescription string
	Email             string
	Place             string
	EffectsTitle      string
	Effects           []EffectButton

	DiceButton string
	BackToTop  string
}

// Link is a copyable URL
type Link struct {
	Label string
	URL   string
}

const (
	linkedinURL = "https://linkedin.com/in/samamorim"
	githubURL   = "https://github.com/SamAmorim/"
	email       = "contato.samuelamorim@email.com"
)

// Skill levels are derived from the cluster chart's impact axis
var skillGroups = [4][]Skill{
	{{"Python", 95}, {"SQL", 90}, {"PySpark", 85}, {"Databricks", 90}, {"ADF", 75}, {"Lakehouse", 70}, {"Microservices", 50}, {"REST API", 65}},
	{{"ML", 65}, {"TensorFlow", 60}, {"Keras", 62}, {"Statistics", 80}, {"Scikit-Learn", 75}, {"MLflow", 70}},
	{{"Power BI", 90}, {"DAX", 80}, {"Star Schema", 60}},
	{{"Governance", 70}, {"Agile", 50}, {"Six Sigma", 40}, {"Prob. Solving", 80}},
}

var groupColors = [4]string{"#3b82f6", "#10b981", "#f59e0b", "#6366f1"}

func groups(names [4]string) []SkillGroup {
	out := make([]SkillGroup, len(names))
	for i, n := range names {
		out[i] = SkillGroup{Name: n, Color: groupColors[i], Skills: skillGroups[i]}
	}
	return out
}

var resumes = map[Language]*Resume{
	English: {
		FirstName:  "Samuel",
		LastName:   "Amorim.",
		OpenToWork: "Open to Work: Data Science & Analytics",
		Description: []string{
			"Data Professional focused on Data Analysis & Modeling and applied Data Science.",
			"My focus is on transforming raw data into strategic intelligence, governance, and high-performance predictive models.",
		},
		Links: []Link{{"LinkedIn", linkedinURL}, {"GitHub", githubURL}, {"Email", "mailto:" + email}},

		StatsTitle: "At a glance",
		Stats: []Stat{
			{"Data Experience", "3+ Years"},
			{"Global Projects", "Multinationals"},
			{"Tech Focus", "Data & AI"},
		},

		SkillsTitle:  "Data Ecosystem",
		SkillGroups:  groups([4]string{"Data Engineering", "Data Science & AI", "Analytics & Viz", "Strategy & Soft Skills"}),
		MetricsTitle: "Impact",
		Metrics: []Metric{
			{"Reliability", "100%", "Golden Record", "Single Source of Truth in Data Hub", "#3b82f6"},
			{"Impact", "+80", "Global Users", "Accessing dashboards worldwide", "#f59e0b"},
			{"AI Precision", "95%+", "Advanced Modeling", "Data quality & predictive models", "#10b981"},
			{"Visualization", "KPIs", "Data Viz", "Data visibility for decision making", "#a855f7"},
		},
		GlobalTitle:    "Global Collaboration",
		GlobalSubtitle: "Acting in teams allocated across countries",
		Locations: []Location{
			{"🇧🇷", "Brazil", "São Paulo", "HQ & Data Engineering", true},
			{"🇺🇸", "USA", "St. Louis / NJ", "Stakeholder Management", true},
			{"🇩🇪", "Germany", "Leverkusen", "Strategy & Directives", false},
			{"🇮🇳", "India", "Bangalore", "Dev & Delivery", true},
			{"🌎", "LATAM", "Regional Hubs", "Business Partners", true},
		},

		TimelineTitle:    "Professional Journey",
		TimelineSubtitle: "Career Pipeline (ETL)",
		Jobs: []Job{
			{
				Period:      "Current",
				Title:       "Data Analyst & Engineering",
				Company:     "Conquest One (Allocated at Bayer)",
				Description: "Working at the Data Driven Hub. Developing robust data pipelines (ETL/ELT) using Azure Databricks and PySpark. Implementing Data Governance to ensure reliability (Single Source of Truth). Creating executive Power BI dashboards to support strategic decision-making.",
				Skills:      []string{"Azure Databricks", "PySpark", "Data Governance", "Power BI", "SQL"},
			},
			{
				Period:      "Previous",
				Title:       "Strategy, Governance & Data Intern",
				Company:     "Bayer",
				Description: "Supporting global data strategy and governance. Participating in data architecture modernization and collaborating with global teams using agile methodologies (Scrum). Process automation and data quality analysis.",
				Skills:      []string{"ITIL", "Data Governance", "Agile", "Global Communication", "Excel"},
			},
		},

		ProjectsTitle:    "Project Laboratory",
		ProjectsSubtitle: "Deploy & Results",
		Projects: []Project{
			{
				Title:       "IARA: Antifraud AI",
				Category:    "Data Science & Cloud",
				Description: "PIX security solution using Deep Learning. Overcoming banking secrecy via synthetic data and cascaded Azure architecture (Functions) for real-time inference with low fraud recall.",
				Tags:        []string{"TensorFlow", "Azure", "Microservices", "MLflow", "Python"},
				Link:        "https://github.com/SamAmorim/IARA",
			},
			{
				Title:       "Music RecSys: Semi-supervised AI",
				Category:    "Machine Learning",
				Description: "Award-winning music recommendation system. Uses Semi-Supervised Learning and Cluster Analysis (Elbow Method) to categorize unlabeled profiles and suggest songs via cosine similarity.",
				Tags:        []string{"Scikit-Learn", "Clustering", "API REST", "Flask", "Pandas"},
				Link:        "https://github.com/SamAmorim/Music_Recommendation_Algorithm_Semisupervised_AI",
			},
			{
				Title:       "PBI Kpi Builder",
				Category:    "Open Source Tool",
				Description: "Development accelerator creating complex HTML/CSS visuals for Power BI automatically. Eliminates manual DAX concatenation, supporting dynamic themes (Light/Dark mode) and UI customization.",
				Tags:        []string{"Power BI", "DAX", "HTML/CSS", "Open Source", "UI/UX"},
				Link:        "https://github.com/SamAmorim/pbi-ui-kit",
			},
		},

		FooterTitle:       "Let's talk data?",
		FooterDescription: "Available for challenges in Data Engineering, Analytics, and Data Science.",
		Email:             email,
		Place:             "São Paulo, SP - Brazil",
		EffectsTitle:      "Chaos buttons",
		Effects:           effectButtons,

		DiceButton: "[ Roll for Initiative! ]",
		BackToTop:  "[ ↑ top ]",
	},
	Portuguese: {
		FirstName:  "Samuel",
		LastName:   "Amorim.",
		OpenToWork: "Open to Work: Data Science & Analytics",
		Description: []string{
			"Profissional de Dados focado em Análise e Modelagem de Dados e Data Science aplicada.",
			"Meu foco é em transformar dados brutos em inteligência estratégica, governança e modelos preditivos de alta performance.",
		},
		Links: []Link{{"LinkedIn", linkedinURL}, {"GitHub", githubURL}, {"Email", "mailto:" + email}},

		StatsTitle: "Resumo",
		Stats: []Stat{
			{"Experiência em Dados", "3+ Anos"},
			{"Projetos Globais", "Multinacionais"},
			{"Foco Técnico", "Data & AI"},
		},

		SkillsTitle:  "Ecossistema de Dados",
		SkillGroups:  groups([4]string{"Engenharia de Dados", "Data Science & AI", "Analytics & Viz", "Estratégia & Soft Skills"}),
		MetricsTitle: "Impacto",
		Metrics: []Metric{
			{"Confiabilidade", "100%", "Golden Record", "Single Source of Truth no Data Hub", "#3b82f6"},
			{"Impacto", "+80", "Usuários Globais", "Acessando dashboards no mundo todo", "#f59e0b"},
			{"Precisão AI", "95%+", "Modelagem Avançada", "Qualidade de dados e modelos preditivos", "#10b981"},
			{"Visualização", "KPIs", "Data Viz", "Visibilidade de dados para decisão", "#a855f7"},
		},
		GlobalTitle:    "Colaboração Global",
		GlobalSubtitle: "Atuação em times alocados nos países",
		Locations: []Location{
			{"🇧🇷", "Brasil", "São Paulo", "HQ & Data Engineering", true},
			{"🇺🇸", "EUA", "St. Louis / NJ", "Stakeholder Management", true},
			{"🇩🇪", "Alemanha", "Leverkusen", "Strategy & Directives", false},
			{"🇮🇳", "Índia", "Bangalore", "Dev & Delivery", true},
			{"🌎", "LATAM", "Regional Hubs", "Business Partners", true},
		},

		TimelineTitle:    "Jornada Profissional",
		TimelineSubtitle: "Pipeline de Carreira (ETL)",
		Jobs: []Job{
			{
				Period:      "Atual",
				Title:       "Analista de Dados & Engenharia",
				Company:     "Conquest One (Alocado na Bayer)",
				Description: "Atuação no Data Driven Hub. Desenvolvimento de pipelines de dados robustos (ETL/ELT) utilizando Azure Databricks e PySpark. Implementação de Governança de Dados para garantir confiabilidade (Single Source of Truth). Criação de Dashboards executivos em Power BI para suporte à decisão estratégica.",
				Skills:      []string{"Azure Databricks", "PySpark", "Data Governance", "Power BI", "SQL"},
			},
			{
				Period:      "Anterior",
				Title:       "Estágio em Strategy, Governance & Data",
				Company:     "Bayer",
				Description: "Suporte à estratégia de dados e governança global. Participação na modernização de arquitetura de dados e colaboração com times globais usando metodologias ágeis (Scrum). Automação de processos e análise de qualidade de dados.",
				Skills:      []string{"ITIL", "Data Governance", "Agile", "Comunicação Global", "Excel"},
			},
		},

		ProjectsTitle:    "Laboratório de Projetos",
		ProjectsSubtitle: "Deploy & Resultados",
		Projects: []Project{
			{
				Title:       "IARA: Antifraude AI",
				Category:    "Data Science & Cloud",
				Description: "Solução de segurança para o PIX utilizando Deep Learning. Superação de sigilo bancário via dados sintéticos e arquitetura em cascata na Azure (Functions) para inferência em tempo real com baixo recall de fraude.",
				Tags:        []string{"TensorFlow", "Azure", "Microsserviços", "MLflow", "Python"},
				Link:        "https://github.com/SamAmorim/IARA",
			},
			{
				Title:       "Music RecSys: AI Semissupervisionada",
				Category:    "Machine Learning",
				Description: "Sistema premiado de recomendação musical. Utiliza Aprendizado Semissupervisionado e Análise de Clusters (Elbow Method) para categorizar perfis sem rótulos e sugerir músicas via similaridade por cosseno.",
				Tags:        []string{"Scikit-Learn", "Clustering", "API REST", "Flask", "Pandas"},
				Link:        "https://github.com/SamAmorim/Music_Recommendation_Algorithm_Semisupervised_AI",
			},
			{
				Title:       "PBI Kpi Builder",
				Category:    "Open Source Tool",
				Description: "Acelerador de desenvolvimento que cria visuais HTML/CSS complexos para Power BI automaticamente. Elimina a concatenação manual de DAX, suportando temas dinâmicos (Light/Dark mode) e personalização via UI.",
				Tags:        []string{"Power BI", "DAX", "HTML/CSS", "Open Source", "UI/UX"},
				Link:        "https://github.com/SamAmorim/pbi-ui-kit",
			},
		},

		FooterTitle:       "Vamos conversar sobre dados?",
		FooterDescription: "Disponível para desafios em Engenharia de Dados, Analytics e Data Science.",
		Email:             email,
		Place:             "São Paulo, SP - Brasil",
		EffectsTitle:      "Botões do caos",
		Effects:           effectButtons,

		DiceButton: "[ Role a iniciativa! ]",
		BackToTop:  "[ ↑ topo ]",
	},
}

var effectButtons = []EffectButton{
	{"⚔ Saber", "saber"},
	{"🐱 Cats", "cats"},
	{"🤓 Nerd", "rain"},
	{"♪ Music", "trail-music"},
	{"⚛ Science", "trail-science"},
	{"∑ Math", "trail-math"},
	{"★ Astronomy", "trail-astronomy"},
}

// For returns the resume copy for l
func For(l Language) *Resume {
	if r, ok := resumes[l]; ok {
		return r
	}
	return resumes[English]
}
