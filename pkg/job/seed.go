package job

// SampleOffers are inserted on startup when the table is empty.
func SampleOffers() []Offer {
	return []Offer{
		{
			Title:           "Développeur Fullstack JavaScript",
			Company:         "TechCorp",
			Location:        "Paris",
			Description:     "Nous recherchons un développeur fullstack passionné pour rejoindre notre équipe technique. Vous travaillerez sur des projets innovants avec les dernières technologies web.",
			Requirements:    "Minimum 2 ans d'expérience en développement web, maîtrise de JavaScript et React",
			SkillsRequired:  []string{"javascript", "react", "node.js", "mongodb", "html", "css"},
			SalaryRange:     "45k-55k €",
			JobType:         "CDI",
			ExperienceLevel: "Mid-level",
			IsActive:        true,
		},
		{
			Title:           "Data Scientist Python",
			Company:         "DataCompany",
			Location:        "Lyon",
			Description:     "Rejoignez notre équipe data science pour développer des modèles prédictifs innovants. Analyse de données et machine learning au quotidien.",
			Requirements:    "Master en data science, expérience avec Python et machine learning",
			SkillsRequired:  []string{"python", "machine learning", "sql", "pandas", "numpy", "tensorflow"},
			SalaryRange:     "50k-60k €",
			JobType:         "CDI",
			ExperienceLevel: "Senior",
			IsActive:        true,
		},
		{
			Title:           "Ingénieur DevOps",
			Company:         "CloudSolutions",
			Location:        "Remote",
			Description:     "Gestion de notre infrastructure cloud et automatisation des déploiements. Environnement technique stimulant.",
			Requirements:    "Expérience avec AWS, Docker et Kubernetes, connaissance de Linux",
			SkillsRequired:  []string{"docker", "kubernetes", "aws", "linux", "python", "bash"},
			SalaryRange:     "48k-58k €",
			JobType:         "CDI",
			ExperienceLevel: "Mid-level",
			IsActive:        true,
		},
	}
}

// FallbackOffers are served when the database cannot be read.
func FallbackOffers() []Offer {
	return []Offer{
		{
			ID:              1,
			Title:           "Développeur Fullstack JavaScript",
			Company:         "TechCorp",
			Location:        "Paris",
			Description:     "Données simulées - Développement fullstack",
			SkillsRequired:  []string{"javascript", "react", "node.js"},
			SalaryRange:     "45k-55k €",
			JobType:         "CDI",
			ExperienceLevel: "Mid-level",
			IsActive:        true,
		},
		{
			ID:              2,
			Title:           "Data Scientist Python",
			Company:         "DataCompany",
			Location:        "Lyon",
			Description:     "Données simulées - Data Science",
			SkillsRequired:  []string{"python", "machine learning", "sql"},
			SalaryRange:     "50k-60k €",
			JobType:         "CDI",
			ExperienceLevel: "Senior",
			IsActive:        true,
		},
	}
}
