package taxonomy

import "github.com/puneetrinity/evalmatch/internal/types"

// Seed returns the built-in taxonomy snapshot. It covers the two verticals
// the engine ships against out of the box: general software technology and
// pharmaceutical/clinical roles. Deployments with their own taxonomy load it
// from a JSON file or Postgres instead.
func Seed() *Snapshot {
	return NewSnapshot(seedRecords())
}

func seedRecords() []types.SkillRecord {
	return []types.SkillRecord{
		// Programming languages
		{Name: "JavaScript", Category: types.CategoryProgrammingLanguages, Aliases: []string{"js", "ecmascript"}, Related: []string{"typescript", "node.js", "react"}},
		{Name: "TypeScript", Category: types.CategoryProgrammingLanguages, Aliases: []string{"ts"}, Related: []string{"javascript", "node.js"}},
		{Name: "Python", Category: types.CategoryProgrammingLanguages, Aliases: []string{"python3", "py"}, Related: []string{"django", "machine learning", "data analysis"}},
		{Name: "Java", Category: types.CategoryProgrammingLanguages, Related: []string{"spring", "kotlin"}},
		{Name: "Kotlin", Category: types.CategoryProgrammingLanguages, Related: []string{"java"}},
		{Name: "Go", Category: types.CategoryProgrammingLanguages, Aliases: []string{"golang"}, Related: []string{"kubernetes", "docker"}},
		{Name: "C++", Category: types.CategoryProgrammingLanguages, Aliases: []string{"cpp"}},
		{Name: "C#", Category: types.CategoryProgrammingLanguages, Aliases: []string{"csharp", ".net"}},
		{Name: "Ruby", Category: types.CategoryProgrammingLanguages, Related: []string{"rails"}},
		{Name: "Rust", Category: types.CategoryProgrammingLanguages},
		{Name: "PHP", Category: types.CategoryProgrammingLanguages},
		{Name: "SQL", Category: types.CategoryProgrammingLanguages, Related: []string{"postgresql", "mysql"}},
		{Name: "R", Category: types.CategoryProgrammingLanguages, Related: []string{"data analysis", "statistics"}},
		{Name: "SAS", Category: types.CategoryProgrammingLanguages, Related: []string{"clinical data analysis", "statistics"}},

		// Frameworks and libraries
		{Name: "React", Category: types.CategoryFrameworks, Aliases: []string{"react.js", "reactjs"}, Related: []string{"javascript", "typescript"}},
		{Name: "Angular", Category: types.CategoryFrameworks, Aliases: []string{"angularjs"}, Related: []string{"typescript"}},
		{Name: "Vue", Category: types.CategoryFrameworks, Aliases: []string{"vue.js", "vuejs"}, Related: []string{"javascript"}},
		{Name: "Node.js", Category: types.CategoryFrameworks, Aliases: []string{"nodejs", "node"}, Related: []string{"javascript", "typescript", "express"}},
		{Name: "Express", Category: types.CategoryFrameworks, Aliases: []string{"express.js"}, Related: []string{"node.js"}},
		{Name: "Django", Category: types.CategoryFrameworks, Related: []string{"python"}},
		{Name: "Spring", Category: types.CategoryFrameworks, Aliases: []string{"spring boot"}, Related: []string{"java"}},
		{Name: "Rails", Category: types.CategoryFrameworks, Aliases: []string{"ruby on rails"}, Related: []string{"ruby"}},

		// Databases
		{Name: "PostgreSQL", Category: types.CategoryDatabases, Aliases: []string{"postgres"}, Related: []string{"sql"}},
		{Name: "MySQL", Category: types.CategoryDatabases, Related: []string{"sql"}},
		{Name: "MongoDB", Category: types.CategoryDatabases, Aliases: []string{"mongo"}},
		{Name: "Redis", Category: types.CategoryDatabases},
		{Name: "Elasticsearch", Category: types.CategoryDatabases, Aliases: []string{"elastic search"}},

		// Cloud and DevOps
		{Name: "AWS", Category: types.CategoryCloudDevOps, Aliases: []string{"amazon web services"}, Related: []string{"docker", "kubernetes", "terraform"}},
		{Name: "Azure", Category: types.CategoryCloudDevOps, Aliases: []string{"microsoft azure"}},
		{Name: "GCP", Category: types.CategoryCloudDevOps, Aliases: []string{"google cloud", "google cloud platform"}},
		{Name: "Docker", Category: types.CategoryCloudDevOps, Related: []string{"kubernetes"}},
		{Name: "Kubernetes", Category: types.CategoryCloudDevOps, Aliases: []string{"k8s"}, Related: []string{"docker", "helm"}},
		{Name: "Terraform", Category: types.CategoryCloudDevOps, Related: []string{"aws"}},
		{Name: "CI/CD", Category: types.CategoryCloudDevOps, Aliases: []string{"continuous integration", "continuous delivery"}},
		{Name: "Kafka", Category: types.CategoryCloudDevOps, Aliases: []string{"apache kafka"}},

		// Data science and AI
		{Name: "Machine Learning", Category: types.CategoryDataScience, Aliases: []string{"ml"}, Related: []string{"deep learning", "python", "data analysis"}},
		{Name: "Deep Learning", Category: types.CategoryDataScience, Related: []string{"machine learning", "tensorflow", "pytorch"}},
		{Name: "TensorFlow", Category: types.CategoryDataScience, Related: []string{"deep learning", "python"}},
		{Name: "PyTorch", Category: types.CategoryDataScience, Related: []string{"deep learning", "python"}},
		{Name: "NLP", Category: types.CategoryDataScience, Aliases: []string{"natural language processing"}, Related: []string{"machine learning"}},
		{Name: "Data Analysis", Category: types.CategoryDataScience, Aliases: []string{"data analytics"}, Related: []string{"statistics", "sql"}},
		{Name: "Statistics", Category: types.CategoryDataScience, Related: []string{"data analysis", "r"}},
		{Name: "Bioinformatics", Category: types.CategoryDataScience, Related: []string{"python", "statistics"}},

		// Pharmaceutical and clinical
		{Name: "Clinical Research", Category: types.CategoryPharmaceutical, Aliases: []string{"clinical trials"}, Related: []string{"regulatory affairs", "clinical data analysis"}},
		{Name: "Drug Development", Category: types.CategoryPharmaceutical, Related: []string{"clinical research", "pharmacology"}},
		{Name: "Pharmacology", Category: types.CategoryPharmaceutical, Related: []string{"drug development"}},
		{Name: "Regulatory Affairs", Category: types.CategoryPharmaceutical, Aliases: []string{"fda regulations", "ema guidelines"}, Related: []string{"clinical research", "quality assurance"}},
		{Name: "Pharmacovigilance", Category: types.CategoryPharmaceutical, Aliases: []string{"drug safety"}, Related: []string{"adverse event reporting"}},
		{Name: "Adverse Event Reporting", Category: types.CategoryPharmaceutical, Related: []string{"pharmacovigilance"}},
		{Name: "Good Manufacturing Practice", Category: types.CategoryPharmaceutical, Aliases: []string{"gmp"}, Related: []string{"quality assurance", "process validation"}},
		{Name: "Process Validation", Category: types.CategoryPharmaceutical, Related: []string{"good manufacturing practice"}},
		{Name: "Quality Assurance", Category: types.CategoryPharmaceutical, Aliases: []string{"qa"}, Related: []string{"quality control"}},
		{Name: "Quality Control", Category: types.CategoryPharmaceutical, Aliases: []string{"qc"}, Related: []string{"quality assurance"}},
		{Name: "Medical Writing", Category: types.CategoryPharmaceutical, Related: []string{"clinical research"}},
		{Name: "Clinical Data Analysis", Category: types.CategoryPharmaceutical, Related: []string{"sas", "statistics"}},

		// Soft skills
		{Name: "Communication", Category: types.CategorySoftSkills},
		{Name: "Leadership", Category: types.CategorySoftSkills, Aliases: []string{"team leadership"}},
		{Name: "Teamwork", Category: types.CategorySoftSkills, Aliases: []string{"collaboration"}},
		{Name: "Problem Solving", Category: types.CategorySoftSkills, Aliases: []string{"problem-solving"}},
		{Name: "Project Management", Category: types.CategorySoftSkills, Aliases: []string{"agile", "scrum"}},
	}
}
