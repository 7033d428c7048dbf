package comparisons

// Fixed vocabulary for the keyword fallback scorer. The lists are intentionally
// broad rather than role-specific; the scorer only counts overlap between the
// job description and the resume.
var hardSkillKeywords = []string{
	"python", "java", "javascript", "typescript", "golang",
	"c++", "c#", "ruby", "php", "swift", "kotlin", "rust", "scala",
	"react", "angular", "vue", "node", "django", "flask", "spring",
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"linux", "git", "ci/cd", "jenkins", "rest", "graphql", "grpc",
	"microservices", "machine learning", "data analysis", "etl",
	"html", "css", "agile", "scrum", "devops", "testing", "security",
}

var softSkillKeywords = []string{
	"leadership", "communication", "teamwork", "collaboration",
	"problem solving", "problem-solving", "analytical", "mentoring",
	"stakeholder", "ownership", "initiative", "adaptability",
	"time management", "attention to detail", "presentation",
	"negotiation", "creativity", "critical thinking",
}
