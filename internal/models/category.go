package models

// FallbackCategoryCode prefixes reference IDs for categories missing
// from the submission category list.
const FallbackCategoryCode = "XX"

var categoryCodes = map[string]string{
	"Artificial Intelligence":      "AI",
	"Machine Learning":             "ML",
	"Data Science":                 "DS",
	"Computer Vision":              "CV",
	"Natural Language Processing":  "NL",
	"Robotics":                     "RO",
	"Cybersecurity":                "CS",
	"Software Engineering":         "SE",
	"Human-Computer Interaction":   "HC",
	"Bioinformatics":               "BI",
	"Biomedical Engineering":       "BM",
	"Renewable Energy":             "RE",
	"Materials Science":            "MS",
	"Nanotechnology":               "NT",
	"Quantum Computing":            "QC",
	"Internet of Things":           "IO",
	"Cloud Computing":              "CC",
	"Big Data Analytics":           "BD",
	"Blockchain":                   "BC",
	"Telecommunications":           "TC",
	"Signal Processing":            "SP",
	"Power Systems":                "PW",
	"Control Systems":              "CT",
	"Environmental Engineering":    "EV",
	"Mechanical Engineering":       "ME",
}

func CategoryCode(category string) string {
	if code, ok := categoryCodes[category]; ok {
		return code
	}
	return FallbackCategoryCode
}

func SubmissionCategories() []string {
	categories := make([]string, 0, len(categoryCodes))
	for category := range categoryCodes {
		categories = append(categories, category)
	}
	return categories
}
