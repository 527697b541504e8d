package neo4j

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobnest/internal/domain"
)

func jobProps(job domain.Job) map[string]any {
	props := map[string]any{
		"id": job.ID,
	}
	if r := job.SalaryRange; r != nil {
		props["salaryMin"] = r.Min
		props["salaryMax"] = r.Max
		setString(props, "salaryCurrency", r.Currency)
	}
	setString(props, "title", job.Title)
	setString(props, "location", job.Location)
	setString(props, "jobType", job.JobType)
	setString(props, "category", job.Category)
	setString(props, "applicationDeadline", job.ApplicationDeadline)
	setString(props, "description", job.Description)
	setString(props, "company", job.Company)
	setString(props, "status", job.Status)
	setString(props, "hr_email", job.HREmail)
	setString(props, "hr_name", job.HRName)
	setString(props, "company_logo", job.CompanyLogo)
	if len(job.Requirements) > 0 {
		props["requirements"] = job.Requirements
	}
	if len(job.Responsibilities) > 0 {
		props["responsibilities"] = job.Responsibilities
	}
	return props
}

func parseJobNode(node neo4j.Node) domain.Job {
	props := node.Props
	return domain.Job{
		ID:                  getStringProp(props, "id"),
		Title:               getStringProp(props, "title"),
		Location:            getStringProp(props, "location"),
		JobType:             getStringProp(props, "jobType"),
		Category:            getStringProp(props, "category"),
		ApplicationDeadline: getStringProp(props, "applicationDeadline"),
		SalaryRange:         parseSalaryRange(props),
		Description:         getStringProp(props, "description"),
		Company:             getStringProp(props, "company"),
		Requirements:        getStringListProp(props, "requirements"),
		Responsibilities:    getStringListProp(props, "responsibilities"),
		Status:              getStringProp(props, "status"),
		HREmail:             getStringProp(props, "hr_email"),
		HRName:              getStringProp(props, "hr_name"),
		CompanyLogo:         getStringProp(props, "company_logo"),
		ApplicationCount:    getIntProp(props, "applicationCount"),
		CreatedAt:           getTimeProp(props, "createdAt"),
	}
}

// parseSalaryRange returns nil for a job stored without salary bounds
func parseSalaryRange(props map[string]interface{}) *domain.SalaryRange {
	_, hasMin := props["salaryMin"]
	_, hasMax := props["salaryMax"]
	if !hasMin && !hasMax {
		return nil
	}
	return &domain.SalaryRange{
		Min:      getIntProp(props, "salaryMin"),
		Max:      getIntProp(props, "salaryMax"),
		Currency: getStringProp(props, "salaryCurrency"),
	}
}

func applicationProps(app domain.JobApplication) map[string]any {
	props := map[string]any{
		"id":              app.ID,
		"job_id":          app.JobID,
		"applicant_email": app.ApplicantEmail,
	}
	setString(props, "status", app.Status)
	setString(props, "linkedIn", app.LinkedIn)
	setString(props, "github", app.GitHub)
	setString(props, "resume", app.Resume)
	return props
}

func parseApplicationNode(node neo4j.Node) domain.JobApplication {
	props := node.Props
	return domain.JobApplication{
		ID:             getStringProp(props, "id"),
		JobID:          getStringProp(props, "job_id"),
		ApplicantEmail: getStringProp(props, "applicant_email"),
		Status:         getStringProp(props, "status"),
		LinkedIn:       getStringProp(props, "linkedIn"),
		GitHub:         getStringProp(props, "github"),
		Resume:         getStringProp(props, "resume"),
		CreatedAt:      getTimeProp(props, "createdAt"),
	}
}

func setString(props map[string]any, key, value string) {
	if value != "" {
		props[key] = value
	}
}

func getStringProp(props map[string]interface{}, key string) string {
	if v, ok := props[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getIntProp(props map[string]interface{}, key string) int {
	switch v := props[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func getStringListProp(props map[string]interface{}, key string) []string {
	list, ok := props[key].([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}

	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getTimeProp(props map[string]interface{}, key string) time.Time {
	if v, ok := props[key]; ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
		if dt, ok := v.(neo4j.LocalDateTime); ok {
			return dt.Time()
		}
	}
	return time.Time{}
}

func nodeFrom(record *neo4j.Record, key string) (neo4j.Node, bool) {
	val, ok := record.Get(key)
	if !ok {
		return neo4j.Node{}, false
	}
	node, ok := val.(neo4j.Node)
	return node, ok
}
