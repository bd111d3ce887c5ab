package listing

// JobListing is one job opening record from the external listing store.
// The engine only ever reads snapshots of it; the store owns the lifecycle.
type JobListing struct {
	RecordID    string  `json:"record_id"`
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	District    string  `json:"district"`
	JobGroup    string  `json:"job_group,omitempty"`
	WorkingTime string  `json:"working_time,omitempty"`
	SalaryMin   float64 `json:"salary_min,omitempty"`
	SalaryMax   float64 `json:"salary_max,omitempty"`
	JDLink      string  `json:"jd_link,omitempty"`
	Experience  string  `json:"experience,omitempty"`
	Status      string  `json:"status,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
}

// Result is the public projection returned to clients. Internal fields
// (record id, coordinates, status) are stripped.
type Result struct {
	Company     string  `json:"company"`
	Job         string  `json:"job"`
	Address     string  `json:"address"`
	WorkingTime string  `json:"working_time"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	JDLink      string  `json:"jd_link"`
}

// Project maps a listing to its public result shape.
func Project(l JobListing) Result {
	return Result{
		Company:     l.Company,
		Job:         l.Title,
		Address:     l.Address,
		WorkingTime: l.WorkingTime,
		SalaryMin:   l.SalaryMin,
		SalaryMax:   l.SalaryMax,
		JDLink:      l.JDLink,
	}
}

// ProjectAll maps a whole result set.
func ProjectAll(ls []JobListing) []Result {
	out := make([]Result, 0, len(ls))
	for _, l := range ls {
		out = append(out, Project(l))
	}
	return out
}
