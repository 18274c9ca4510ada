package dto

type ApplicationStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TopJob struct {
	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`
	Count    int64  `json:"count"`
}

type DashboardResponse struct {
	TotalJobs         int64                    `json:"total_jobs"`
	TotalUsers        int64                    `json:"total_users"`
	TotalApplications int64                    `json:"total_applications"`
	ApplicationStats  []ApplicationStatusCount `json:"application_stats"`
	TopJobs           []TopJob                 `json:"top_jobs"`
}
