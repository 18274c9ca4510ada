package dto

// CreateJobRequest validation bounds: title min 3, description min 10,
// location non-empty, salary positive when present
type CreateJobRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=10"`
	Location    string `json:"location" binding:"required"`
	Salary      *int64 `json:"salary" binding:"omitempty,gt=0"`
	Type        string `json:"type" binding:"required,oneof=ENGINEERING DESIGN MARKETING OTHER"`
}

// UpdateJobRequest is a partial update; absent fields keep their prior value
type UpdateJobRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3"`
	Description *string `json:"description" binding:"omitempty,min=10"`
	Location    *string `json:"location" binding:"omitempty,min=1"`
	Salary      *int64  `json:"salary" binding:"omitempty,gt=0"`
	Type        *string `json:"type" binding:"omitempty,oneof=ENGINEERING DESIGN MARKETING OTHER"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN CLOSED"`
}

type ListJobsRequest struct {
	Location  string `form:"location"`
	Type      string `form:"type" binding:"omitempty,oneof=ENGINEERING DESIGN MARKETING OTHER"`
	MinSalary int64  `form:"minSalary" binding:"omitempty,gt=0"`
	MaxSalary int64  `form:"maxSalary" binding:"omitempty,gt=0"`
	Search    string `form:"search"`
}

type JobDTO struct {
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      *int64 `json:"salary,omitempty"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	PostedBy    string `json:"posted_by"`
	PosterEmail string `json:"poster_email,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ListJobsResponse struct {
	Jobs []JobDTO `json:"jobs"`
}
