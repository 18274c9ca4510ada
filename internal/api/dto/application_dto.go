package dto

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

type ApplicationDTO struct {
	ApplicationID  string  `json:"application_id"`
	UserID         string  `json:"user_id"`
	JobID          string  `json:"job_id"`
	Status         string  `json:"status"`
	ApplicantEmail string  `json:"applicant_email,omitempty"`
	Job            *JobDTO `json:"job,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationDTO `json:"applications"`
}
