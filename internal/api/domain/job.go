package domain

// JobStatus is the lifecycle state of a job posting
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// Valid reports whether the status is one of the closed set
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed:
		return true
	}
	return false
}

// JobType is the category of a job posting
type JobType string

const (
	JobTypeEngineering JobType = "ENGINEERING"
	JobTypeDesign      JobType = "DESIGN"
	JobTypeMarketing   JobType = "MARKETING"
	JobTypeOther       JobType = "OTHER"
)

// Valid reports whether the type is one of the closed set
func (t JobType) Valid() bool {
	switch t {
	case JobTypeEngineering, JobTypeDesign, JobTypeMarketing, JobTypeOther:
		return true
	}
	return false
}
