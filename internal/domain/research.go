package domain

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepSearching StepStatus = "searching"
	StepDone      StepStatus = "done"
)

type ResearchStep struct {
	Name   string
	Icon   string
	Status StepStatus
}
