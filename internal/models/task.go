package models

// Task belongs to exactly one project and is assigned to one responsible user
type Task struct {
	ID                string `json:"id"`
	Description       string `json:"deskripsi"`
	Deadline          Date   `json:"deadline"`
	IsFinished        bool   `json:"is_finish"`
	ResponsibleUserID string `json:"penanggung_jawab"`
	ProjectID         string `json:"project_id"`
}

// GetID returns the task ID for quiet output
func (t *Task) GetID() string {
	return t.ID
}
