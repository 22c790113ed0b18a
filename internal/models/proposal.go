package models

import "io"

// Proposal is a document submitted against a project
type Proposal struct {
	ID            string `json:"id"`
	Title         string `json:"judul"`
	Description   string `json:"deskripsi"`
	FileReference string `json:"file_url"`
	ProjectID     string `json:"project_id"`
}

// GetID returns the proposal ID for quiet output
func (p *Proposal) GetID() string {
	return p.ID
}

// File is a binary attachment sent as a multipart file part
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}
