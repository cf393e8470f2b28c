package db_models

import "github.com/pgvector/pgvector-go"

// Destination is a seeded, embeddable description of a place used to back
// the planning form's suggestion box.
type Destination struct {
	BaseModel
	Name        string
	Country     string
	Description string
	Tags        string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
}
