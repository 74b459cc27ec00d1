// Package models defines data structures for the course cleaning pipeline.
package models

import "time"

// Course represents a cleaned, validated course record ready for persistence.
type Course struct {
	CreatedAt         time.Time `json:"createdAt"`
	Name              string    `json:"name"`
	CAOCode           string    `json:"caoCode"`
	Description       string    `json:"description"`
	Duration          string    `json:"duration"`
	Tags              string    `json:"tags"`
	CourseURL         string    `json:"courseUrl"`
	EntryRequirements string    `json:"entryRequirements"`
	CareerInfo        string    `json:"careerInfo"`
	Keywords          string    `json:"keywords"`
	NFQLevel          int       `json:"nfqLevel"`
	Points            int       `json:"points"`
	CollegeID         int       `json:"collegeId"`
}
