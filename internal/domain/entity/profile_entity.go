package entity

import (
	"time"
)

// Profile is the one-per-user aggregate holding the developer's public details.
type Profile struct {
	ID             string       `json:"_id" bson:"_id"`
	User           UserRef      `json:"user" bson:"user"`
	Company        *string      `json:"company,omitempty" bson:"company,omitempty"`
	Website        *string      `json:"website,omitempty" bson:"website,omitempty"`
	Location       *string      `json:"location,omitempty" bson:"location,omitempty"`
	Status         string       `json:"status" bson:"status"`
	Skills         []string     `json:"skills" bson:"skills"`
	Bio            *string      `json:"bio,omitempty" bson:"bio,omitempty"`
	GithubUsername *string      `json:"githubusername,omitempty" bson:"githubusername,omitempty"`
	Social         Social       `json:"social" bson:"social"`
	Experience     []Experience `json:"experience" bson:"experience"`
	Education      []Education  `json:"education" bson:"education"`
	CreatedAt      time.Time    `json:"date" bson:"date"`
}

type Social struct {
	Youtube   *string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

type Experience struct {
	ID          string     `json:"_id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Company     string     `json:"company" bson:"company"`
	Location    *string    `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time  `json:"from" bson:"from"`
	To          *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool       `json:"current" bson:"current"`
	Description *string    `json:"description,omitempty" bson:"description,omitempty"`
}

type Education struct {
	ID           string     `json:"_id" bson:"_id"`
	School       string     `json:"school" bson:"school"`
	Degree       string     `json:"degree" bson:"degree"`
	FieldOfStudy string     `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time  `json:"from" bson:"from"`
	To           *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool       `json:"current" bson:"current"`
	Description  *string    `json:"description,omitempty" bson:"description,omitempty"`
}

// Clone returns a deep copy so callers can mutate without touching stored state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Skills = Clone(p.Skills)
	cp.Experience = Clone(p.Experience)
	cp.Education = Clone(p.Education)
	return &cp
}
