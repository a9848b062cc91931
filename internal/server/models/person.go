package models

import "time"

// Person is a Star Wars character. All descriptive fields are optional.
type Person struct {
	ID        int64
	Name      string
	Height    *string
	Mass      *string
	Gender    *string
	BirthYear *string
	CreatedAt time.Time
}

// PersonView is the public projection of a Person; CreatedAt stays internal.
type PersonView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Height    *string `json:"height"`
	Mass      *string `json:"mass"`
	Gender    *string `json:"gender"`
	BirthYear *string `json:"birth_year"`
}

func (p *Person) Serialize() PersonView {
	return PersonView{
		ID:        p.ID,
		Name:      p.Name,
		Height:    p.Height,
		Mass:      p.Mass,
		Gender:    p.Gender,
		BirthYear: p.BirthYear,
	}
}
