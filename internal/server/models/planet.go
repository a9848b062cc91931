package models

import "time"

type Planet struct {
	ID         int64
	Name       string
	Climate    *string
	Terrain    *string
	Population *string
	CreatedAt  time.Time
}

// PlanetView is the public projection of a Planet; CreatedAt stays internal.
type PlanetView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Climate    *string `json:"climate"`
	Terrain    *string `json:"terrain"`
	Population *string `json:"population"`
}

func (p *Planet) Serialize() PlanetView {
	return PlanetView{
		ID:         p.ID,
		Name:       p.Name,
		Climate:    p.Climate,
		Terrain:    p.Terrain,
		Population: p.Population,
	}
}
