package models

import "fmt"

// TargetKind names what a Favorite points at.
type TargetKind string

const (
	TargetPerson TargetKind = "people"
	TargetPlanet TargetKind = "planet"
)

// Favorite bookmarks exactly one Person or one Planet for a User.
// Exactly one of PeopleID / PlanetID is set.
type Favorite struct {
	ID       int64
	UserID   int64
	PeopleID *int64
	PlanetID *int64
}

type FavoriteView struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	PeopleID *int64 `json:"people_id"`
	PlanetID *int64 `json:"planet_id"`
}

// NewFavorite builds an unsaved Favorite of userID for the given target.
func NewFavorite(userID int64, kind TargetKind, targetID int64) (*Favorite, error) {
	f := &Favorite{UserID: userID}
	switch kind {
	case TargetPerson:
		f.PeopleID = &targetID
	case TargetPlanet:
		f.PlanetID = &targetID
	default:
		return nil, fmt.Errorf("unknown favorite target %q", kind)
	}
	return f, nil
}

// Target returns the kind and id of the bookmarked record. It fails unless
// exactly one target is set.
func (f *Favorite) Target() (TargetKind, int64, error) {
	switch {
	case f.PeopleID != nil && f.PlanetID == nil:
		return TargetPerson, *f.PeopleID, nil
	case f.PlanetID != nil && f.PeopleID == nil:
		return TargetPlanet, *f.PlanetID, nil
	default:
		return "", 0, fmt.Errorf("favorite must reference exactly one of people or planet")
	}
}

func (f *Favorite) Serialize() FavoriteView {
	return FavoriteView{
		ID:       f.ID,
		UserID:   f.UserID,
		PeopleID: f.PeopleID,
		PlanetID: f.PlanetID,
	}
}
