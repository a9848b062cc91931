package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserSerialize_NeverExposesPassword(t *testing.T) {
	u := &User{ID: 1, Email: "luke@rebels.org", Password: "$2a$10$hash", IsActive: true, CreatedAt: time.Now()}

	b, err := json.Marshal(u.Serialize())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"email":"luke@rebels.org","is_active":true}`, string(b))
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "hash")
}

func TestPersonSerialize_HidesCreatedAtAndKeepsNulls(t *testing.T) {
	p := &Person{ID: 3, Name: "Leia Organa", Height: strPtr("150"), Gender: strPtr("female"), CreatedAt: time.Now()}

	b, err := json.Marshal(p.Serialize())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":3,"name":"Leia Organa","height":"150","mass":null,"gender":"female","birth_year":null}`, string(b))
}

func TestPlanetSerialize_HidesCreatedAt(t *testing.T) {
	p := &Planet{ID: 1, Name: "Tatooine", Climate: strPtr("arid"), Terrain: strPtr("desert"), Population: strPtr("200000"), CreatedAt: time.Now()}

	b, err := json.Marshal(p.Serialize())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"name":"Tatooine","climate":"arid","terrain":"desert","population":"200000"}`, string(b))
}

func TestNewFavorite(t *testing.T) {
	f, err := NewFavorite(1, TargetPlanet, 9)
	require.NoError(t, err)
	assert.Nil(t, f.PeopleID)
	require.NotNil(t, f.PlanetID)
	assert.Equal(t, int64(9), *f.PlanetID)

	kind, id, err := f.Target()
	require.NoError(t, err)
	assert.Equal(t, TargetPlanet, kind)
	assert.Equal(t, int64(9), id)

	f, err = NewFavorite(1, TargetPerson, 4)
	require.NoError(t, err)
	kind, id, err = f.Target()
	require.NoError(t, err)
	assert.Equal(t, TargetPerson, kind)
	assert.Equal(t, int64(4), id)

	_, err = NewFavorite(1, TargetKind("starship"), 1)
	assert.Error(t, err)
}

func TestFavoriteTarget_RequiresExactlyOne(t *testing.T) {
	one := int64(1)

	_, _, err := (&Favorite{UserID: 1}).Target()
	assert.Error(t, err, "neither target set")

	_, _, err = (&Favorite{UserID: 1, PeopleID: &one, PlanetID: &one}).Target()
	assert.Error(t, err, "both targets set")
}

func TestFavoriteSerialize(t *testing.T) {
	f, err := NewFavorite(1, TargetPerson, 2)
	require.NoError(t, err)
	f.ID = 5

	b, err := json.Marshal(f.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"user_id":1,"people_id":2,"planet_id":null}`, string(b))
}
