package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/gamesreviewer/internal/database/dbtest"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

func TestServices_SortByID(t *testing.T) {
	reviews := NewReviewService(&fakeReviewStore{reviews: []entities.Review{{ID: 9}, {ID: 2}, {ID: 5}}}, nil)
	all, err := reviews.GetAllReviews()
	require.NoError(t, err)
	assert.Equal(t, int64(2), all[0].ID)
	assert.Equal(t, int64(9), all[2].ID)

	reqs := NewRequirementService(&fakeRequirementStore{reqs: []entities.SystemRequirement{{ID: 4}, {ID: 1}}}, nil)
	allReqs, err := reqs.GetAllRequirements()
	require.NoError(t, err)
	assert.Equal(t, int64(1), allReqs[0].ID)

	genres := NewGenreService(&fakeGenreStore{genres: []entities.Genre{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}}, nil)
	allGenres, err := genres.GetAllGenres()
	require.NoError(t, err)
	assert.Equal(t, "a", allGenres[0].Name)
}

func TestServices_ErrorsPropagate(t *testing.T) {
	rec := &fakeRecorder{}
	genres := NewGenreService(&fakeGenreStore{err: errStore}, rec)

	_, err := genres.GetAllGenres()
	assert.ErrorIs(t, err, errStore)

	_, err = genres.CreateGenre(entities.Genre{Name: "x"})
	assert.ErrorIs(t, err, errStore)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, EntityGenre, rec.calls[0].entityType)
	assert.ErrorIs(t, rec.calls[0].err, errStore)
}

func TestCatalog_LookupsAndCrud(t *testing.T) {
	db := dbtest.New(t)
	catalog := NewCatalog(NewSQLStores(db.DB), nil)

	types, err := catalog.CompanyTypes.GetAllCompanyTypes()
	require.NoError(t, err)
	assert.Len(t, types, 3)

	tiers, err := catalog.RequirementTypes.GetAllRequirementTypes()
	require.NoError(t, err)
	require.Len(t, tiers, 3)
	tier, ok, err := catalog.RequirementTypes.GetRequirementTypeByID(tiers[2].ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "High", tier.Name)

	companyID, err := catalog.Companies.CreateCompany(entities.ProductionCompany{Name: "Supergiant"})
	require.NoError(t, err)
	gameID, err := catalog.Games.CreateGame(entities.Game{Title: "Bastion", ReleaseYear: 2011})
	require.NoError(t, err)

	reqID, err := catalog.Requirements.CreateRequirement(entities.SystemRequirement{GameID: gameID, TypeID: tiers[0].ID, StorageGB: 2, RAMGB: 2})
	require.NoError(t, err)
	reqs, err := catalog.Games.GetGameSystemRequirements(gameID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, reqID, reqs[0].ID)

	require.NoError(t, catalog.Companies.DeleteCompany(companyID))
	_, ok, err = catalog.Companies.GetCompanyByID(companyID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, catalog.Games.DeleteGame(gameID))
	reqs, err = catalog.Requirements.GetRequirementsByGameID(gameID)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}
