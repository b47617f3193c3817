package repositories

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/models"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AnnouncementRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo AnnouncementRepository
	ctx  context.Context
}

func (suite *AnnouncementRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewAnnouncementRepo(mock)
	suite.ctx = context.Background()
}

func (suite *AnnouncementRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *AnnouncementRepoTestSuite) TestUpdate() {
	suite.mock.ExpectExec(`UPDATE announcements`).
		WithArgs(true, (*time.Time)(nil), (*time.Time)(nil), []models.AnnouncementData{{LanguageID: 1, Title: "Sale"}}, []int64{1}, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.ctx, &models.Announcement{
		ID:     3,
		Active: true,
		Data:   []models.AnnouncementData{{LanguageID: 1, Title: "Sale"}},
		Stores: []int64{1},
	})
	assert.NoError(suite.T(), err)
}

func (suite *AnnouncementRepoTestSuite) TestUpdateMissingRowIsNotFound() {
	suite.mock.ExpectExec(`UPDATE announcements`).
		WithArgs(false, (*time.Time)(nil), (*time.Time)(nil), []models.AnnouncementData(nil), []int64(nil), int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Update(suite.ctx, &models.Announcement{ID: 999})
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func TestAnnouncementRepoTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementRepoTestSuite))
}
