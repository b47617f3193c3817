package repositories

import (
	"context"
	"testing"

	"backoffice/internal/catalog"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CategoryRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo CategoryRepository
	ctx  context.Context
}

func (suite *CategoryRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewCategoryRepo(mock)
	suite.ctx = context.Background()
}

func (suite *CategoryRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *CategoryRepoTestSuite) TestUpdatePositionsCommitsOneTransaction() {
	updates := []catalog.PositionUpdate{
		{ID: 11, Position: 0},
		{ID: 7, Position: 1},
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE categories SET position`).
		WithArgs(0, int64(11)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(`UPDATE categories SET position`).
		WithArgs(1, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	err := suite.repo.UpdatePositions(suite.ctx, updates)
	assert.NoError(suite.T(), err)
}

func (suite *CategoryRepoTestSuite) TestUpdatePositionsRollsBackOnMissingRow() {
	updates := []catalog.PositionUpdate{
		{ID: 11, Position: 0},
		{ID: 999, Position: 1},
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE categories SET position`).
		WithArgs(0, int64(11)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(`UPDATE categories SET position`).
		WithArgs(1, int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectRollback()

	err := suite.repo.UpdatePositions(suite.ctx, updates)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "999")
}

func (suite *CategoryRepoTestSuite) TestUpdatePositionsEmptyIsNoop() {
	err := suite.repo.UpdatePositions(suite.ctx, nil)
	assert.NoError(suite.T(), err)
}

func (suite *CategoryRepoTestSuite) TestCountChildren() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories WHERE parent_id`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := suite.repo.CountChildren(suite.ctx, 4)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}

func (suite *CategoryRepoTestSuite) TestDelete() {
	suite.mock.ExpectExec(`DELETE FROM categories WHERE id`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(suite.T(), suite.repo.Delete(suite.ctx, 9))
}

func TestCategoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepoTestSuite))
}
