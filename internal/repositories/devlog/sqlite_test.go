package devlog

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	repo    *sqliteRepository
	ctx     context.Context
	testNow time.Time
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	repo, err := NewSQLite(&Config{Path: filepath.Join(s.T().TempDir(), "devlogs.db")})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.repo.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteValidatesConfig() {
	_, err := NewSQLite(nil)
	s.Error(err)

	_, err = NewSQLite(&Config{})
	s.Error(err)
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndRecent() {
	for i := 0; i < 3; i++ {
		entry := &models.DevLogEntry{
			Command:   "debug",
			Content:   fmt.Sprintf("print(%d)", i),
			AuthorID:  "owner-1",
			ChannelID: "channel-1",
			CreatedAt: s.testNow.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Entry: entry}))
		s.NotZero(entry.ID)
	}

	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Entry: &models.DevLogEntry{
		Command:   "eval",
		Content:   "1+1",
		AuthorID:  "owner-2",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		CreatedAt: s.testNow,
	}}))

	recent, err := s.repo.Recent(s.ctx, &RecentInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal("eval", recent[0].Command)
	s.Equal("guild-1", recent[0].GuildID)
	s.Equal("print(2)", recent[1].Content)
	s.True(recent[1].CreatedAt.Equal(s.testNow.Add(2 * time.Minute)))

	mine, err := s.repo.Recent(s.ctx, &RecentInput{AuthorID: "owner-1"})
	s.Require().NoError(err)
	s.Len(mine, 3)
}

func (s *SQLiteRepositoryTestSuite) TestRecentEmpty() {
	recent, err := s.repo.Recent(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(recent)
}
