package repositories

import (
	"testing"
	"time"

	"tradebot365-admin/internal/database"
	"tradebot365-admin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) newLog(actorID *uuid.UUID, action, resourceID string) *models.AuditLog {
	return &models.AuditLog{
		ActorID:    actorID,
		Action:     action,
		Resource:   models.AuditResourceTradingAccount,
		ResourceID: resourceID,
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
	}
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	actorID := uuid.New()
	log := s.newLog(&actorID, models.AuditActionTradingAccountToggled, "T1")
	log.SetMetadata("previous_status", "Connected")

	err := s.repo.Create(log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)

	var stored models.AuditLog
	s.NoError(s.db.First(&stored, "id = ?", log.ID).Error)
	s.Equal("Connected", stored.GetMetadata("previous_status", ""))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateWithoutActor() {
	log := s.newLog(nil, models.AuditActionMockRecordsGenerated, "")
	log.Resource = models.AuditResourceAccountRecords

	err := s.repo.Create(log)
	s.NoError(err)
	s.Nil(log.ActorID)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateNil() {
	err := s.repo.Create(nil)
	s.Error(err)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByResource() {
	actorID := uuid.New()
	actions := []string{
		models.AuditActionTradingAccountUpdated,
		models.AuditActionTradingAccountToggled,
		models.AuditActionTradingAccountToggled,
	}
	for _, action := range actions {
		s.NoError(s.repo.Create(s.newLog(&actorID, action, "T1")))
		time.Sleep(5 * time.Millisecond)
	}
	s.NoError(s.repo.Create(s.newLog(&actorID, models.AuditActionTradingAccountUpdated, "T2")))

	logs, total, err := s.repo.GetByResource(models.AuditResourceTradingAccount, "T1", 0, 10)
	s.NoError(err)
	s.Len(logs, 3)
	s.Equal(int64(3), total)
	for _, log := range logs {
		s.Equal("T1", log.ResourceID)
	}
	// newest first
	s.False(logs[0].CreatedAt.Before(logs[2].CreatedAt))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByResource_Pagination() {
	for i := 0; i < 5; i++ {
		s.NoError(s.repo.Create(s.newLog(nil, models.AuditActionTradingAccountToggled, "T9")))
	}

	logs, total, err := s.repo.GetByResource(models.AuditResourceTradingAccount, "T9", 0, 2)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(5), total)

	logs, _, err = s.repo.GetByResource(models.AuditResourceTradingAccount, "T9", 4, 2)
	s.NoError(err)
	s.Len(logs, 1)

	// out of range limits fall back to the default page
	logs, _, err = s.repo.GetByResource(models.AuditResourceTradingAccount, "T9", -1, 0)
	s.NoError(err)
	s.Len(logs, 5)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_DeleteOlderThan() {
	old := s.newLog(nil, models.AuditActionTradingAccountUpdated, "T1")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	s.NoError(s.repo.Create(old))

	recent := s.newLog(nil, models.AuditActionTradingAccountUpdated, "T1")
	s.NoError(s.repo.Create(recent))

	deleted, err := s.repo.DeleteOlderThan(24 * time.Hour)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, total, err := s.repo.GetByResource(models.AuditResourceTradingAccount, "T1", 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
}
