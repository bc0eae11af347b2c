package repositories

import (
	"context"
	"testing"

	"tradebot365-admin/internal/database"
	"tradebot365-admin/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountRecordRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRecordRepositoryInterface
	ctx  context.Context
}

func (s *AccountRecordRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRecordRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AccountRecordRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountRecordRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRecordRepositorySuite))
}

func (s *AccountRecordRepositorySuite) record(userID, cspID, tradingID, status string) models.FlatAccountRecord {
	return models.FlatAccountRecord{
		UserID:               userID,
		UserName:             "User " + userID,
		UserEmail:            userID + "@example.com",
		CSPAccountID:         cspID,
		CSPAccountName:       "CSP " + cspID,
		APIName:              "MT5",
		TradingAccountID:     tradingID,
		TradingAccountNumber: "N-" + tradingID,
		TradingAccountType:   models.TradingAccountTypeStandard,
		Balance:              decimal.NewFromInt(250),
		IsLive:               true,
		Status:               status,
	}
}

func (s *AccountRecordRepositorySuite) TestCreateBatch_PreservesInsertionOrder() {
	records := []models.FlatAccountRecord{
		s.record("U2", "C2", "T3", "Error"),
		s.record("U1", "C1", "T1", "Connected"),
		s.record("U1", "C1", "T2", "Disconnected"),
	}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, records))

	stored, err := s.repo.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stored, 3)
	s.Equal("T3", stored[0].TradingAccountID)
	s.Equal("T1", stored[1].TradingAccountID)
	s.Equal("T2", stored[2].TradingAccountID)

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(3), total)
}

func (s *AccountRecordRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(s.ctx, nil))

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(total)
}

func (s *AccountRecordRepositorySuite) TestCreateBatch_DefaultsStatus() {
	rec := s.record("U1", "C1", "T1", "")
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.FlatAccountRecord{rec}))

	stored, err := s.repo.GetByTradingAccountID(s.ctx, "T1")
	s.Require().NoError(err)
	s.Equal(string(models.ConnectionStatusPending), stored.Status)
}

func (s *AccountRecordRepositorySuite) TestCreateBatch_InvalidRecordRollsBack() {
	records := []models.FlatAccountRecord{
		s.record("U1", "C1", "T1", "Connected"),
		s.record("U1", "C1", "", "Connected"),
	}

	err := s.repo.CreateBatch(s.ctx, records)
	s.Error(err)

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(total)
}

func (s *AccountRecordRepositorySuite) TestCreateBatch_KeepsRowsWithoutEmail() {
	rec := s.record("U1", "C1", "T1", "Connected")
	rec.UserEmail = ""
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.FlatAccountRecord{rec}))

	stored, err := s.repo.ListAll(s.ctx)
	s.NoError(err)
	s.Len(stored, 1)
}

func (s *AccountRecordRepositorySuite) TestGetByTradingAccountID_NotFound() {
	_, err := s.repo.GetByTradingAccountID(s.ctx, "missing")
	s.ErrorIs(err, ErrTradingAccountNotFound)
}

func (s *AccountRecordRepositorySuite) TestGetByUserID() {
	database.CreateTestRecord(s.T(), s.db, s.record("U1", "C1", "T1", "Connected"))
	database.CreateTestRecord(s.T(), s.db, s.record("U2", "C2", "T2", "Connected"))
	database.CreateTestRecord(s.T(), s.db, s.record("U1", "C3", "T3", "Error"))

	records, err := s.repo.GetByUserID(s.ctx, "U1")
	s.NoError(err)
	s.Require().Len(records, 2)
	s.Equal("T1", records[0].TradingAccountID)
	s.Equal("T3", records[1].TradingAccountID)

	records, err = s.repo.GetByUserID(s.ctx, "nobody")
	s.NoError(err)
	s.Empty(records)
}

func (s *AccountRecordRepositorySuite) TestUpdateTradingAccount() {
	database.CreateTestRecord(s.T(), s.db, s.record("U1", "C1", "T1", "Connected"))
	// the same trading account may appear on several rows
	database.CreateTestRecord(s.T(), s.db, s.record("U1", "C1", "T1", "Connected"))

	number := "999"
	balance := decimal.NewFromFloat(42.5)
	live := false
	status := "error"
	edit := models.TradingAccountEdit{Number: &number, Balance: &balance, IsLive: &live, Status: &status}

	updated, err := s.repo.UpdateTradingAccount(s.ctx, "T1", edit)
	s.Require().NoError(err)
	s.Equal("999", updated.TradingAccountNumber)
	s.True(balance.Equal(updated.Balance))
	s.False(updated.IsLive)
	s.Equal("Error", updated.Status)

	rows, err := s.repo.ListAll(s.ctx)
	s.Require().NoError(err)
	for _, row := range rows {
		s.Equal("999", row.TradingAccountNumber)
	}
}

func (s *AccountRecordRepositorySuite) TestUpdateTradingAccount_Errors() {
	database.CreateTestRecord(s.T(), s.db, s.record("U1", "C1", "T1", "Connected"))

	_, err := s.repo.UpdateTradingAccount(s.ctx, "T1", models.TradingAccountEdit{})
	s.ErrorIs(err, ErrNoChanges)

	negative := decimal.NewFromInt(-1)
	_, err = s.repo.UpdateTradingAccount(s.ctx, "T1", models.TradingAccountEdit{Balance: &negative})
	s.ErrorIs(err, models.ErrInvalidBalance)

	number := "1"
	_, err = s.repo.UpdateTradingAccount(s.ctx, "missing", models.TradingAccountEdit{Number: &number})
	s.ErrorIs(err, ErrTradingAccountNotFound)
}

func (s *AccountRecordRepositorySuite) TestDeleteTradingAccount() {
	database.CreateTestRecord(s.T(), s.db, s.record("U1", "C1", "T1", "Connected"))
	database.CreateTestRecord(s.T(), s.db, s.record("U1", "C1", "T2", "Connected"))

	s.Require().NoError(s.repo.DeleteTradingAccount(s.ctx, "T1"))

	_, err := s.repo.GetByTradingAccountID(s.ctx, "T1")
	s.ErrorIs(err, ErrTradingAccountNotFound)

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), total)

	s.ErrorIs(s.repo.DeleteTradingAccount(s.ctx, "T1"), ErrTradingAccountNotFound)
}

func (s *AccountRecordRepositorySuite) TestToggleConnection() {
	tests := []struct {
		name     string
		from     string
		expected string
	}{
		{"connected disconnects", "Connected", "Disconnected"},
		{"disconnected connects", "Disconnected", "Connected"},
		{"error connects", "Error", "Connected"},
		{"pending connects", "Pending", "Connected"},
	}

	for i, tt := range tests {
		s.Run(tt.name, func() {
			id := "T" + string(rune('A'+i))
			database.CreateTestRecord(s.T(), s.db, s.record("U1", "C1", id, tt.from))

			toggled, err := s.repo.ToggleConnection(s.ctx, id)
			s.Require().NoError(err)
			s.Equal(tt.expected, toggled.Status)

			stored, err := s.repo.GetByTradingAccountID(s.ctx, id)
			s.Require().NoError(err)
			s.Equal(tt.expected, stored.Status)
		})
	}
}

func (s *AccountRecordRepositorySuite) TestToggleConnection_NotFound() {
	_, err := s.repo.ToggleConnection(s.ctx, "missing")
	s.ErrorIs(err, ErrTradingAccountNotFound)
}

func (s *AccountRecordRepositorySuite) TestSyncTradingAccount_UpdatesStoredRows() {
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.FlatAccountRecord{
		s.record("U1", "C1", "T1", "Connected"),
		s.record("U1", "C1", "T2", "Connected"),
	}))

	remote := models.FlatAccountRecord{
		TradingAccountID:     "T1",
		TradingAccountNumber: "N-T1-NEW",
		Balance:              decimal.NewFromInt(900),
		Status:               "Disconnected",
	}
	s.Require().NoError(s.repo.SyncTradingAccount(s.ctx, &remote))

	stored, err := s.repo.GetByTradingAccountID(s.ctx, "T1")
	s.Require().NoError(err)
	s.Equal("Disconnected", stored.Status)
	s.Equal("N-T1-NEW", stored.TradingAccountNumber)
	s.True(decimal.NewFromInt(900).Equal(stored.Balance))
	s.False(stored.IsLive)
	s.Equal("U1@example.com", stored.UserEmail)

	other, err := s.repo.GetByTradingAccountID(s.ctx, "T2")
	s.Require().NoError(err)
	s.Equal("Connected", other.Status)
}

func (s *AccountRecordRepositorySuite) TestSyncTradingAccount_InsertsUnknownAccount() {
	remote := s.record("U9", "C9", "T9", "Pending")
	remote.ID = 42

	s.Require().NoError(s.repo.SyncTradingAccount(s.ctx, &remote))

	records, err := s.repo.GetByUserID(s.ctx, "U9")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("T9", records[0].TradingAccountID)
}

func (s *AccountRecordRepositorySuite) TestSyncTradingAccount_RequiresID() {
	s.ErrorIs(s.repo.SyncTradingAccount(s.ctx, &models.FlatAccountRecord{}), models.ErrMissingTradingAccountID)
	s.ErrorIs(s.repo.SyncTradingAccount(s.ctx, nil), models.ErrMissingTradingAccountID)
}
