package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBuildAlertKey() {
	s.Equal(AlertKey("mint-1_buyer-1"), BuildAlertKey("mint-1", "buyer-1"))
}

func (s *BoltDBTestSuite) TestBoltDB_GetAlert() {
	_, found, err := s.store.GetAlert(BuildAlertKey("mint-1", "buyer-1"))
	s.Require().NoError(err, "error getting alert")
	s.Require().False(found)

	sentAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	key := BuildAlertKey("mint-1", "buyer-1")
	s.Require().NoError(s.store.PutAlert(key, sentAt))

	actual, found, err := s.store.GetAlert(key)
	s.Require().NoError(err, "error getting alert")
	s.Require().True(found)
	s.Equal(sentAt, actual)

	// same mint, different buyer is a distinct record
	_, found, err = s.store.GetAlert(BuildAlertKey("mint-1", "buyer-2"))
	s.Require().NoError(err, "error getting alert")
	s.False(found)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteAlert() {
	sentAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	key := BuildAlertKey("mint-1", "buyer-1")
	s.Require().NoError(s.store.PutAlert(key, sentAt))

	s.Require().NoError(s.store.DeleteAlert(key))

	_, found, err := s.store.GetAlert(key)
	s.Require().NoError(err)
	s.False(found)

	// deleting an unknown alert is a no-op
	s.Require().NoError(s.store.DeleteAlert(BuildAlertKey("mint-2", "buyer-2")))
}

func (s *BoltDBTestSuite) TestBoltDB_CountAlerts() {
	count, err := s.store.CountAlerts()
	s.Require().NoError(err, "error counting alerts")
	s.Require().Equal(0, count)

	sentAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.PutAlert(BuildAlertKey("mint-1", "buyer-1"), sentAt))
	s.Require().NoError(s.store.PutAlert(BuildAlertKey("mint-1", "buyer-2"), sentAt))

	count, err = s.store.CountAlerts()
	s.Require().NoError(err, "error counting alerts")
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupAlerts() {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutAlert(BuildAlertKey("mint-1", "buyer-1"), now.Add(-2*time.Hour)))
	s.Require().NoError(s.store.PutAlert(BuildAlertKey("mint-2", "buyer-2"), now.Add(-30*time.Minute)))
	s.Require().NoError(s.store.PutAlert(BuildAlertKey("mint-3", "buyer-3"), now))

	s.Require().NoError(s.store.CleanupAlerts(time.Hour))

	_, found, err := s.store.GetAlert(BuildAlertKey("mint-1", "buyer-1"))
	s.Require().NoError(err)
	s.False(found, "expired alert must be removed")

	_, found, err = s.store.GetAlert(BuildAlertKey("mint-2", "buyer-2"))
	s.Require().NoError(err)
	s.True(found, "recent alert must survive cleanup")

	_, found, err = s.store.GetAlert(BuildAlertKey("mint-3", "buyer-3"))
	s.Require().NoError(err)
	s.True(found, "fresh alert must survive cleanup")
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupAlerts_NonPositiveTTL() {
	sentAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.PutAlert(BuildAlertKey("mint-1", "buyer-1"), sentAt))

	s.Require().NoError(s.store.CleanupAlerts(0))

	count, err := s.store.CountAlerts()
	s.Require().NoError(err)
	s.Equal(1, count)
}
