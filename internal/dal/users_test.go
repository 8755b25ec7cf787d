package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_GetUser() {
	_, found, err := s.store.GetUser(1)
	s.Require().NoError(err, "error getting user")
	s.Require().False(found)

	verifiedAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	user := User{
		ChatID:     1,
		Wallet:     "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		VerifiedAt: verifiedAt,
	}
	s.Require().NoError(s.store.PutUser(user))

	actual, found, err := s.store.GetUser(1)
	s.Require().NoError(err, "error getting user")
	s.Require().True(found)
	s.Equal(user, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_PutUser_Overwrite() {
	verifiedAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	user := User{
		ChatID:     1,
		Wallet:     "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		VerifiedAt: verifiedAt,
	}
	s.Require().NoError(s.store.PutUser(user))

	// a burn redemption rewrites the same record with the premium grant
	user.PremiumUntil = verifiedAt.Add(7 * 24 * time.Hour)
	s.Require().NoError(s.store.PutUser(user))

	actual, found, err := s.store.GetUser(1)
	s.Require().NoError(err, "error getting user")
	s.Require().True(found)
	s.Equal(user, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteUser() {
	verifiedAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.PutUser(User{ChatID: 1, Wallet: "wallet-1", VerifiedAt: verifiedAt}))
	s.Require().NoError(s.store.PutUser(User{ChatID: 2, Wallet: "wallet-2", VerifiedAt: verifiedAt}))

	s.Require().NoError(s.store.DeleteUser(1))

	_, found, err := s.store.GetUser(1)
	s.Require().NoError(err)
	s.False(found)
	_, found, err = s.store.GetUser(2)
	s.Require().NoError(err)
	s.True(found)

	// deleting an unknown user is a no-op
	s.Require().NoError(s.store.DeleteUser(42))
}
