package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_CountSubscribers() {
	count, err := s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(0, count)

	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 1}))
	count, err = s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(1, count)

	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 2}))
	count, err = s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(2, count)

	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 1})) // same chat ID
	count, err = s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_ExistsSubscriber() {
	ok, err := s.store.ExistsSubscriber(1)
	s.Require().NoError(err, "error checking subscriber")
	s.Require().False(ok)

	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 1}))
	ok, err = s.store.ExistsSubscriber(1)
	s.Require().NoError(err, "error checking subscriber")
	s.Require().True(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllSubscribers() {
	createdAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 1}))
	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 2}))
	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 3}))

	actual, err := s.store.GetAllSubscribers()
	s.Require().NoError(err, "error getting all subscribers")

	expected := []Subscriber{
		{ChatID: 1, CreatedAt: createdAt},
		{ChatID: 2, CreatedAt: createdAt},
		{ChatID: 3, CreatedAt: createdAt},
	}
	s.Equal(expected, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_PutSubscriber() {
	createdAt := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 1}))
	s.Equal(Subscriber{ChatID: 1, CreatedAt: createdAt}, s.mustGetSubscriber(1))

	// make sure the opt-in time is not overridden by a repeat put
	s.now.Set(createdAt.Add(24 * time.Hour))
	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 1}))
	s.Equal(Subscriber{ChatID: 1, CreatedAt: createdAt}, s.mustGetSubscriber(1))
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteSubscriber() {
	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 1}))
	s.Require().NoError(s.store.PutSubscriber(Subscriber{ChatID: 2}))

	s.Require().NoError(s.store.DeleteSubscriber(1))

	ok, err := s.store.ExistsSubscriber(1)
	s.Require().NoError(err)
	s.False(ok)
	ok, err = s.store.ExistsSubscriber(2)
	s.Require().NoError(err)
	s.True(ok)

	// deleting an unknown subscriber is a no-op
	s.Require().NoError(s.store.DeleteSubscriber(42))
}

func (s *BoltDBTestSuite) mustGetSubscriber(chatID int64) Subscriber {
	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err, "error getting subscribers")
	for _, sub := range subs {
		if sub.ChatID == chatID {
			return sub
		}
	}
	s.Require().Failf("subscriber not found", "chatID=%d", chatID)
	return Subscriber{}
}
